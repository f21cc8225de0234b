package chess

// Board represents a chess board with all state needed for the game.
//
// The board is the single owner of mutable game state: piece placement,
// side to move, castling rights, the en passant target, and the move
// counters. It performs no rule checking of its own; the engine package
// reads and mutates it.
type Board struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// board[col][rank] where col and rank are 0-11 (with hedge).
	Squares [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece

	// Who has the next move.
	ToMove Colour

	// The current full move number.
	MoveNumber uint

	// Castling rights: the rook's starting column while the right is
	// intact, 0 once the king or that rook has moved (or the rook was
	// captured). The flag never comes back, even if the piece returns
	// to its original square.
	WKingCastle  Col
	WQueenCastle Col
	BKingCastle  Col
	BQueenCastle Col

	// Keep track of where the two kings are for check detection.
	WKingCol  Col
	WKingRank Rank
	BKingCol  Col
	BKingRank Rank

	// Is an en passant capture possible? If so then EPCol and EPRank
	// hold the square onto which the capturing pawn would land. Valid
	// only for the move immediately after a double pawn push.
	EnPassant bool
	EPCol     Col
	EPRank    Rank

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	for col := 0; col < Hedge+BoardSize+Hedge; col++ {
		for rank := 0; rank < Hedge+BoardSize+Hedge; rank++ {
			if col >= Hedge && col < Hedge+BoardSize &&
				rank >= Hedge && rank < Hedge+BoardSize {
				b.Squares[col][rank] = Empty
			} else {
				b.Squares[col][rank] = Off
			}
		}
	}
	return b
}

// NewInitialBoard creates a board with the standard starting position,
// white to move, all four castling rights intact and no en passant target.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for col := Hedge; col < Hedge+BoardSize; col++ {
		for rank := Hedge; rank < Hedge+BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col+Hedge][Hedge] = W(backRank[col])
		b.Squares[col+Hedge][Hedge+1] = W(Pawn)
		b.Squares[col+Hedge][Hedge+6] = B(Pawn)
		b.Squares[col+Hedge][Hedge+7] = B(backRank[col])
	}

	b.WKingCol = 'e'
	b.WKingRank = '1'
	b.BKingCol = 'e'
	b.BKingRank = '8'

	b.WKingCastle = 'h'
	b.WQueenCastle = 'a'
	b.BKingCastle = 'h'
	b.BQueenCastle = 'a'

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
// Off-board coordinates return Off; Get never fails.
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c == 0 || r == 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates. Off-board coordinates are ignored.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c != 0 && r != 0 {
		b.Squares[c][r] = piece
	}
}

// KingSquare returns the tracked king square for a colour.
func (b *Board) KingSquare(colour Colour) (Col, Rank) {
	if colour == White {
		return b.WKingCol, b.WKingRank
	}
	return b.BKingCol, b.BKingRank
}

// SetKingSquare updates the tracked king square for a colour.
func (b *Board) SetKingSquare(colour Colour, col Col, rank Rank) {
	if colour == White {
		b.WKingCol, b.WKingRank = col, rank
	} else {
		b.BKingCol, b.BKingRank = col, rank
	}
}

// CastlingRights returns the kingside and queenside rook columns for a
// colour; a zero value means the corresponding right is gone.
func (b *Board) CastlingRights(colour Colour) (kingside, queenside Col) {
	if colour == White {
		return b.WKingCastle, b.WQueenCastle
	}
	return b.BKingCastle, b.BQueenCastle
}

// ClearCastlingRights removes both castling rights for a colour.
func (b *Board) ClearCastlingRights(colour Colour) {
	if colour == White {
		b.WKingCastle = 0
		b.WQueenCastle = 0
	} else {
		b.BKingCastle = 0
		b.BQueenCastle = 0
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
