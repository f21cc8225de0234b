package chess

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	NormalMove MoveClass = iota
	KingsideCastle
	QueensideCastle
	EnPassantCapture
	PawnPromotion
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	names := []string{"Normal", "KingsideCastle", "QueensideCastle", "EnPassantCapture", "PawnPromotion"}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move describes a single move: a source square, a destination square
// and a class. A Move is a description, not an executed event; applying
// it mutates a Board.
type Move struct {
	FromCol  Col
	FromRank Rank
	ToCol    Col
	ToRank   Rank

	Class MoveClass

	// Promotion is the piece the pawn becomes when Class is
	// PawnPromotion. Any non-piece value (Off, Empty) means the
	// default (Queen) is used, so a zero-valued field queens.
	Promotion Piece
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}

// Text returns the move in square-pair notation (e2e4), with a lowercase
// piece letter suffix for promotions (e7e8q).
func (m Move) Text() string {
	buf := []byte{byte(m.FromCol), byte(m.FromRank), byte(m.ToCol), byte(m.ToRank)}
	if m.Class == PawnPromotion {
		promo := m.Promotion
		if promo < Pawn {
			promo = Queen
		}
		buf = append(buf, promo.Letter()|0x20)
	}
	return string(buf)
}

// MoveRecord is a Move plus everything needed to reverse it exactly:
// the piece that moved, the piece captured (with the square it stood
// on, which differs from the destination for en passant), and the
// castling rights, en passant target and halfmove clock from before
// the move. Records accumulate in the caller's history and are
// consumed for undo and for check-simulation rollback.
type MoveRecord struct {
	Move Move

	// Moved is the coloured piece that was picked up from the source
	// square (the pawn, not the promoted piece, for promotions).
	Moved Piece

	// Captured is the coloured piece removed by the move, Empty if none.
	// CapturedCol/CapturedRank give the square it was removed from.
	Captured     Piece
	CapturedCol  Col
	CapturedRank Rank

	// Castling rights before the move.
	PrevWKingCastle  Col
	PrevWQueenCastle Col
	PrevBKingCastle  Col
	PrevBQueenCastle Col

	// En passant target before the move.
	PrevEnPassant bool
	PrevEPCol     Col
	PrevEPRank    Rank

	// Side to move before the move. Not derivable from the moved
	// piece: check simulation probes both sides from one position.
	PrevToMove Colour

	// Halfmove clock before the move.
	PrevHalfmoveClock uint
}
