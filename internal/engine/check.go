package engine

import "github.com/SixFiveMil/Chess/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingCol, kingRank := board.KingSquare(colour)

	// If king position not tracked, search for it
	if kingCol == 0 || kingRank == 0 {
		kingCol, kingRank = findKing(board, colour)
		if kingCol == 0 {
			return false // No king found
		}
	}

	return IsSquareAttacked(board, kingCol, kingRank, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Col, chess.Rank) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if board.Get(col, rank) == king {
				return col, rank
			}
		}
	}
	return 0, 0
}

// IsSquareAttacked returns true if any piece of the given colour has a
// shape-legal move landing on the square, with no check filtering. Used
// both for check detection and for castling-path safety.
func IsSquareAttacked(board *chess.Board, col chess.Col, rank chess.Rank, byColour chess.Colour) bool {
	// Check pawn attacks
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRank := chess.Rank(int(rank) - chess.ColourOffset(byColour))
	if pawnRank >= '1' && pawnRank <= '8' {
		if col > 'a' && board.Get(col-1, pawnRank) == pawn {
			return true
		}
		if col < 'h' && board.Get(col+1, pawnRank) == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		c := chess.Col(int(col) + off[0])
		r := chess.Rank(int(rank) + off[1])
		if board.Get(c, r) == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		c := chess.Col(int(col) + off[0])
		r := chess.Rank(int(rank) + off[1])
		if board.Get(c, r) == king {
			return true
		}
	}

	// Check sliding pieces (bishop, rook, queen) along diagonals
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	for _, dir := range diagonalDirs {
		c := chess.Col(int(col) + dir[0])
		r := chess.Rank(int(rank) + dir[1])
		for {
			piece := board.Get(c, r)
			if piece == chess.Off {
				break
			}
			if piece != chess.Empty {
				if piece == bishop || piece == queen {
					return true
				}
				break // Blocked
			}
			c = chess.Col(int(c) + dir[0])
			r = chess.Rank(int(r) + dir[1])
		}
	}

	// Check sliding pieces along straight lines
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		c := chess.Col(int(col) + dir[0])
		r := chess.Rank(int(rank) + dir[1])
		for {
			piece := board.Get(c, r)
			if piece == chess.Off {
				break
			}
			if piece != chess.Empty {
				if piece == rook || piece == queen {
					return true
				}
				break // Blocked
			}
			c = chess.Col(int(c) + dir[0])
			r = chess.Rank(int(r) + dir[1])
		}
	}

	return false
}
