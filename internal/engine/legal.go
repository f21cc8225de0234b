package engine

import (
	"github.com/SixFiveMil/Chess/internal/chess"
)

// LegalMoves returns the legal moves for the piece at the given square:
// the pseudo-legal moves (plus castling for a king), filtered by
// simulating each candidate on the live board and discarding any that
// leaves the mover's own king in check. The apply-test-revert sequence
// is atomic from the caller's perspective. This is the authoritative
// legality check; it subsumes pins, moving into check, and leaving the
// king in check.
func LegalMoves(board *chess.Board, col chess.Col, rank chess.Rank) ([]chess.Move, error) {
	candidates, err := PseudoLegalMoves(board, col, rank)
	if err != nil {
		return nil, err
	}

	piece := board.Get(col, rank)
	colour := chess.ExtractColour(piece)
	if chess.ExtractPiece(piece) == chess.King {
		candidates = append(candidates, CastlingMoves(board, colour)...)
	}

	return filterSelfCheck(board, candidates, colour), nil
}

// AllLegalMoves returns the union of LegalMoves over every square
// occupied by the given colour.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	forEachPiece(board, colour, func(col chess.Col, rank chess.Rank, piece chess.Piece) bool {
		candidates := pseudoMovesAt(board, col, rank)
		if chess.ExtractPiece(piece) == chess.King {
			candidates = append(candidates, CastlingMoves(board, colour)...)
		}
		moves = append(moves, filterSelfCheck(board, candidates, colour)...)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal
// move. It stops at the first safe candidate.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	found := false
	forEachPiece(board, colour, func(col chess.Col, rank chess.Rank, piece chess.Piece) bool {
		for _, m := range pseudoMovesAt(board, col, rank) {
			if moveIsSafe(board, m, colour) {
				found = true
				return false
			}
		}
		// Castling never provides the only legal move (the plain king
		// step onto the transit square would be legal too), so it is
		// not probed here.
		return true
	})
	return found
}

// filterSelfCheck keeps the candidates that do not leave the mover's
// own king in check.
func filterSelfCheck(board *chess.Board, candidates []chess.Move, colour chess.Colour) []chess.Move {
	var legal []chess.Move
	for _, m := range candidates {
		if moveIsSafe(board, m, colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// moveIsSafe applies the candidate, tests king safety and reverts.
func moveIsSafe(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	rec := Apply(board, move)
	safe := !IsInCheck(board, colour)
	Revert(board, rec)
	return safe
}

// forEachPiece visits every square occupied by the given colour. The
// visitor returns false to stop early.
func forEachPiece(board *chess.Board, colour chess.Colour, visit func(chess.Col, chess.Rank, chess.Piece) bool) {
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}
			if chess.ExtractColour(piece) != colour {
				continue
			}
			if !visit(col, rank, piece) {
				return
			}
		}
	}
}
