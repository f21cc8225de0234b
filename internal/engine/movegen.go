package engine

import (
	"github.com/SixFiveMil/Chess/internal/chess"
	"github.com/SixFiveMil/Chess/internal/errors"
)

var knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

var kingOffsets = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

var diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

var straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// PseudoLegalMoves enumerates the moves for the piece at the given
// square that obey piece shape and blocking rules, ignoring whether the
// mover's own king ends up in check. It fails if the square is off the
// board, empty, or holds a piece of the side not to move. Castling is
// not included here; see CastlingMoves.
func PseudoLegalMoves(board *chess.Board, col chess.Col, rank chess.Rank) ([]chess.Move, error) {
	piece := board.Get(col, rank)
	if piece == chess.Off {
		return nil, errors.ErrInvalidSquare
	}
	if piece == chess.Empty {
		return nil, errors.ErrNoPieceAtSquare
	}
	if chess.ExtractColour(piece) != board.ToMove {
		return nil, errors.ErrWrongSideToMove
	}
	return pseudoMovesAt(board, col, rank), nil
}

// pseudoMovesAt generates shape-legal moves for the piece at a square
// known to be occupied, for whichever colour owns it.
func pseudoMovesAt(board *chess.Board, col chess.Col, rank chess.Rank) []chess.Move {
	piece := board.Get(col, rank)
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnMoves(board, col, rank, colour)
	case chess.Knight:
		return offsetMoves(board, col, rank, colour, knightOffsets)
	case chess.Bishop:
		return slidingMoves(board, col, rank, colour, diagonalDirs)
	case chess.Rook:
		return slidingMoves(board, col, rank, colour, straightDirs)
	case chess.Queen:
		return slidingMoves(board, col, rank, colour, append(append([][2]int{}, diagonalDirs...), straightDirs...))
	case chess.King:
		return offsetMoves(board, col, rank, colour, kingOffsets)
	}
	return nil
}

// pawnMoves generates pawn pushes, captures, en passant captures and
// promotions.
func pawnMoves(board *chess.Board, col chess.Col, rank chess.Rank, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	dir := chess.ColourOffset(colour)

	// Single push onto an empty square.
	oneUp := chess.Rank(int(rank) + dir)
	if board.Get(col, oneUp) == chess.Empty {
		moves = appendPawnMove(moves, col, rank, col, oneUp, colour)

		// Double push from the starting rank through two empty squares.
		if rank == chess.StartRank(colour) {
			twoUp := chess.Rank(int(rank) + 2*dir)
			if board.Get(col, twoUp) == chess.Empty {
				moves = append(moves, chess.Move{
					FromCol: col, FromRank: rank,
					ToCol: col, ToRank: twoUp,
					Class: chess.NormalMove,
				})
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, dc := range []int{-1, 1} {
		toCol := chess.Col(int(col) + dc)
		target := board.Get(toCol, oneUp)
		if target != chess.Empty && target != chess.Off && chess.ExtractColour(target) != colour {
			moves = appendPawnMove(moves, col, rank, toCol, oneUp, colour)
		}
		if board.EnPassant && toCol == board.EPCol && oneUp == board.EPRank {
			moves = append(moves, chess.Move{
				FromCol: col, FromRank: rank,
				ToCol: toCol, ToRank: oneUp,
				Class: chess.EnPassantCapture,
			})
		}
	}

	return moves
}

// appendPawnMove appends a pawn push or capture, flagging it as a
// promotion when the destination is the last rank.
func appendPawnMove(moves []chess.Move, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank, colour chess.Colour) []chess.Move {
	class := chess.NormalMove
	if toRank == chess.PromotionRank(colour) {
		class = chess.PawnPromotion
	}
	return append(moves, chess.Move{
		FromCol: fromCol, FromRank: fromRank,
		ToCol: toCol, ToRank: toRank,
		Class: class,
	})
}

// offsetMoves generates the fixed-offset moves for knights and kings.
func offsetMoves(board *chess.Board, col chess.Col, rank chess.Rank, colour chess.Colour, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		toCol := chess.Col(int(col) + off[0])
		toRank := chess.Rank(int(rank) + off[1])
		target := board.Get(toCol, toRank)
		if target == chess.Off {
			continue
		}
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			moves = append(moves, chess.Move{
				FromCol: col, FromRank: rank,
				ToCol: toCol, ToRank: toRank,
				Class: chess.NormalMove,
			})
		}
	}
	return moves
}

// slidingMoves ray-casts along the given directions, stopping at (and
// including, if enemy) the first occupied square.
func slidingMoves(board *chess.Board, col chess.Col, rank chess.Rank, colour chess.Colour, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		toCol := chess.Col(int(col) + dir[0])
		toRank := chess.Rank(int(rank) + dir[1])
		for {
			target := board.Get(toCol, toRank)
			if target == chess.Off {
				break
			}
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, chess.Move{
						FromCol: col, FromRank: rank,
						ToCol: toCol, ToRank: toRank,
						Class: chess.NormalMove,
					})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{
				FromCol: col, FromRank: rank,
				ToCol: toCol, ToRank: toRank,
				Class: chess.NormalMove,
			})
			toCol = chess.Col(int(toCol) + dir[0])
			toRank = chess.Rank(int(toRank) + dir[1])
		}
	}
	return moves
}
