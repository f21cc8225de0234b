package engine

import "github.com/SixFiveMil/Chess/internal/chess"

// CastlingMoves yields the castle moves currently available to a
// colour. A side qualifies iff its castling flag is intact (the flag,
// not piece history, tracks whether king and rook have moved), every
// square between king and rook is empty, and the king's current square
// and the two squares it traverses are not attacked by the opponent.
// A king in check cannot castle at all.
func CastlingMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	kingside, queenside := board.CastlingRights(colour)
	if kingside == 0 && queenside == 0 {
		return nil
	}

	kingCol, kingRank := board.KingSquare(colour)
	rank := chess.HomeRank(colour)
	if kingRank != rank {
		return nil
	}
	if IsSquareAttacked(board, kingCol, rank, colour.Opposite()) {
		return nil
	}

	var moves []chess.Move
	if kingside != 0 && castlePathOK(board, colour, kingCol, kingside, 'g') {
		moves = append(moves, chess.Move{
			FromCol: kingCol, FromRank: rank,
			ToCol: 'g', ToRank: rank,
			Class: chess.KingsideCastle,
		})
	}
	if queenside != 0 && castlePathOK(board, colour, kingCol, queenside, 'c') {
		moves = append(moves, chess.Move{
			FromCol: kingCol, FromRank: rank,
			ToCol: 'c', ToRank: rank,
			Class: chess.QueensideCastle,
		})
	}
	return moves
}

// castlePathOK checks that the squares between king and rook are empty
// and that the king's path to its destination is not attacked.
func castlePathOK(board *chess.Board, colour chess.Colour, kingCol, rookCol, kingToCol chess.Col) bool {
	rank := chess.HomeRank(colour)

	// All squares between king and rook must be empty.
	step := 1
	if rookCol < kingCol {
		step = -1
	}
	for c := int(kingCol) + step; c != int(rookCol); c += step {
		if board.Get(chess.Col(c), rank) != chess.Empty {
			return false
		}
	}

	// The two squares the king traverses (including the destination)
	// must not be attacked. The current square was checked by the caller.
	kingStep := 1
	if kingToCol < kingCol {
		kingStep = -1
	}
	for c := int(kingCol) + kingStep; ; c += kingStep {
		if IsSquareAttacked(board, chess.Col(c), rank, colour.Opposite()) {
			return false
		}
		if c == int(kingToCol) {
			break
		}
	}
	return true
}
