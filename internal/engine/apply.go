// Package engine provides chess move generation, validation and board
// manipulation as pure functions over an explicit board argument.
//
// Move generation is split the classic way: PseudoLegalMoves enumerates
// moves that obey piece shape and blocking rules, and LegalMoves filters
// them by simulating each candidate and rejecting any that leaves the
// mover's own king in check. Generation is cheap and filtering is
// expensive; full legality costs a board scan per candidate, not O(1)
// per piece.
package engine

import (
	"github.com/SixFiveMil/Chess/internal/chess"
)

// Apply applies a move to the board and returns a record sufficient to
// reverse it exactly. The move must be pseudo-legal; Apply handles
// mechanics only and does not re-validate legality.
func Apply(board *chess.Board, move chess.Move) chess.MoveRecord {
	moved := board.Get(move.FromCol, move.FromRank)
	colour := chess.ExtractColour(moved)

	rec := chess.MoveRecord{
		Move:              move,
		Moved:             moved,
		Captured:          chess.Empty,
		PrevWKingCastle:   board.WKingCastle,
		PrevWQueenCastle:  board.WQueenCastle,
		PrevBKingCastle:   board.BKingCastle,
		PrevBQueenCastle:  board.BQueenCastle,
		PrevEnPassant:     board.EnPassant,
		PrevEPCol:         board.EPCol,
		PrevEPRank:        board.EPRank,
		PrevToMove:        board.ToMove,
		PrevHalfmoveClock: board.HalfmoveClock,
	}

	switch move.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		applyCastle(board, move, colour)
		board.HalfmoveClock++

	case chess.EnPassantCapture:
		// The captured pawn sits behind the destination square.
		victimRank := chess.Rank(int(move.ToRank) - chess.ColourOffset(colour))
		rec.Captured = board.Get(move.ToCol, victimRank)
		rec.CapturedCol = move.ToCol
		rec.CapturedRank = victimRank
		board.Set(move.ToCol, victimRank, chess.Empty)

		board.Set(move.FromCol, move.FromRank, chess.Empty)
		board.Set(move.ToCol, move.ToRank, moved)
		board.HalfmoveClock = 0

	default:
		target := board.Get(move.ToCol, move.ToRank)
		if target != chess.Empty {
			rec.Captured = target
			rec.CapturedCol = move.ToCol
			rec.CapturedRank = move.ToRank
			if chess.ExtractPiece(target) == chess.Rook {
				clearRookCastlingRight(board, chess.ExtractColour(target), move.ToCol, move.ToRank)
			}
		}

		board.Set(move.FromCol, move.FromRank, chess.Empty)
		if move.Class == chess.PawnPromotion {
			promo := move.Promotion
			if promo < chess.Pawn {
				promo = chess.Queen // Default to queen
			}
			board.Set(move.ToCol, move.ToRank, chess.MakeColouredPiece(colour, promo))
		} else {
			board.Set(move.ToCol, move.ToRank, moved)
		}

		switch chess.ExtractPiece(moved) {
		case chess.King:
			board.SetKingSquare(colour, move.ToCol, move.ToRank)
			board.ClearCastlingRights(colour)
		case chess.Rook:
			clearRookCastlingRight(board, colour, move.FromCol, move.FromRank)
		}

		if target != chess.Empty || chess.ExtractPiece(moved) == chess.Pawn {
			board.HalfmoveClock = 0
		} else {
			board.HalfmoveClock++
		}
	}

	setEnPassantTarget(board, move, moved, colour)

	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return rec
}

// Revert is the exact inverse of Apply: it restores piece positions,
// the captured piece, castling rights, the en passant target, the
// counters and the side to move to their pre-move values.
func Revert(board *chess.Board, rec chess.MoveRecord) {
	move := rec.Move
	colour := chess.ExtractColour(rec.Moved)

	switch move.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		revertCastle(board, rec, colour)

	default:
		// For promotions rec.Moved is still the pawn.
		board.Set(move.ToCol, move.ToRank, chess.Empty)
		board.Set(move.FromCol, move.FromRank, rec.Moved)
		if rec.Captured != chess.Empty {
			board.Set(rec.CapturedCol, rec.CapturedRank, rec.Captured)
		}
		if chess.ExtractPiece(rec.Moved) == chess.King {
			board.SetKingSquare(colour, move.FromCol, move.FromRank)
		}
	}

	board.WKingCastle = rec.PrevWKingCastle
	board.WQueenCastle = rec.PrevWQueenCastle
	board.BKingCastle = rec.PrevBKingCastle
	board.BQueenCastle = rec.PrevBQueenCastle
	board.EnPassant = rec.PrevEnPassant
	board.EPCol = rec.PrevEPCol
	board.EPRank = rec.PrevEPRank
	board.HalfmoveClock = rec.PrevHalfmoveClock

	if colour == chess.Black {
		board.MoveNumber--
	}
	board.ToMove = rec.PrevToMove
}

// applyCastle relocates both the king and the castling rook.
func applyCastle(board *chess.Board, move chess.Move, colour chess.Colour) {
	rank := chess.HomeRank(colour)
	kingside, queenside := board.CastlingRights(colour)

	var rookFromCol, rookToCol chess.Col
	if move.Class == chess.KingsideCastle {
		rookFromCol, rookToCol = kingside, 'f'
	} else {
		rookFromCol, rookToCol = queenside, 'd'
	}

	king := board.Get(move.FromCol, rank)
	board.Set(move.FromCol, rank, chess.Empty)
	board.Set(move.ToCol, rank, king)

	rook := board.Get(rookFromCol, rank)
	board.Set(rookFromCol, rank, chess.Empty)
	board.Set(rookToCol, rank, rook)

	board.SetKingSquare(colour, move.ToCol, rank)
	board.ClearCastlingRights(colour)
}

// revertCastle moves the king and rook back to their pre-castle squares.
// The rook's original column is recovered from the recorded rights.
func revertCastle(board *chess.Board, rec chess.MoveRecord, colour chess.Colour) {
	move := rec.Move
	rank := chess.HomeRank(colour)

	var rookFromCol, rookToCol chess.Col
	if move.Class == chess.KingsideCastle {
		rookToCol = 'f'
		if colour == chess.White {
			rookFromCol = rec.PrevWKingCastle
		} else {
			rookFromCol = rec.PrevBKingCastle
		}
	} else {
		rookToCol = 'd'
		if colour == chess.White {
			rookFromCol = rec.PrevWQueenCastle
		} else {
			rookFromCol = rec.PrevBQueenCastle
		}
	}

	king := board.Get(move.ToCol, rank)
	board.Set(move.ToCol, rank, chess.Empty)
	board.Set(move.FromCol, rank, king)

	rook := board.Get(rookToCol, rank)
	board.Set(rookToCol, rank, chess.Empty)
	board.Set(rookFromCol, rank, rook)

	board.SetKingSquare(colour, move.FromCol, rank)
}

// clearRookCastlingRight removes the castling right tied to a rook's
// starting square when that rook moves or is captured.
func clearRookCastlingRight(board *chess.Board, colour chess.Colour, col chess.Col, rank chess.Rank) {
	if rank != chess.HomeRank(colour) {
		return
	}
	if colour == chess.White {
		if col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	} else {
		if col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}

// setEnPassantTarget sets the en passant target after a double pawn
// push and clears it after every other move.
func setEnPassantTarget(board *chess.Board, move chess.Move, moved chess.Piece, colour chess.Colour) {
	board.EnPassant = false
	if chess.ExtractPiece(moved) != chess.Pawn {
		return
	}
	if move.FromRank == '2' && move.ToRank == '4' && colour == chess.White {
		board.EnPassant = true
		board.EPCol = move.ToCol
		board.EPRank = '3'
	} else if move.FromRank == '7' && move.ToRank == '5' && colour == chess.Black {
		board.EnPassant = true
		board.EPCol = move.ToCol
		board.EPRank = '6'
	}
}
