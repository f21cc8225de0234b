// Package game exposes the programmatic contract of the chess core: a
// game session owning a board and its move history, with move entry by
// square pair, undo, and terminal-state classification.
//
// A Game is mutable shared data with exactly one writer at a time by
// construction; it provides no internal locking. A multi-threaded host
// must serialize access, one mutex per game or one game per goroutine.
package game

import (
	stderrors "errors"

	"github.com/SixFiveMil/Chess/internal/chess"
	"github.com/SixFiveMil/Chess/internal/engine"
	"github.com/SixFiveMil/Chess/internal/errors"
)

// StatusKind classifies the state of a game.
type StatusKind int

const (
	InProgress StatusKind = iota
	Check
	Checkmate
	Stalemate
)

// Status reports whether a game is over and who, if anyone, is
// affected: the checked side for Check, the winner for Checkmate.
type Status struct {
	Kind   StatusKind
	Colour chess.Colour
}

// Game is one chess game: a board plus the ordered history of applied
// moves. Multiple independent games can coexist; there is no shared
// process-wide state.
type Game struct {
	board   *chess.Board
	history []chess.MoveRecord
}

// New creates a game at the standard initial position: white to move,
// all four castling rights set, no en passant target.
func New() *Game {
	return &Game{board: chess.NewInitialBoard()}
}

// NewFromBoard creates a game that continues from an existing position.
func NewFromBoard(board *chess.Board) *Game {
	return &Game{board: board}
}

// Board returns the live board for read access (rendering, queries).
func (g *Game) Board() *chess.Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.board.ToMove
}

// History returns the applied move records, oldest first.
func (g *Game) History() []chess.MoveRecord {
	return g.history
}

// ParseSquare parses a two-character square like "e2".
func ParseSquare(s string) (chess.Col, chess.Rank, error) {
	if len(s) != 2 {
		return 0, 0, errors.ErrInvalidSquare
	}
	col := chess.Col(s[0])
	rank := chess.Rank(s[1])
	if !chess.OnBoard(col, rank) {
		return 0, 0, errors.ErrInvalidSquare
	}
	return col, rank, nil
}

// ParseMoveText parses 4- or 5-character square-pair notation such as
// "e2e4" or "e7e8q" (the optional fifth character selects the
// promotion piece).
func ParseMoveText(s string) (fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank, promotion chess.Piece, err error) {
	if len(s) != 4 && len(s) != 5 {
		err = errors.ErrInvalidSquare
		return
	}
	fromCol, fromRank, err = ParseSquare(s[:2])
	if err != nil {
		return
	}
	toCol, toRank, err = ParseSquare(s[2:4])
	if err != nil {
		return
	}
	promotion = chess.Empty
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promotion = chess.Queen
		case 'r':
			promotion = chess.Rook
		case 'b':
			promotion = chess.Bishop
		case 'n':
			promotion = chess.Knight
		default:
			err = errors.ErrInvalidSquare
		}
	}
	return
}

// AttemptMove resolves a square pair to a move, inferring castling, en
// passant and promotion from context, verifies it against the legal
// move set, and applies it. promotion selects the piece for a pawn
// reaching the last rank; chess.Empty defaults to Queen, a documented
// policy rather than a failure. On error the board is unchanged.
func (g *Game) AttemptMove(fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank, promotion chess.Piece) (chess.MoveRecord, error) {
	legal, err := engine.LegalMoves(g.board, fromCol, fromRank)
	if err != nil {
		return chess.MoveRecord{}, g.moveError(err, fromCol, fromRank, toCol, toRank)
	}

	for _, m := range legal {
		if m.ToCol != toCol || m.ToRank != toRank {
			continue
		}
		if m.Class == chess.PawnPromotion {
			m.Promotion = promotion
		}
		rec := engine.Apply(g.board, m)
		g.history = append(g.history, rec)
		return rec, nil
	}

	return chess.MoveRecord{}, g.moveError(errors.ErrIllegalMove, fromCol, fromRank, toCol, toRank)
}

// AttemptMoveText is AttemptMove for square-pair notation ("e2e4").
func (g *Game) AttemptMoveText(text string) (chess.MoveRecord, error) {
	fromCol, fromRank, toCol, toRank, promotion, err := ParseMoveText(text)
	if err != nil {
		return chess.MoveRecord{}, &errors.MoveError{Err: err, From: text, Side: g.board.ToMove.String()}
	}
	return g.AttemptMove(fromCol, fromRank, toCol, toRank, promotion)
}

// Undo reverts the most recent move, restoring the captured piece, the
// castling rook and the en-passant-captured pawn as needed.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return errors.ErrNothingToUndo
	}
	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	engine.Revert(g.board, rec)
	return nil
}

// LegalMoves returns the legal moves for the piece at a square.
func (g *Game) LegalMoves(col chess.Col, rank chess.Rank) ([]chess.Move, error) {
	return engine.LegalMoves(g.board, col, rank)
}

// AllLegalMoves returns every legal move for the side to move.
func (g *Game) AllLegalMoves() []chess.Move {
	return engine.AllLegalMoves(g.board, g.board.ToMove)
}

// Status classifies the current position for the side to move.
func (g *Game) Status() Status {
	colour := g.board.ToMove
	inCheck := engine.IsInCheck(g.board, colour)
	hasMoves := engine.HasLegalMoves(g.board, colour)

	switch {
	case inCheck && !hasMoves:
		return Status{Kind: Checkmate, Colour: colour.Opposite()}
	case !inCheck && !hasMoves:
		return Status{Kind: Stalemate}
	case inCheck:
		return Status{Kind: Check, Colour: colour}
	default:
		return Status{Kind: InProgress}
	}
}

// moveError wraps an engine error with the squares the caller named.
func (g *Game) moveError(err error, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) error {
	return &errors.MoveError{
		Err:  err,
		From: string([]byte{byte(fromCol), byte(fromRank)}),
		To:   string([]byte{byte(toCol), byte(toRank)}),
		Side: g.board.ToMove.String(),
	}
}

// IsRecoverable reports whether an error from AttemptMove leaves the
// game playable (all move-entry failures do).
func IsRecoverable(err error) bool {
	return stderrors.Is(err, errors.ErrInvalidSquare) ||
		stderrors.Is(err, errors.ErrNoPieceAtSquare) ||
		stderrors.Is(err, errors.ErrWrongSideToMove) ||
		stderrors.Is(err, errors.ErrIllegalMove)
}
