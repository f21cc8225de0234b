package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SixFiveMil/Chess/internal/chess"
)

// mustBoard builds a board from a FEN string or fails the test.
func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// findMove locates a generated legal move by its square-pair text.
func findMove(t *testing.T, board *chess.Board, text string) chess.Move {
	t.Helper()
	for _, m := range AllLegalMoves(board, board.ToMove) {
		if m.Text() == text {
			return m
		}
	}
	t.Fatalf("move %s not found among legal moves for %v", text, board.ToMove)
	return chess.Move{}
}

// TestApplyRevertOppositeSide verifies the round trip for a move by the
// side not to move, which check simulation performs when classifying
// positions for either colour.
func TestApplyRevertOppositeSide(t *testing.T) {
	board := mustBoard(t, InitialFEN)
	move := chess.Move{FromCol: 'g', FromRank: '8', ToCol: 'f', ToRank: '6'}

	before := board.Copy()
	rec := Apply(board, move)
	Revert(board, rec)

	if diff := cmp.Diff(*before, *board); diff != "" {
		t.Errorf("board not restored after opposite-side revert (-want +got):\n%s", diff)
	}
	if board.ToMove != chess.White {
		t.Errorf("ToMove = %v after revert, want White", board.ToMove)
	}
}

// TestApplyRevertRoundTrip verifies that Revert(Apply(m)) reproduces the
// exact prior board for every move class.
func TestApplyRevertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
	}{
		{"pawn push", InitialFEN, "e2e4"},
		{"knight development", InitialFEN, "g1f3"},
		{"capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "e4d5"},
		{"rook move clears right", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1a2"},
		{"king move clears rights", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1e2"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1"},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1"},
		{"black kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8"},
		{"en passant", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3", "e5f6"},
		{"promotion", "8/P6k/8/8/8/8/7K/8 w - - 0 1", "a7a8q"},
		{"capture promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", "a7b8q"},
		{"rook capture clears right", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1a8"},
		{"black reply after double push", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "g8f6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			move := findMove(t, board, tt.move)

			before := board.Copy()
			rec := Apply(board, move)
			Revert(board, rec)

			if diff := cmp.Diff(*before, *board); diff != "" {
				t.Errorf("board not restored after revert (-want +got):\n%s", diff)
			}
		})
	}
}

// TestApplyRoundTripUnderpromotion verifies the round trip when the move
// names a promotion piece.
func TestApplyRoundTripUnderpromotion(t *testing.T) {
	board := mustBoard(t, "8/P6k/8/8/8/8/7K/8 w - - 0 1")
	move := findMove(t, board, "a7a8q")
	move.Promotion = chess.Knight

	before := board.Copy()
	rec := Apply(board, move)

	if got := board.Get('a', '8'); got != chess.W(chess.Knight) {
		t.Errorf("promoted piece = %v, want white knight", got)
	}

	Revert(board, rec)
	if diff := cmp.Diff(*before, *board); diff != "" {
		t.Errorf("board not restored after revert (-want +got):\n%s", diff)
	}
}

// TestApplyPawnDoublePushSetsEnPassant verifies the en passant target is
// set to the intervening square after a double push.
func TestApplyPawnDoublePushSetsEnPassant(t *testing.T) {
	board := mustBoard(t, InitialFEN)
	Apply(board, findMove(t, board, "e2e4"))

	if !board.EnPassant {
		t.Fatal("EnPassant = false after double push, want true")
	}
	if board.EPCol != 'e' || board.EPRank != '3' {
		t.Errorf("en passant target = %c%c, want e3", board.EPCol, board.EPRank)
	}
}

// TestEnPassantClearedAfterOneMove verifies the target survives exactly
// one ply regardless of the reply.
func TestEnPassantClearedAfterOneMove(t *testing.T) {
	board := mustBoard(t, InitialFEN)
	Apply(board, findMove(t, board, "e2e4"))
	Apply(board, findMove(t, board, "g8f6"))

	if board.EnPassant {
		t.Error("EnPassant still set after the reply, want cleared")
	}
}

// TestApplyEnPassantRemovesVictim verifies the captured pawn is removed
// from its own square, not the destination.
func TestApplyEnPassantRemovesVictim(t *testing.T) {
	board := mustBoard(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	Apply(board, findMove(t, board, "e5f6"))

	if got := board.Get('f', '5'); got != chess.Empty {
		t.Errorf("victim square f5 = %v, want Empty", got)
	}
	if got := board.Get('f', '6'); got != chess.W(chess.Pawn) {
		t.Errorf("destination f6 = %v, want white pawn", got)
	}
}

// TestApplyCastleRelocatesRook verifies both castle sides move the rook.
func TestApplyCastleRelocatesRook(t *testing.T) {
	tests := []struct {
		name     string
		move     string
		rookFrom chess.Col
		rookTo   chess.Col
	}{
		{"kingside", "e1g1", 'h', 'f'},
		{"queenside", "e1c1", 'a', 'd'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
			Apply(board, findMove(t, board, tt.move))

			if got := board.Get(tt.rookFrom, '1'); got != chess.Empty {
				t.Errorf("rook origin %c1 = %v, want Empty", tt.rookFrom, got)
			}
			if got := board.Get(tt.rookTo, '1'); got != chess.W(chess.Rook) {
				t.Errorf("rook destination %c1 = %v, want white rook", tt.rookTo, got)
			}
			if k, q := board.CastlingRights(chess.White); k != 0 || q != 0 {
				t.Errorf("white castling rights after castle = %v, %v, want cleared", k, q)
			}
		})
	}
}

// TestApplyRookMoveClearsOneRight verifies only the matching flag clears.
func TestApplyRookMoveClearsOneRight(t *testing.T) {
	board := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	Apply(board, findMove(t, board, "h1h2"))

	k, q := board.CastlingRights(chess.White)
	if k != 0 {
		t.Error("kingside right survived the h-rook move")
	}
	if q != 'a' {
		t.Error("queenside right lost on an h-rook move")
	}
}

// TestApplyRookCaptureClearsVictimRight verifies a captured rook clears
// the opponent's flag.
func TestApplyRookCaptureClearsVictimRight(t *testing.T) {
	board := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	Apply(board, findMove(t, board, "a1a8"))

	k, q := board.CastlingRights(chess.Black)
	if q != 0 {
		t.Error("black queenside right survived the a8 rook capture")
	}
	if k != 'h' {
		t.Error("black kingside right lost on an a8 capture")
	}
}

// TestApplyPromotionDefaultsToQueen verifies the documented policy for
// an unspecified promotion piece.
func TestApplyPromotionDefaultsToQueen(t *testing.T) {
	board := mustBoard(t, "8/P6k/8/8/8/8/7K/8 w - - 0 1")
	Apply(board, findMove(t, board, "a7a8q"))

	if got := board.Get('a', '8'); got != chess.W(chess.Queen) {
		t.Errorf("promoted piece = %v, want white queen", got)
	}
	if got := board.Get('a', '7'); got != chess.Empty {
		t.Errorf("origin a7 = %v, want Empty", got)
	}
}

// TestApplyGeneratedPromotionQueens verifies a promotion move straight
// from the generator, with its Promotion field untouched, queens for
// both colours.
func TestApplyGeneratedPromotionQueens(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want chess.Piece
	}{
		{"white", "8/P6k/8/8/8/8/7K/8 w - - 0 1", "a7a8q", chess.W(chess.Queen)},
		{"black", "8/7k/8/8/8/8/p6K/8 b - - 0 1", "a2a1q", chess.B(chess.Queen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			move := findMove(t, board, tt.move)

			Apply(board, move)
			square := tt.move[2:4]
			if got := board.Get(chess.Col(square[0]), chess.Rank(square[1])); got != tt.want {
				t.Errorf("promoted piece = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestApplyCounters verifies the halfmove clock and move number updates.
func TestApplyCounters(t *testing.T) {
	board := mustBoard(t, InitialFEN)

	Apply(board, findMove(t, board, "g1f3"))
	if board.HalfmoveClock != 1 {
		t.Errorf("HalfmoveClock after quiet knight move = %d, want 1", board.HalfmoveClock)
	}
	if board.MoveNumber != 1 {
		t.Errorf("MoveNumber after white's move = %d, want 1", board.MoveNumber)
	}

	Apply(board, findMove(t, board, "e7e5"))
	if board.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock after pawn move = %d, want 0", board.HalfmoveClock)
	}
	if board.MoveNumber != 2 {
		t.Errorf("MoveNumber after black's move = %d, want 2", board.MoveNumber)
	}
}
