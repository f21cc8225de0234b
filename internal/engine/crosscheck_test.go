package engine

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/SixFiveMil/Chess/internal/chess"
)

// TestLegalMovesAgainstReferenceGenerator compares full legal move sets
// with an independent bitboard generator over a suite of positions.
func TestLegalMovesAgainstReferenceGenerator(t *testing.T) {
	fens := []struct {
		name string
		fen  string
	}{
		{"initial", InitialFEN},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
		{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
		{"en passant pending", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"},
		{"promotions", "1n5k/P7/8/8/8/8/8/7K w - - 0 1"},
		{"black to move", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{"pins and checks", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"},
		{"castling rights mixed", "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 1"},
	}

	for _, tt := range fens {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := expandedMoveTexts(AllLegalMoves(board, board.ToMove))

			ref := dragontoothmg.ParseFen(tt.fen)
			want := referenceMoveTexts(&ref)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("move set disagrees with reference (-reference +ours):\n%s", diff)
			}
		})
	}
}

// expandedMoveTexts renders moves as square-pair texts, expanding each
// promotion into its four concrete piece choices to match a generator
// that enumerates them individually.
func expandedMoveTexts(moves []chess.Move) []string {
	texts := make([]string, 0, len(moves))
	for _, m := range moves {
		if m.Class == chess.PawnPromotion {
			base := m.Text()
			base = base[:len(base)-1]
			for _, p := range []string{"q", "r", "b", "n"} {
				texts = append(texts, base+p)
			}
			continue
		}
		texts = append(texts, m.Text())
	}
	sort.Strings(texts)
	return texts
}

func referenceMoveTexts(b *dragontoothmg.Board) []string {
	moves := b.GenerateLegalMoves()
	texts := make([]string, 0, len(moves))
	for i := range moves {
		texts = append(texts, moves[i].String())
	}
	sort.Strings(texts)
	return texts
}
