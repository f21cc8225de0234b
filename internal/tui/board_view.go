package tui

import (
	"strings"

	"github.com/SixFiveMil/Chess/internal/chess"
)

var pieceGlyphs = map[chess.Piece]string{
	chess.W(chess.King):   "♔",
	chess.W(chess.Queen):  "♕",
	chess.W(chess.Rook):   "♖",
	chess.W(chess.Bishop): "♗",
	chess.W(chess.Knight): "♘",
	chess.W(chess.Pawn):   "♙",
	chess.B(chess.King):   "♚",
	chess.B(chess.Queen):  "♛",
	chess.B(chess.Rook):   "♜",
	chess.B(chess.Bishop): "♝",
	chess.B(chess.Knight): "♞",
	chess.B(chess.Pawn):   "♟",
}

// RenderBoard renders the position in a fixed-width grid, rank 8 at the
// top, with file and rank labels on the edges.
func RenderBoard(board *chess.Board) string {
	var b strings.Builder
	b.WriteString("   a b c d e f g h\n")
	b.WriteString("  +-+-+-+-+-+-+-+-+\n")

	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		b.WriteByte(byte(rank))
		b.WriteString(" |")
		for col := chess.Col('a'); col <= 'h'; col++ {
			b.WriteString(cell(board.Get(col, rank)))
			b.WriteString("|")
		}
		b.WriteByte(' ')
		b.WriteByte(byte(rank))
		b.WriteString("\n  +-+-+-+-+-+-+-+-+\n")
	}

	b.WriteString("   a b c d e f g h\n")
	return b.String()
}

func cell(piece chess.Piece) string {
	if glyph, ok := pieceGlyphs[piece]; ok {
		return glyph
	}
	return " "
}
