// chess is an interactive terminal chess game with full rule
// enforcement: legal-move generation, check, checkmate, stalemate,
// castling, en passant and promotion.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SixFiveMil/Chess/internal/engine"
	"github.com/SixFiveMil/Chess/internal/game"
	"github.com/SixFiveMil/Chess/internal/tui"
)

const programVersion = "0.1.0"

var (
	version  = flag.Bool("version", false, "print version and exit")
	startFEN = flag.String("fen", "", "start from a custom position (FEN)")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	g := game.New()
	if *startFEN != "" {
		board, err := engine.NewBoardFromFEN(*startFEN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing position: %v\n", err)
			os.Exit(1)
		}
		g = game.NewFromBoard(board)
	}

	if err := tui.Run(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "An interactive terminal chess game.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nIn-game commands:\n")
	fmt.Fprintf(os.Stderr, "  e2e4   move from square to square (e7e8q to choose a promotion)\n")
	fmt.Fprintf(os.Stderr, "  moves  list all legal moves\n")
	fmt.Fprintf(os.Stderr, "  undo   undo the last move\n")
	fmt.Fprintf(os.Stderr, "  help   show in-game help\n")
	fmt.Fprintf(os.Stderr, "  quit   exit the game\n")
}
