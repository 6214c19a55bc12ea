package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/assapir/chess/board"
	"github.com/assapir/chess/engine"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "position to analyze (defaults to the initial position)")
	show := flag.Bool("show", false, "print the board after the chosen move")
	flag.Parse()

	b, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	engine.ResetForNewGame()
	start := time.Now()
	mv, ok := engine.FindBestMove(b)
	elapsed := time.Since(start)

	if !ok {
		if b.IsCheckmate(b.Turn()) {
			fmt.Printf("%v is checkmated\n", b.Turn())
		} else {
			fmt.Printf("stalemate: no moves for %v\n", b.Turn())
		}
		return
	}

	fmt.Printf("bestmove %v (%v %v) time %v nodes %d\n",
		mv, b.Turn(), mv.Piece, elapsed, engine.NodesSearched())

	if *show {
		b.ApplyMove(mv.From, mv.To)
		fmt.Print(b)
	}
}
