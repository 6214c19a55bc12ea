package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/assapir/chess/board"
	"github.com/assapir/chess/engine"
)

func clearScreen() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	_ = cmd.Run()
}

func printMemoryUsage(proc *process.Process) {
	if proc == nil {
		return
	}
	info, err := proc.MemoryInfo()
	if err != nil {
		return
	}
	memoryInMB := float64(info.RSS) / 1048576.0
	fmt.Printf("Memory usage: %.2f MB\n", memoryInMB)
}

func main() {
	delayFlag := flag.Duration("delay", 300*time.Millisecond, "pause between moves so the game is visible")
	maxMovesFlag := flag.Int("maxmoves", 0, "stop after this many half-moves (0 = play until the game ends)")
	noClearFlag := flag.Bool("noclear", false, "do not clear the terminal between moves")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Printf("memory reporting unavailable: %v", err)
		proc = nil
	}

	engine.ResetForNewGame()
	b := board.New()
	fmt.Println(b)

	for halfMoves := 0; *maxMovesFlag == 0 || halfMoves < *maxMovesFlag; halfMoves++ {
		printMemoryUsage(proc)

		start := time.Now()
		mv, ok := engine.FindBestMove(b)
		if !ok {
			fmt.Printf("Stalemate! No valid moves for %v\n", b.Turn())
			return
		}

		b.ApplyMove(mv.From, mv.To)
		if !*noClearFlag {
			clearScreen()
		}
		fmt.Println(b)
		fmt.Printf("Played %v (%v) in %v, %d nodes\n",
			mv, b.Turn().Other(), time.Since(start), engine.NodesSearched())

		if b.IsCheckmate(b.Turn()) {
			fmt.Printf("Checkmate! %v wins.\n", b.Turn().Other())
			return
		}

		time.Sleep(*delayFlag)
	}
}
