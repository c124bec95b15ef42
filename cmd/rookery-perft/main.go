// Command rookery-perft runs perft over a FEN position. With -divide
// it prints per-root-move subtotals, which is the first tool to reach
// for when a node count disagrees with a reference table. With -record
// or -check it talks to the local perft database, so a later run can
// flag a move-generator regression without a reference table at hand.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jmarlow/rookery/internal/board"
	"github.com/jmarlow/rookery/internal/perftdb"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to the starting position)")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-root-move node counts")
	repeat := flag.Int("repeat", 1, "repeat perft N times for steadier timings")
	record := flag.Bool("record", false, "store this run (and baseline, if absent) in the perft database")
	check := flag.Bool("check", false, "compare the node count against the stored baseline")
	cpuProf := flag.String("cpuprofile", "", "write CPU profile to file")
	memProf := flag.String("memprofile", "", "write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatalf("creating cpuprofile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("start cpu profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var nodes uint64
	var elapsed time.Duration

	if *divide {
		nodes = pos.DividePerft(*depth, os.Stdout)
	} else {
		start := time.Now()
		for i := 0; i < *repeat; i++ {
			nodes = pos.Perft(*depth)
		}
		elapsed = time.Since(start) / time.Duration(*repeat)
		nps := float64(nodes) / elapsed.Seconds()
		fmt.Printf("depth %d  nodes %d  time %s  nps %.0f\n", *depth, nodes, elapsed, nps)
	}

	if *record || *check {
		store, err := perftdb.OpenDefault()
		if err != nil {
			log.Fatalf("opening perft database: %v", err)
		}
		defer store.Close()

		if *check {
			want, found, err := store.LoadBaseline(*fen, *depth)
			switch {
			case err != nil:
				log.Fatalf("loading baseline: %v", err)
			case !found:
				fmt.Println("no stored baseline for this position/depth")
			case want != nodes:
				fmt.Printf("MISMATCH: baseline %d, got %d\n", want, nodes)
				os.Exit(1)
			default:
				fmt.Println("baseline OK")
			}
		}

		if *record {
			if _, found, _ := store.LoadBaseline(*fen, *depth); !found {
				if err := store.SaveBaseline(*fen, *depth, nodes); err != nil {
					log.Fatalf("saving baseline: %v", err)
				}
			}
			run := perftdb.Run{FEN: *fen, Depth: *depth, Nodes: nodes, Elapsed: elapsed, When: time.Now()}
			if err := store.RecordRun(run); err != nil {
				log.Fatalf("recording run: %v", err)
			}
		}
	}

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Fatalf("creating memprofile: %v", err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("write heap profile: %v", err)
		}
		_ = f.Close()
	}
}
