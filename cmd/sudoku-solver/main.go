// SPDX-License-Identifier: BSD-3-Clause

// Batch Sudoku solver: read puzzle files, print a solution (or a
// diagnosis) for each, and optionally remember the work in the
// storage layers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/selliott512/sudoku-solvers/puzzle"
	"github.com/selliott512/sudoku-solvers/storage"
)

func main() {
	_ = godotenv.Load()
	log := newLogger()
	os.Exit(run(os.Stdout, os.Stderr, log, os.Args[1:]))
}

// printUsage writes the usage statement to w.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "sudoku-solver [flags] puzzle1.sud [puzzle2.sud ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h            This help message")
	fmt.Fprintln(w, "  -config PATH  Read configuration from PATH (JSON)")
	fmt.Fprintln(w, "  -markdown     Print grids as markdown tables")
	fmt.Fprintln(w, "  -no-cache     Skip the solution cache")
	fmt.Fprintln(w, "  -history N    Print the N most recent archived solves and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  REDIS_URL     Solution cache URL (optional)")
	fmt.Fprintln(w, "  DATABASE_URL  Solve archive URL (optional)")
	fmt.Fprintln(w, "  SUDOKU_ENV    Cache key prefix (default \"local\")")
}

// run is main without the process-global parts, so tests can call
// it.  It returns the process exit code: 0 when every puzzle
// solved, 1 when any didn't, 2 for usage and read errors.
func run(stdout, stderr io.Writer, log *logger, args []string) int {
	fs := flag.NewFlagSet("sudoku-solver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		configPath string
		markdown   bool
		noCache    bool
		history    int
	)
	fs.StringVar(&configPath, "config", "", "configuration file path")
	fs.BoolVar(&markdown, "markdown", false, "print grids as markdown tables")
	fs.BoolVar(&noCache, "no-cache", false, "skip the solution cache")
	fs.IntVar(&history, "history", 0, "print the N most recent archived solves and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout)
			return 0
		}
		fmt.Fprintln(stderr, err)
		printUsage(stderr)
		return 2
	}
	paths := fs.Args()
	if len(paths) == 0 && history <= 0 {
		printUsage(stderr)
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.err(err.Error())
		return 2
	}
	store := connectStore(log, cfg)
	defer store.Close()

	if history > 0 {
		return printHistory(stdout, log, store, history, markdown)
	}
	return solveAll(stdout, stderr, log, store, paths, markdown, noCache)
}

// connectStore connects the storage layers named in the
// configuration.  Storage is an accelerator, not a requirement:
// if it can't be reached the solver warns and runs without it.
func connectStore(log *logger, cfg appConfig) *storage.Store {
	store, err := storage.Connect(context.Background(), storage.Config{
		CacheURL:    cfg.CacheURL,
		DatabaseURL: cfg.DatabaseURL,
		Env:         cfg.Env,
	})
	if err != nil {
		log.warnf("running without storage: %v", err)
		store, _ = storage.Connect(context.Background(), storage.Config{})
	}
	return store
}

// solveAll solves the puzzle files in argument order.  A repeated
// consecutive path reuses the already-parsed grid.  Unsolvable
// and inconsistent puzzles set the exit code but don't stop the
// batch; an unreadable or malformed file does.
func solveAll(stdout, stderr io.Writer, log *logger, store *storage.Store, paths []string, markdown, noCache bool) int {
	exit := 0
	first := true
	lastPath := ""
	var grid puzzle.Grid
	for _, path := range paths {
		if first {
			first = false
		} else {
			fmt.Fprintln(stdout)
		}
		if path != lastPath {
			g, err := puzzle.ReadFile(path)
			if err != nil {
				log.err(err.Error())
				return 2
			}
			grid = g
		}
		lastPath = path
		if code := solveOne(stdout, stderr, log, store, grid, markdown, noCache); code > exit {
			exit = code
		}
	}
	return exit
}

// solveOne solves a single grid and prints the result: the
// solution grid on stdout when solved, or a diagnosis on stderr
// followed by the relevant grid on stdout when not.
func solveOne(stdout, stderr io.Writer, log *logger, store *storage.Store, g puzzle.Grid, markdown, noCache bool) int {
	if !noCache {
		if soln, found, err := store.CachedSolution(g); err != nil {
			log.warnf("cache lookup failed: %v", err)
		} else if found {
			printGrid(stdout, soln, markdown)
			return 0
		}
	}

	before := time.Now()
	res := puzzle.Solve(g)
	took := time.Since(before)
	log.infof("%v in %d steps (%v)", res.Outcome, res.Steps, took)
	if err := store.RecordSolve(context.Background(), g, res, took); err != nil {
		log.warnf("couldn't archive solve: %v", err)
	}

	switch res.Outcome {
	case puzzle.Solved:
		if !noCache {
			if err := store.CacheSolution(g, res.Grid); err != nil {
				log.warnf("couldn't cache solution: %v", err)
			}
		}
	case puzzle.Unsolvable:
		fmt.Fprintln(stderr, "Could not find a solution for:")
	case puzzle.Inconsistent:
		fmt.Fprintf(stderr, "Found an invalid solution (%s):\n", strings.Join(res.Reasons, ", "))
	}
	printGrid(stdout, res.Grid, markdown)
	if res.Outcome != puzzle.Solved {
		return 1
	}
	return 0
}

// printHistory prints the n most recent archived solves.
func printHistory(stdout io.Writer, log *logger, store *storage.Store, n int, markdown bool) int {
	if !store.HasDatabase() {
		log.err("no solve archive configured; set DATABASE_URL or database_url")
		return 2
	}
	solves, err := store.RecentSolves(context.Background(), n)
	if err != nil {
		log.err(err.Error())
		return 2
	}
	for i, sv := range solves {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintf(stdout, "%s  %s in %d steps (%v)\n",
			sv.SolvedAt.Format(time.RFC3339), sv.Outcome, sv.Steps, sv.Duration)
		enc := sv.Solution
		if enc == "" {
			enc = sv.Puzzle
		}
		grid, err := puzzle.Decode(enc)
		if err != nil {
			log.warnf("bad archive row %d: %v", sv.ID, err)
			continue
		}
		printGrid(stdout, grid, markdown)
	}
	return 0
}

func printGrid(w io.Writer, g puzzle.Grid, markdown bool) {
	if markdown {
		fmt.Fprint(w, g.Markdown())
	} else {
		fmt.Fprint(w, g.String())
	}
}
