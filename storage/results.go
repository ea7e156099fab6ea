// SPDX-License-Identifier: BSD-3-Clause

package storage

import (
	"context"
	"strings"
	"time"

	"github.com/selliott512/sudoku-solvers/puzzle"
)

/*

solve archive

Every finished solve can be recorded in the solves table, one row
per run, so batch history survives the process.  The puzzle and
solution columns hold the compact 81-character encoding.

*/

// A Solve is one archived solve result.
type Solve struct {
	ID       int64
	Puzzle   string // compact encoding of the starting grid
	Solution string // compact encoding of the solution, "" if none
	Outcome  string
	Steps    int
	Duration time.Duration
	SolvedAt time.Time
}

// RecordSolve archives the result of solving g.  With no
// database connected it does nothing.
func (s *Store) RecordSolve(ctx context.Context, g puzzle.Grid, res puzzle.Result, took time.Duration) error {
	if s.pool == nil {
		return nil
	}
	var solution any
	if res.Outcome != puzzle.Unsolvable {
		solution = res.Grid.Encode()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO solves (puzzle, solution, outcome, steps, duration_ms)
		 VALUES ($1, $2, $3, $4, $5)`,
		g.Encode(), solution, res.Outcome.String(), res.Steps, took.Milliseconds())
	return err
}

// RecentSolves returns the n most recently archived solves,
// newest first.  With no database connected it returns nothing.
func (s *Store) RecentSolves(ctx context.Context, n int) ([]Solve, error) {
	if s.pool == nil {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, puzzle, solution, outcome, steps, duration_ms, solved_at
		 FROM solves ORDER BY solved_at DESC, id DESC LIMIT $1`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var (
			sv       Solve
			solution *string
			ms       int64
		)
		if err := rows.Scan(&sv.ID, &sv.Puzzle, &solution, &sv.Outcome, &sv.Steps, &ms, &sv.SolvedAt); err != nil {
			return nil, err
		}
		// CHAR columns come back space-padded
		sv.Puzzle = strings.TrimSpace(sv.Puzzle)
		if solution != nil {
			sv.Solution = strings.TrimSpace(*solution)
		}
		sv.Outcome = strings.TrimSpace(sv.Outcome)
		sv.Duration = time.Duration(ms) * time.Millisecond
		solves = append(solves, sv)
	}
	return solves, rows.Err()
}
