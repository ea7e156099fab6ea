// SPDX-License-Identifier: BSD-3-Clause

package storage

import (
	"context"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/selliott512/sudoku-solvers/puzzle"
)

var testGrid = puzzle.Grid{
	{4, 0, 0, 0, 0, 3, 5, 0, 2},
	{0, 0, 9, 5, 0, 6, 3, 4, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 8},
	{0, 0, 0, 0, 3, 4, 8, 6, 0},
	{0, 0, 4, 6, 0, 5, 2, 0, 0},
	{0, 2, 8, 7, 9, 0, 0, 0, 0},
	{9, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 8, 7, 3, 0, 2, 9, 0, 0},
	{5, 0, 2, 9, 0, 0, 0, 0, 6},
}

// Tests that need live services take their URLs from the
// environment and skip when they aren't set.

func cacheURL(t *testing.T) string {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set; skipping cache tests")
	}
	return url
}

func databaseURL(t *testing.T) string {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping archive tests")
	}
	return url
}

func TestStoreWithNothingConnected(t *testing.T) {
	s, err := Connect(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Connect with empty config failed: %v", err)
	}
	defer s.Close()
	if s.HasCache() || s.HasDatabase() {
		t.Fatalf("Empty store claims connections: cache=%v db=%v", s.HasCache(), s.HasDatabase())
	}
	if _, found, err := s.CachedSolution(testGrid); found || err != nil {
		t.Errorf("CachedSolution on empty store: found=%v err=%v", found, err)
	}
	if err := s.CacheSolution(testGrid, testGrid); err != nil {
		t.Errorf("CacheSolution on empty store: %v", err)
	}
	res := puzzle.Solve(testGrid)
	if err := s.RecordSolve(context.Background(), testGrid, res, time.Millisecond); err != nil {
		t.Errorf("RecordSolve on empty store: %v", err)
	}
	if solves, err := s.RecentSolves(context.Background(), 5); solves != nil || err != nil {
		t.Errorf("RecentSolves on empty store: %v, %v", solves, err)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	s, err := Connect(context.Background(), Config{CacheURL: cacheURL(t), Env: "test"})
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer s.Close()

	res := puzzle.Solve(testGrid)
	if res.Outcome != puzzle.Solved {
		t.Fatalf("Test puzzle didn't solve: %v", res.Outcome)
	}
	if err := s.CacheSolution(testGrid, res.Grid); err != nil {
		t.Fatalf("CacheSolution failed: %v", err)
	}
	got, found, err := s.CachedSolution(testGrid)
	if err != nil {
		t.Fatalf("CachedSolution failed: %v", err)
	}
	if !found {
		t.Fatalf("CachedSolution missed a just-cached solution")
	}
	if !reflect.DeepEqual(got, res.Grid) {
		t.Errorf("CachedSolution returned:\n%v(expected:\n%v)", got, res.Grid)
	}

	// a different grid must miss
	other := testGrid
	other[0][1] = 6
	if _, found, err := s.CachedSolution(other); found || err != nil {
		t.Errorf("CachedSolution for uncached grid: found=%v err=%v", found, err)
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	s, err := Connect(context.Background(), Config{DatabaseURL: databaseURL(t), Env: "test"})
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	res := puzzle.Solve(testGrid)
	if err := s.RecordSolve(ctx, testGrid, res, 42*time.Millisecond); err != nil {
		t.Fatalf("RecordSolve failed: %v", err)
	}
	solves, err := s.RecentSolves(ctx, 1)
	if err != nil {
		t.Fatalf("RecentSolves failed: %v", err)
	}
	if len(solves) != 1 {
		t.Fatalf("RecentSolves returned %d rows (expected 1)", len(solves))
	}
	sv := solves[0]
	if sv.Puzzle != testGrid.Encode() {
		t.Errorf("Archived puzzle is %q (expected %q)", sv.Puzzle, testGrid.Encode())
	}
	if sv.Solution != res.Grid.Encode() {
		t.Errorf("Archived solution is %q (expected %q)", sv.Solution, res.Grid.Encode())
	}
	if sv.Outcome != "solved" {
		t.Errorf("Archived outcome is %q (expected %q)", sv.Outcome, "solved")
	}
	if sv.Duration != 42*time.Millisecond {
		t.Errorf("Archived duration is %v (expected %v)", sv.Duration, 42*time.Millisecond)
	}
}

func TestArchiveUnsolvable(t *testing.T) {
	s, err := Connect(context.Background(), Config{DatabaseURL: databaseURL(t), Env: "test"})
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	var conflicting puzzle.Grid
	conflicting[0][0], conflicting[0][4] = 5, 5
	res := puzzle.Solve(conflicting)
	if res.Outcome != puzzle.Unsolvable {
		t.Fatalf("Conflicting grid solved: %v", res.Outcome)
	}
	if err := s.RecordSolve(ctx, conflicting, res, 0); err != nil {
		t.Fatalf("RecordSolve failed: %v", err)
	}
	solves, err := s.RecentSolves(ctx, 1)
	if err != nil {
		t.Fatalf("RecentSolves failed: %v", err)
	}
	if len(solves) != 1 || solves[0].Outcome != "unsolvable" || solves[0].Solution != "" {
		t.Errorf("Unexpected archived row: %+v", solves)
	}
}
