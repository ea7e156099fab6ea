// SPDX-License-Identifier: BSD-3-Clause

package puzzle

/*

Sudoku puzzle solver

The solver is an exhaustive depth-first search that walks the
free (non-given) cells of the grid in reading order, trying
candidate digits in increasing order.  There is no recursion and
no explicit stack: the working grid itself holds the current
tentative assignment of every visited cell, and a single cursor
marks the cell under assignment.

1. Capture the fixed mask (which cells are givens) and check the
starting grid.  If the givens already conflict, the puzzle is
unsolvable and no search is attempted.

2. Step the cursor forward to the first free cell.  If there is
none, the grid has no empty cells and is already a candidate
solution.

3. Increment the digit in the cursor's cell:

3.1 If it passes 9, the cell's candidates are exhausted.  Clear
the cell and step the cursor backward to the previous free cell
(this is the backtrack).  If there is no previous free cell, the
whole search space is exhausted and the puzzle is unsolvable.

3.2 Otherwise, if the new digit doesn't conflict with its row,
column, or box, step the cursor forward.  If there is no next
free cell, every free cell holds a locally consistent digit and
the search is done.  On a conflict the cursor stays put, so the
next iteration tries the next digit.

4. Go to step 3.

Local pairwise consistency, enforced incrementally at every
accepted digit, implies global validity of the final grid.  The
solver still double-checks the result (fully filled and globally
valid); a failure there means a bug in the search itself and is
reported as a distinct outcome rather than passed off as a
solution.

The search is deterministic: the same grid always yields the same
outcome, and the same solution grid when solved.  The worst case
is exponential in the number of free cells; there is no pruning
beyond the incremental conflict check and no iteration limit.

*/

// An Outcome classifies the result of a solve.
type Outcome int

const (
	// Solved means the search found a complete, valid grid.
	Solved Outcome = iota
	// Unsolvable means the search space was exhausted without
	// finding a valid assignment, or the givens conflicted
	// before any search began.  A legitimate outcome, not a
	// failure of the solver.
	Unsolvable
	// Inconsistent means the search believed it found a solution
	// but the final double check failed.  This indicates a defect
	// in the solver and should never occur.
	Inconsistent
)

// Outcomes implement Stringer.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	case Inconsistent:
		return "inconsistent"
	}
	return "unknown"
}

// A Result is what one solve produces.  For Solved and
// Inconsistent outcomes Grid is the working grid at the end of
// the search; for Unsolvable it is the original input grid, kept
// for diagnostic re-printing.  Reasons is only set for
// Inconsistent results and lists the double checks that failed.
// Steps counts the candidate digits tried during the search.
type Result struct {
	Outcome Outcome
	Grid    Grid
	Reasons []string
	Steps   int
}

// Reason strings for Inconsistent results.
const (
	reasonNotValid  = "not valid"
	reasonNotSolved = "not solved"
)

// Solve searches for a solution to the given grid and returns
// the result.  The input grid is copied, never modified.
func Solve(g Grid) Result {
	work := g
	fixed := Fixed(work)

	// Don't search a grid whose givens already conflict.
	if !work.Valid() {
		return Result{Outcome: Unsolvable, Grid: g}
	}

	// The first forward step from the virtual start position
	// lands on the first free cell.  If there isn't one, the grid
	// is already a candidate solution and only needs checking.
	cur, ok := fixed.Step(start, Forward)
	found := !ok
	steps := 0
	for ok {
		v := work[cur.Row][cur.Col] + 1
		if v > Side {
			// Candidates exhausted here; backtrack.
			work[cur.Row][cur.Col] = 0
			cur, ok = fixed.Step(cur, Backward)
			continue
		}
		work[cur.Row][cur.Col] = v
		steps++
		if work.CellValid(cur.Row, cur.Col) {
			cur, ok = fixed.Step(cur, Forward)
			if !ok {
				// Stepped past the end - must be solved.
				found = true
			}
		}
	}

	if !found {
		return Result{Outcome: Unsolvable, Grid: g, Steps: steps}
	}

	// Double-check the candidate solution.  Both checks hold by
	// construction of the search; a failure is a solver bug and
	// gets its own outcome so it can't masquerade as a solution.
	var reasons []string
	if !work.Valid() {
		reasons = append(reasons, reasonNotValid)
	}
	if !work.Filled() {
		reasons = append(reasons, reasonNotSolved)
	}
	if len(reasons) > 0 {
		return Result{Outcome: Inconsistent, Grid: work, Reasons: reasons, Steps: steps}
	}
	return Result{Outcome: Solved, Grid: work, Steps: steps}
}

/*

Cell stepping

*/

// A Direction tells the stepper which way to move through the
// grid in reading order.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// start is the virtual position one cell before the grid, so
// that the first forward step lands on (0, 0) if it is free.
var start = Cell{Row: 0, Col: -1}

// Step advances from the given cell one cell at a time in
// reading order (columns wrap with a row change) until it finds
// a cell the mask marks free, and returns it with ok true.  If
// the walk leaves the grid first there is no further free cell
// in that direction, and ok is false.
func (m FixedMask) Step(from Cell, dir Direction) (Cell, bool) {
	r, c := from.Row, from.Col
	for {
		c += int(dir)
		if c < 0 {
			c = Side - 1
			r--
		} else if c > Side-1 {
			c = 0
			r++
		}
		if r < 0 || r > Side-1 {
			return Cell{}, false
		}
		if !m[r][c] {
			return Cell{Row: r, Col: c}, true
		}
	}
}
