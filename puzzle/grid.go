// SPDX-License-Identifier: BSD-3-Clause

// Package puzzle provides the model for standard 9x9 Sudoku
// grids and a backtracking solver over them.
//
// In this package, a grid is made of cells which are either empty
// (represented with a 0 value) or hold a digit between 1 and 9.
// Cells are addressed by (row, column) pairs that start at (0, 0)
// in the top-left corner and increase left-to-right,
// top-to-bottom (English reading order).
//
// A grid is a plain value type: assigning or passing one copies
// it, so the solver can mutate its working copy freely without
// aliasing the caller's grid.  The cells holding the original
// clues of a puzzle are captured once per solve in a FixedMask,
// which the solver never writes through.
package puzzle

// Side is the side length of a grid, and also the number of
// distinct cell values.
const Side = 9

// boxSide is the side length of the 3x3 boxes.
const boxSide = 3

// A Grid is a complete 9x9 Sudoku grid.  Cell values are 0
// (empty) through 9.  No validity constraint is enforced by
// construction; an unsatisfiable set of clues is detected by the
// solver, not rejected by the type.
type Grid [Side][Side]int

// A Cell addresses one cell of a grid.
type Cell struct {
	Row int
	Col int
}

// A FixedMask records which cells of a grid held clues when a
// solve started.  It is derived once and read-only thereafter:
// true cells are givens the solver must not touch, false cells
// are free for the search to assign.
type FixedMask [Side][Side]bool

// Fixed derives the mask of given cells from a starting grid.
func Fixed(g Grid) FixedMask {
	var m FixedMask
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			m[r][c] = g[r][c] != 0
		}
	}
	return m
}

/*

Validity checking

*/

// CellValid reports whether the value at (row, col) conflicts
// with another cell in its row, column, or containing 3x3 box.
// Only equal nonzero values conflict, so an empty cell is always
// valid.  The receiver is not modified.
func (g Grid) CellValid(row, col int) bool {
	v := g[row][col]
	if v == 0 {
		return true
	}

	// Row first, so rejections happen in reading order.
	for c := 0; c < Side; c++ {
		if c != col && g[row][c] == v {
			return false
		}
	}

	for r := 0; r < Side; r++ {
		if r != row && g[r][col] == v {
			return false
		}
	}

	boxRow, boxCol := boxSide*(row/boxSide), boxSide*(col/boxSide)
	for r := boxRow; r < boxRow+boxSide; r++ {
		for c := boxCol; c < boxCol+boxSide; c++ {
			if (r != row || c != col) && g[r][c] == v {
				return false
			}
		}
	}

	return true
}

// Valid reports whether every nonzero cell of the grid satisfies
// CellValid.  Empty cells don't count against validity, so a
// partially filled grid can be valid.
func (g Grid) Valid() bool {
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			if g[r][c] != 0 && !g.CellValid(r, c) {
				return false
			}
		}
	}
	return true
}

// Filled reports whether the grid has no empty cells.  A grid
// that is both Filled and Valid is a Sudoku solution.
func (g Grid) Filled() bool {
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}
