// SPDX-License-Identifier: BSD-3-Clause

package puzzle

import (
	"bufio"
	"io"
	"os"
	"strings"
)

/*

Puzzle file format

A puzzle file is text: nine data lines of nine cells each, where
a cell is a digit 1-9 (a given) or '.' or '0' (empty).
Whitespace inside a line is ignored, so cells may be grouped for
readability.  Blank lines and lines starting with '#' are
comments.  Anything else is an error - a character outside
0-9/'.' is never guessed at.

*/

// ReadFile reads one puzzle from the file at path.  All errors
// carry the path, and line-level errors the 1-based line number.
func ReadFile(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return Grid{}, fileError(path, UnreadableCondition, err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read reads one puzzle from r.  The name is used in errors the
// way ReadFile uses its path.
func Read(r io.Reader, name string) (Grid, error) {
	var g Grid
	row, line := 0, 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		// squeeze out all whitespace before looking at the line
		text := strings.Join(strings.Fields(scanner.Text()), "")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if row >= Side {
			return Grid{}, lineError(name, line, WrongLineCountCondition, row+1)
		}
		if len(text) != Side {
			return Grid{}, lineError(name, line, WrongLineLengthCondition, len(text))
		}
		for i := 0; i < Side; i++ {
			switch ch := text[i]; {
			case ch == '.':
				g[row][i] = 0
			case ch >= '0' && ch <= '9':
				g[row][i] = int(ch - '0')
			default:
				return Grid{}, lineError(name, line, BadCharacterCondition, string(ch))
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return Grid{}, fileError(name, UnreadableCondition, err)
	}
	if row != Side {
		return Grid{}, fileError(name, WrongLineCountCondition, row)
	}
	return g, nil
}

/*

Print forms of grids

*/

// String gives the standard print form of a grid: nine rows of
// digits with '.' for empty cells, a space between the 3-column
// bands and a blank line between the 3-row bands.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			if c != 0 && c%boxSide == 0 {
				b.WriteByte(' ')
			}
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + byte(g[r][c]))
			}
		}
		b.WriteByte('\n')
		if r != Side-1 && r%boxSide == boxSide-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Markdown returns a markdown-format table for a grid as a
// string, with columns numbered 1-9 and rows lettered a-i.
func (g Grid) Markdown() string {
	var b strings.Builder
	// first put out the header
	b.WriteString("|     |")
	for i := 0; i < Side; i++ {
		b.WriteString("  ")
		b.WriteByte('1' + byte(i))
		b.WriteString("  |")
	}
	b.WriteByte('\n')
	// next comes the header separator line
	b.WriteByte('|')
	for i := 0; i < Side+1; i++ {
		b.WriteString(":---:|")
	}
	b.WriteByte('\n')
	// next comes the content of the grid,
	// with each line prefixed by a letter.
	for r, rowhdr := 0, byte('a'); r < Side; r, rowhdr = r+1, rowhdr+1 {
		b.WriteString("|**")
		b.WriteByte(rowhdr)
		b.WriteString("**")
		for c := 0; c < Side; c++ {
			b.WriteString("|  ")
			if g[r][c] == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteByte('0' + byte(g[r][c]))
			}
			b.WriteString("  ")
		}
		b.WriteString("|\n")
	}
	return b.String()
}

/*

Compact encoding, for storage keys and archive rows

*/

// Encode returns the 81-character digit string for a grid, in
// reading order, with '0' for empty cells.
func (g Grid) Encode() string {
	b := make([]byte, 0, Side*Side)
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			b = append(b, '0'+byte(g[r][c]))
		}
	}
	return string(b)
}

// Decode is the inverse of Encode.  It accepts '.' as a synonym
// for '0' so stored and file forms can be mixed.
func Decode(s string) (Grid, error) {
	var g Grid
	if len(s) != Side*Side {
		return Grid{}, fileError("<encoded>", WrongLineLengthCondition, len(s))
	}
	for i := 0; i < Side*Side; i++ {
		switch ch := s[i]; {
		case ch == '.':
			// empty
		case ch >= '0' && ch <= '9':
			g[i/Side][i%Side] = int(ch - '0')
		default:
			return Grid{}, fileError("<encoded>", BadCharacterCondition, string(ch))
		}
	}
	return g, nil
}
