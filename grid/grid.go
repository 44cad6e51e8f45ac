package grid

import (
	"strings"

	"github.com/cespare/xxhash"
)

// Position identifies a single cell in a grid.
type Position struct {
	Row int
	Col int
}

// Grid is a read-only, possibly ragged, two-dimensional grid of letters.
// Rows do not need to have the same length.
type Grid struct {
	rows [][]rune
}

// New creates a grid from the given rows. The rows are copied, so the
// caller is free to reuse them afterwards.
func New(rows [][]rune) *Grid {
	g := &Grid{rows: make([][]rune, len(rows))}
	for i, r := range rows {
		g.rows[i] = append([]rune(nil), r...)
	}
	return g
}

// FromStrings creates a grid with one row per string.
func FromStrings(lines ...string) *Grid {
	g := &Grid{rows: make([][]rune, len(lines))}
	for i, l := range lines {
		g.rows[i] = []rune(l)
	}
	return g
}

func (g *Grid) NumRows() int {
	return len(g.rows)
}

// RowLen returns the length of the given row, or 0 if the row does not exist.
func (g *Grid) RowLen(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// At returns the letter at the given row and column. The second return
// value is false if the cell lies outside the grid; this includes columns
// past the end of a short row.
func (g *Grid) At(row, col int) (rune, bool) {
	if row < 0 || row >= len(g.rows) {
		return 0, false
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return 0, false
	}
	return r[col], true
}

// Fingerprint is a hash of the grid contents. Two grids with the same rows
// have the same fingerprint.
func (g *Grid) Fingerprint() uint64 {
	return xxhash.Sum64String(g.String())
}

func (g *Grid) String() string {
	var sb strings.Builder
	for i, r := range g.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(r))
	}
	return sb.String()
}
