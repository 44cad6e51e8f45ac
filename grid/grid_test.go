package grid

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtInBounds(t *testing.T) {
	g := FromStrings("XMAS", "SAMX")
	ch, ok := g.At(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 'X', ch)
	ch, ok = g.At(1, 3)
	assert.True(t, ok)
	assert.Equal(t, 'X', ch)
}

func TestAtOutOfBounds(t *testing.T) {
	g := FromStrings("XMAS", "XM", "")
	type lookup struct {
		row, col int
	}
	for _, tc := range []lookup{
		{-1, 0}, {0, -1}, {0, 4}, {1, 2}, {2, 0}, {3, 0}, {100, 100},
	} {
		ch, ok := g.At(tc.row, tc.col)
		assert.False(t, ok, "lookup (%d, %d)", tc.row, tc.col)
		assert.Equal(t, rune(0), ch)
	}
}

func TestRowLen(t *testing.T) {
	g := FromStrings("XMAS", "XM", "")
	assert.Equal(t, 3, g.NumRows())
	assert.Equal(t, 4, g.RowLen(0))
	assert.Equal(t, 2, g.RowLen(1))
	assert.Equal(t, 0, g.RowLen(2))
	assert.Equal(t, 0, g.RowLen(3))
	assert.Equal(t, 0, g.RowLen(-1))
}

func TestNewCopiesRows(t *testing.T) {
	rows := [][]rune{[]rune("XMAS")}
	g := New(rows)
	rows[0][0] = 'Q'
	ch, _ := g.At(0, 0)
	assert.Equal(t, 'X', ch)
}

func TestFingerprint(t *testing.T) {
	a := FromStrings("XMAS", "SAMX")
	b := New([][]rune{[]rune("XMAS"), []rune("SAMX")})
	c := FromStrings("XMAS", "SAMS")
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Equal(t, "XMAS\nSAMX", a.String())
}

func TestDirections(t *testing.T) {
	assert.Len(t, AllDirections, 8)
	seen := map[[2]int]bool{}
	for _, d := range AllDirections {
		dr, dc := d.Vector()
		assert.False(t, dr == 0 && dc == 0, d.String())
		seen[[2]int{dr, dc}] = true
	}
	assert.Len(t, seen, 8)

	assert.Equal(t, HorizontalAxis, Left.Axis())
	assert.Equal(t, VerticalAxis, Up.Axis())
	assert.Equal(t, DiagonalAxis, UpLeft.Axis())
	assert.Equal(t, "down-left", DownLeft.String())
	assert.Equal(t, "none", Direction(42).String())

	p := Position{Row: 3, Col: 0}.Step(UpRight, 3)
	assert.Equal(t, Position{Row: 0, Col: 3}, p)
}

func TestReadKeepsLinesLiterally(t *testing.T) {
	g, err := Read(strings.NewReader("XM S\r\n SAMX\n\nXMAS"))
	assert.Nil(t, err)
	assert.Equal(t, 4, g.NumRows())
	assert.Equal(t, "XM S\n SAMX\n\nXMAS", g.String())
}

func TestReadTrailingNewline(t *testing.T) {
	g, err := Read(strings.NewReader("XMAS\nSAMX\n"))
	assert.Nil(t, err)
	assert.Equal(t, 2, g.NumRows())

	g, err = Read(strings.NewReader(""))
	assert.Nil(t, err)
	assert.Equal(t, 0, g.NumRows())
}

func TestReadInvalidText(t *testing.T) {
	_, err := Read(strings.NewReader("XM\xffAS\n"))
	assert.True(t, errors.Is(err, ErrLoad))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	err := os.WriteFile(path, []byte("XMAS\nSAMX\n"), 0o644)
	assert.Nil(t, err)

	g, err := Load(path)
	assert.Nil(t, err)
	assert.Equal(t, 2, g.NumRows())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.True(t, errors.Is(err, ErrLoad))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
