// Package scanner counts every placement of a fixed-length word in a grid,
// reading in all eight directions.
package scanner

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordsearch/grid"
)

// Match is a single placement of the target: the cell holding its first
// letter, and the direction the rest of the letters follow.
type Match struct {
	Start     grid.Position
	Direction grid.Direction
}

// Counts holds the number of matches found by each pass of a scan.
type Counts struct {
	Horizontal int
	Vertical   int
	Diagonal   int
	// ByDirection is indexed by grid.Direction.
	ByDirection [8]int
}

func (c Counts) Total() int {
	return c.Horizontal + c.Vertical + c.Diagonal
}

func (c *Counts) add(d grid.Direction) {
	c.ByDirection[d]++
	switch d.Axis() {
	case grid.HorizontalAxis:
		c.Horizontal++
	case grid.VerticalAxis:
		c.Vertical++
	default:
		c.Diagonal++
	}
}

func (c Counts) merge(o Counts) Counts {
	c.Horizontal += o.Horizontal
	c.Vertical += o.Vertical
	c.Diagonal += o.Diagonal
	for i := range c.ByDirection {
		c.ByDirection[i] += o.ByDirection[i]
	}
	return c
}

// Scanner searches grids for a single target word. A Scanner holds no
// state between scans and may be used from several goroutines at once.
type Scanner struct {
	target  Target
	threads int
}

type Option func(*Scanner)

// WithThreads makes ScanContext spread rows and bands over up to n
// goroutines. Values below 2 keep the scan on the calling goroutine.
func WithThreads(n int) Option {
	return func(s *Scanner) {
		s.threads = n
	}
}

func New(target Target, opts ...Option) *Scanner {
	s := &Scanner{target: target, threads: 1}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Scanner) Target() Target {
	return s.target
}

// Scan counts the target in g using a sequential scanner.
func Scan(g *grid.Grid, target Target) Counts {
	return New(target).Scan(g)
}

// Scan counts every (start cell, direction) pair at which the target
// appears. Overlapping matches are all counted. It never fails; cells
// outside the grid simply don't match.
func (s *Scanner) Scan(g *grid.Grid) Counts {
	var c Counts
	s.walk(g, func(m Match) { c.add(m.Direction) })
	return c
}

// Matches lists every placement found by Scan, rows first (top to
// bottom), then bands (top to bottom); left to right within each.
func (s *Scanner) Matches(g *grid.Grid) []Match {
	var ms []Match
	s.walk(g, func(m Match) { ms = append(ms, m) })
	return ms
}

// ScanContext is like Scan, but runs on the scanner's worker pool when it
// has more than one thread. The counts are the same as Scan's.
func (s *Scanner) ScanContext(ctx context.Context, g *grid.Grid) (Counts, error) {
	if s.threads < 2 {
		if err := ctx.Err(); err != nil {
			return Counts{}, err
		}
		return s.Scan(g), nil
	}

	nrows := g.NumRows()
	nbands := max(nrows-WindowSize+1, 0)
	partial := make([]Counts, nrows+nbands)

	log.Debug().Int("threads", s.threads).Int("rows", nrows).Int("bands", nbands).
		Msg("starting-parallel-scan")

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.threads)
	for i := range partial {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found := func(m Match) { partial[i].add(m.Direction) }
			if i < nrows {
				s.scanRow(g, i, found)
			} else {
				s.scanBand(g, i-nrows, found)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Counts{}, err
	}

	return lo.Reduce(partial, func(acc Counts, c Counts, _ int) Counts {
		return acc.merge(c)
	}, Counts{}), nil
}

func (s *Scanner) walk(g *grid.Grid, found func(Match)) {
	for row := 0; row < g.NumRows(); row++ {
		s.scanRow(g, row, found)
	}
	for top := 0; top+WindowSize <= g.NumRows(); top++ {
		s.scanBand(g, top, found)
	}
}

// scanRow checks every window that fits inside the row, in both
// horizontal directions.
func (s *Scanner) scanRow(g *grid.Grid, row int, found func(Match)) {
	last := WindowSize - 1
	for col := 0; col+last < g.RowLen(row); col++ {
		s.try(g, grid.Position{Row: row, Col: col}, grid.Right, found)
		s.try(g, grid.Position{Row: row, Col: col + last}, grid.Left, found)
	}
}

// scanBand checks the vertical and diagonal placements in the WindowSize
// rows starting at top. Columns run along the band's first row; every
// placement touches that row, so nothing past its end can match.
func (s *Scanner) scanBand(g *grid.Grid, top int, found func(Match)) {
	last := WindowSize - 1
	bottom := top + last
	for col := 0; col < g.RowLen(top); col++ {
		s.try(g, grid.Position{Row: top, Col: col}, grid.Down, found)
		s.try(g, grid.Position{Row: bottom, Col: col}, grid.Up, found)
		s.try(g, grid.Position{Row: top, Col: col}, grid.DownRight, found)
		s.try(g, grid.Position{Row: top, Col: col + last}, grid.DownLeft, found)
		s.try(g, grid.Position{Row: bottom, Col: col}, grid.UpRight, found)
		s.try(g, grid.Position{Row: bottom, Col: col + last}, grid.UpLeft, found)
	}
}

func (s *Scanner) try(g *grid.Grid, start grid.Position, d grid.Direction, found func(Match)) {
	if s.matchesAt(g, start, d) {
		found(Match{Start: start, Direction: d})
	}
}

// matchesAt reports whether the target reads from start along d. Missing
// cells never equal a target letter.
func (s *Scanner) matchesAt(g *grid.Grid, start grid.Position, d grid.Direction) bool {
	for i, want := range s.target {
		p := start.Step(d, i)
		ch, ok := g.At(p.Row, p.Col)
		if !ok || ch != want {
			return false
		}
	}
	return true
}
