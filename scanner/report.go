package scanner

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/domino14/wordsearch/grid"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is the printable result of scanning one grid.
type Report struct {
	Horizontal  int            `json:"horizontal" yaml:"horizontal"`
	Vertical    int            `json:"vertical" yaml:"vertical"`
	Diagonal    int            `json:"diagonal" yaml:"diagonal"`
	Total       int            `json:"total" yaml:"total"`
	ByDirection map[string]int `json:"by_direction" yaml:"by_direction"`
	Target      string         `json:"target" yaml:"target"`
	Fingerprint string         `json:"fingerprint" yaml:"fingerprint"`
	Matches     []ReportMatch  `json:"matches,omitempty" yaml:"matches,omitempty"`
}

type ReportMatch struct {
	Row       int    `json:"row" yaml:"row"`
	Col       int    `json:"col" yaml:"col"`
	Direction string `json:"direction" yaml:"direction"`
}

// NewReport builds a report for g. Matches are only included if given.
func NewReport(g *grid.Grid, target Target, c Counts, matches []Match) *Report {
	r := &Report{
		Horizontal:  c.Horizontal,
		Vertical:    c.Vertical,
		Diagonal:    c.Diagonal,
		Total:       c.Total(),
		ByDirection: make(map[string]int, len(grid.AllDirections)),
		Target:      target.String(),
		Fingerprint: fmt.Sprintf("%016x", g.Fingerprint()),
	}
	for _, d := range grid.AllDirections {
		r.ByDirection[d.String()] = c.ByDirection[d]
	}
	for _, m := range matches {
		r.Matches = append(r.Matches, ReportMatch{
			Row:       m.Start.Row,
			Col:       m.Start.Col,
			Direction: m.Direction.String(),
		})
	}
	return r
}

// Write renders the report in the given format.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatText, "":
		return r.writeText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown report format %q", format)
}

func (r *Report) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "horizontal = %d\nvertical = %d\ndiagonal = %d\ntotal = %d\n",
		r.Horizontal, r.Vertical, r.Diagonal, r.Total)
	if err != nil {
		return err
	}
	for _, m := range r.Matches {
		if _, err := fmt.Fprintf(w, "%d,%d %s\n", m.Row, m.Col, m.Direction); err != nil {
			return err
		}
	}
	return nil
}
