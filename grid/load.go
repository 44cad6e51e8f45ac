package grid

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// ErrLoad is returned (wrapped) for any grid input that is missing,
// unreadable, or not valid text.
var ErrLoad = errors.New("could not load grid")

// Load reads a grid from the file at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()
	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("rows", g.NumRows()).
		Uint64("fingerprint", g.Fingerprint()).Msg("loaded-grid")
	return g, nil
}

// Read parses a grid with one row per line. Line terminators ("\n" or
// "\r\n") are dropped; everything else on the line, spaces included, is
// kept as-is. A last line without a terminator is still a row.
func Read(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: input is not valid utf-8 text", ErrLoad)
	}
	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return FromStrings(lines...), nil
}
