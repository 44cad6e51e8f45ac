package scanner

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// WindowSize is the number of cells checked for every placement. It is
// also the length of every Target.
const WindowSize = 4

// Target is the word being searched for.
type Target [WindowSize]rune

// XMAS is the word the wordsearch binary looks for.
var XMAS = Target{'X', 'M', 'A', 'S'}

var ErrTargetLength = errors.New("target has the wrong length")

// ParseTarget turns a string of exactly WindowSize letters into a Target.
func ParseTarget(s string) (Target, error) {
	var t Target
	if n := utf8.RuneCountInString(s); n != WindowSize {
		return t, fmt.Errorf("%w: %q has %d letters, need %d", ErrTargetLength, s, n, WindowSize)
	}
	i := 0
	for _, r := range s {
		t[i] = r
		i++
	}
	return t, nil
}

func (t Target) String() string {
	return string(t[:])
}
