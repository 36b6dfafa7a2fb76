package ai

import (
	"fmt"
	"strings"
)

type PatternID int

const (
	FiveInARow PatternID = iota
	OpenFour
	OpenThree
	ForcedFour
	OpenTwo
	OpenOne
	BlockedThree
	BlockedTwo
	BlockedOne
	numPatterns
)

var patternNames = [numPatterns]string{
	FiveInARow:   "five-in-a-row",
	OpenFour:     "open-four",
	OpenThree:    "open-three",
	ForcedFour:   "forced-four",
	OpenTwo:      "open-two",
	OpenOne:      "open-one",
	BlockedThree: "blocked-three",
	BlockedTwo:   "blocked-two",
	BlockedOne:   "blocked-one",
}

func (id PatternID) String() string {
	if id < 0 || id >= numPatterns {
		return fmt.Sprintf("pattern(%d)", int(id))
	}
	return patternNames[id]
}

// Pattern is a named line shape. Signatures use the Window alphabet;
// in the five-symbol signatures a '2' marks a blocked end.
type Pattern struct {
	ID         PatternID
	Score      int64
	Signatures []string
}

// Matches reports whether any signature of p occurs in w.
func (p Pattern) Matches(w Window) bool {
	return p.matches(w.String())
}

func (p Pattern) matches(s string) bool {
	for _, sig := range p.Signatures {
		if strings.Contains(s, sig) {
			return true
		}
	}
	return false
}

// Catalog is an ordered, read-only list of patterns. Shapes overlap,
// so the order decides which one a window is credited with.
type Catalog struct {
	patterns []Pattern
	byID     [numPatterns]int
}

var defaultCatalog = newCatalog([]Pattern{
	{FiveInARow, 10000000, []string{"11111"}},
	{OpenFour, 1000000, []string{"011110"}},
	{OpenThree, 10000, []string{"001110", "011100", "010110", "011010"}},
	{ForcedFour, 9000, []string{"11110", "01111", "10111", "11011", "11101"}},
	{OpenTwo, 100, []string{"001100", "011000", "000110", "001010", "010100"}},
	{OpenOne, 80, []string{"010200", "002010", "020100", "001020", "201000", "000102", "000201"}},
	{BlockedThree, 30, []string{"001112", "010112", "011012", "211100", "211010"}},
	{BlockedTwo, 10, []string{"011200", "001120", "002110", "021100", "110000", "000011", "000112", "211000"}},
	{BlockedOne, 1, []string{"001200", "002100", "000210", "000120", "210000", "000012"}},
})

func newCatalog(ps []Pattern) *Catalog {
	c := &Catalog{patterns: ps}
	for i := range c.byID {
		c.byID[i] = -1
	}
	for i, p := range ps {
		c.byID[p.ID] = i
	}
	return c
}

// DefaultCatalog returns the process-wide pattern table. It is built
// once at package initialization and must not be modified.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func (c *Catalog) Patterns() []Pattern {
	out := make([]Pattern, len(c.patterns))
	copy(out, c.patterns)
	return out
}

func (c *Catalog) Lookup(id PatternID) (Pattern, bool) {
	if id < 0 || id >= numPatterns || c.byID[id] < 0 {
		return Pattern{}, false
	}
	return c.patterns[c.byID[id]], true
}

// Match returns the first pattern, in catalog order, with a
// signature occurring in w.
func (c *Catalog) Match(w Window) (Pattern, bool) {
	s := w.String()
	for _, p := range c.patterns {
		if p.matches(s) {
			return p, true
		}
	}
	return Pattern{}, false
}
