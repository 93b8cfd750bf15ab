package natsort

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Comparator compares strings in natural order under a fixed configuration.
// It is immutable after construction and safe for concurrent use.
type Comparator struct {
	numeric   bool
	collation Collation
}

// New creates a Comparator from the given options. It returns
// ErrInvalidLocale if a Locale identifier cannot be parsed.
func New(opts ...Option) (*Comparator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	collation := cfg.collation
	if collation == nil {
		tag := cfg.tag
		if cfg.locale != "" {
			parsed, err := language.Parse(cfg.locale)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, cfg.locale)
			}
			tag = parsed
		}
		collation = newLocaleCollation(tag, cfg.insensitive)
	}

	return &Comparator{
		numeric:   cfg.numeric,
		collation: collation,
	}, nil
}

// Compare returns a negative value if a sorts before b, zero if they rank
// equal under the configuration, and a positive value if a sorts after b.
// The result is usable with slices.SortFunc and slices.SortStableFunc.
func (c *Comparator) Compare(a, b string) int {
	if !c.numeric {
		return c.collation.Compare(a, b)
	}

	// pad records a pending tie-break between digit runs of equal numeric
	// value but different zero padding ("7" vs "007"). It only decides the
	// result when everything after it compares equal.
	pad := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		da, db := isDigit(a[i]), isDigit(b[j])
		if da != db {
			// One side starts a digit run, the other does not. Digit bytes
			// never equal non-digit bytes, so byte order decides here.
			return cmp.Compare(a[i], b[j])
		}
		ea, eb := runEnd(a, i, da), runEnd(b, j, db)
		runA, runB := a[i:ea], b[j:eb]
		if da {
			if r := compareDigitRuns(runA, runB); r != 0 {
				return r
			}
			if pad == 0 {
				pad = cmp.Compare(len(runA), len(runB))
			}
		} else {
			if r := c.collation.Compare(runA, runB); r != 0 {
				return r
			}
		}
		i, j = ea, eb
	}

	// Prefix rule: the string with segments remaining sorts after.
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return pad
}

// Less reports whether a sorts before b.
func (c *Comparator) Less(a, b string) bool {
	return c.Compare(a, b) < 0
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// runEnd returns the index just past the maximal run starting at start whose
// bytes are all digits (digits=true) or all non-digits (digits=false).
// Digits are ASCII, so byte scanning never splits a UTF-8 sequence.
func runEnd(s string, start int, digits bool) int {
	i := start
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return i
}

// compareDigitRuns orders two digit runs by numeric magnitude without
// parsing them into machine integers: after stripping leading zeros, a
// longer run is a larger number, and equal-length runs compare bytewise.
// Runs of arbitrary length compare correctly with no overflow.
func compareDigitRuns(x, y string) int {
	tx := strings.TrimLeft(x, "0")
	ty := strings.TrimLeft(y, "0")
	if r := cmp.Compare(len(tx), len(ty)); r != 0 {
		return r
	}
	return strings.Compare(tx, ty)
}
