package natsort

import (
	"cmp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation orders text segments that contain no digits. Compare returns a
// negative value if a sorts before b, zero if they rank equal, and a positive
// value if a sorts after b. Implementations must define a total order and
// must be safe for concurrent use.
type Collation interface {
	Compare(a, b string) int
}

// localeCollation wraps a collate.Collator. The collator reuses internal
// iterator buffers between calls, so access is serialized.
type localeCollation struct {
	mu sync.Mutex
	c  *collate.Collator
}

func newLocaleCollation(tag language.Tag, insensitive bool) *localeCollation {
	var opts []collate.Option
	if insensitive {
		opts = append(opts, collate.IgnoreCase)
	}
	return &localeCollation{c: collate.New(tag, opts...)}
}

func (l *localeCollation) Compare(a, b string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.CompareString(a, b)
}

// foldCollation compares rune by rune under Unicode simple case mapping.
type foldCollation struct{}

// FoldCollation returns a Collation that ignores letter case using Unicode
// simple case mapping, without locale tables. It is cheaper than a
// case-insensitive locale collation and needs no configuration.
func FoldCollation() Collation {
	return foldCollation{}
}

func (foldCollation) Compare(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if c := cmp.Compare(unicode.ToLower(ra), unicode.ToLower(rb)); c != 0 {
			return c
		}
		a, b = a[na:], b[nb:]
	}
	switch {
	case a != "":
		return 1
	case b != "":
		return -1
	}
	return 0
}

// bytewiseCollation is raw byte ordering, the fastest strategy.
type bytewiseCollation struct{}

// BytewiseCollation returns a Collation that orders text by raw byte value.
// For UTF-8 input this matches code point order.
func BytewiseCollation() Collation {
	return bytewiseCollation{}
}

func (bytewiseCollation) Compare(a, b string) int {
	return strings.Compare(a, b)
}
