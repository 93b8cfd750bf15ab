// Package natsort compares and sorts strings in natural order, where embedded
// runs of decimal digits are ordered by numeric value instead of character by
// character.
//
// Plain lexicographic sorting puts "item10" before "item2" because '1' < '2'.
// Natural ordering treats each maximal digit run as a single number, so
// "item2" sorts before "item10" the way a human would expect. Non-digit text
// is ordered by locale-aware collation backed by golang.org/x/text/collate,
// with pluggable alternatives for case-folded or raw byte comparison.
//
// # Features
//
//   - Numeric-aware comparison of embedded digit runs ("file2" < "file10")
//   - Arbitrary-magnitude digits: runs are never parsed into machine integers,
//     so a 50-digit run compares correctly with no overflow
//   - Locale-aware collation of text segments via BCP 47 tags
//   - Optional case-insensitive mode
//   - Deterministic handling of leading zeros ("a7" sorts before "a007")
//   - Stable sorting helpers, in-place and copying
//
// # Usage
//
// The package-level functions use the default configuration: numeric mode on,
// case sensitive, root collation.
//
//	items := []string{"item10", "item2", "item1"}
//	natsort.Sort(items)
//	// Output: [item1 item2 item10]
//
// A Comparator carries its own configuration. Construct it once and reuse it:
//
//	c, err := natsort.New(
//		natsort.Locale("da"),
//		natsort.CaseInsensitive(true),
//	)
//	if err != nil {
//		// natsort.ErrInvalidLocale: the locale identifier did not parse
//	}
//	sorted := c.Sorted(items) // input left untouched
//
// Compare follows the cmp convention (negative, zero, positive) and plugs
// directly into the standard library:
//
//	slices.SortStableFunc(items, c.Compare)
//
// With Numeric(false) the comparator degrades to plain collation over the
// whole string, which is useful for contrasting the two orderings:
//
//	lex, _ := natsort.New(natsort.Numeric(false))
//	lex.Sort(items)
//	// Output: [item1 item10 item2]
//
// # Configuration Options
//
//   - Numeric: toggle digit-run segmentation (default: true)
//   - CaseInsensitive: ignore letter case in text segments (default: false)
//   - Locale: BCP 47 identifier for text collation (default: root collation)
//   - Lang: same as Locale for callers that already hold a language.Tag
//   - WithCollation: supply a custom Collation strategy for text segments
//
// # Thread Safety
//
// A Comparator is immutable after construction and safe for concurrent use.
// The locale-backed collation serializes access to its underlying collator,
// which keeps internal iteration state; the fold and bytewise strategies are
// stateless.
package natsort
