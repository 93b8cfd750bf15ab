package natsort

import (
	"slices"
	"sync"
)

// Sort sorts items in place in natural order. The sort is stable: elements
// that rank equal under the configuration keep their relative input order.
func (c *Comparator) Sort(items []string) {
	slices.SortStableFunc(items, c.Compare)
}

// Sorted returns a sorted copy of items, leaving the input untouched.
func (c *Comparator) Sorted(items []string) []string {
	out := slices.Clone(items)
	c.Sort(out)
	return out
}

// IsSorted reports whether items are already in natural order.
func (c *Comparator) IsSorted(items []string) bool {
	return slices.IsSortedFunc(items, c.Compare)
}

// defaultComparator backs the package-level functions. The default
// configuration carries no locale identifier, so construction cannot fail.
var defaultComparator = sync.OnceValue(func() *Comparator {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
})

// Compare compares a and b in natural order using the default configuration:
// numeric mode on, case sensitive, root collation.
func Compare(a, b string) int {
	return defaultComparator().Compare(a, b)
}

// Less reports whether a sorts before b under the default configuration.
func Less(a, b string) bool {
	return defaultComparator().Less(a, b)
}

// Sort sorts items in place in natural order using the default
// configuration. The sort is stable.
func Sort(items []string) {
	defaultComparator().Sort(items)
}

// Strings sorts items in place in natural order. It is an alias of Sort,
// mirroring the naming of the sort package's convenience functions.
func Strings(items []string) {
	Sort(items)
}

// Sorted returns a sorted copy of items using the default configuration.
func Sorted(items []string) []string {
	return defaultComparator().Sorted(items)
}

// IsSorted reports whether items are in natural order under the default
// configuration.
func IsSorted(items []string) bool {
	return defaultComparator().IsSorted(items)
}
