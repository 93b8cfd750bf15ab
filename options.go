package natsort

import "golang.org/x/text/language"

// Option configures the comparison behavior.
type Option func(*config)

// config holds the configuration for a Comparator.
type config struct {
	numeric     bool
	insensitive bool
	locale      string
	tag         language.Tag
	collation   Collation
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		numeric:     true,
		insensitive: false,
		locale:      "",
		tag:         language.Und, // root collation
		collation:   nil,
	}
}

// Numeric controls whether maximal runs of decimal digits are compared by
// numeric value. When disabled, the whole string is handed to the collation
// with no segmentation, which is plain lexicographic ordering.
// Default is true.
func Numeric(enabled bool) Option {
	return func(c *config) {
		c.numeric = enabled
	}
}

// CaseInsensitive controls whether text segments differing only in letter
// case compare as equal. Applies to the built-in collation strategies; a
// strategy supplied via WithCollation decides case handling itself.
// Default is false.
func CaseInsensitive(enabled bool) Option {
	return func(c *config) {
		c.insensitive = enabled
	}
}

// Locale sets the BCP 47 identifier (e.g. "en", "da", "de-AT") governing
// collation of text segments. An identifier that does not parse causes New
// to fail with ErrInvalidLocale.
func Locale(id string) Option {
	return func(c *config) {
		c.locale = id
	}
}

// Lang sets the collation language from an already-parsed tag. Unlike
// Locale it cannot fail. If both are supplied, Locale wins.
func Lang(tag language.Tag) Option {
	return func(c *config) {
		c.tag = tag
	}
}

// WithCollation replaces the locale-backed collation with a custom strategy
// for comparing text segments. The Locale, Lang and CaseInsensitive options
// have no effect on a custom strategy.
func WithCollation(collation Collation) Option {
	return func(c *config) {
		c.collation = collation
	}
}
