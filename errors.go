package natsort

import "errors"

// Package errors use descriptive messages for debugging while avoiding
// implementation details. Comparison itself never fails; the only error
// surface is configuration at construction time.
var (
	// ErrInvalidLocale is returned by New when a locale identifier supplied
	// via Locale cannot be parsed as a BCP 47 language tag.
	ErrInvalidLocale = errors.New("invalid locale identifier")
)
