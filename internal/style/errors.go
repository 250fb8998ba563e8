// Package style derives a quantitative writing-style profile from Korean text.
package style

import "errors"

// ErrNoAnalyzableText is returned when the text is blank or contains no sentences.
// Callers must treat it as "analysis unavailable", never as a zero-valued profile.
var ErrNoAnalyzableText = errors.New("no analyzable text")
