package fetch

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform is returned by the generic strategy for pages no strategy can read.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// ExtractionError describes why an article body could not be extracted.
type ExtractionError struct {
	URL      string
	Platform Platform
	Message  string
	Cause    error
}

func (e *ExtractionError) Error() string {
	prefix := fmt.Sprintf("extraction error (%s)", e.Platform)
	if e.URL != "" {
		prefix = fmt.Sprintf("extraction error for %s (%s)", e.URL, e.Platform)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
