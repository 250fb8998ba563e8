// Package writer turns a style directive, a topic and an image into a blog post.
package writer

import "fmt"

// GenerationError represents a failed call to the generation model.
type GenerationError struct {
	Step    string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error (%s): %s: %v", e.Step, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error (%s): %s", e.Step, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
