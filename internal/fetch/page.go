package fetch

import (
	"context"
	"time"
)

// Page is a loaded document that strategies query with CSS selectors.
type Page interface {
	// Frame returns the document of the first iframe matching selector.
	Frame(ctx context.Context, selector string, wait time.Duration) (Page, error)
	// WaitVisible blocks until an element matching selector is visible, or fails once wait elapses.
	WaitVisible(ctx context.Context, selector string, wait time.Duration) error
	// Count returns how many elements currently match selector, without waiting.
	Count(ctx context.Context, selector string) (int, error)
	// Text returns the visible text of the first element matching selector.
	Text(ctx context.Context, selector string) (string, error)
}

// Renderer opens pages in isolated sessions.
type Renderer interface {
	// Render loads url, passes the page to fn and releases the session when fn
	// returns, whether it succeeded, failed or panicked.
	Render(ctx context.Context, url string, fn func(ctx context.Context, page Page) error) error
}
