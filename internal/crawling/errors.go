// Package crawling retrieves batches of blog posts concurrently and aggregates their text.
package crawling

import "fmt"

// CrawlError represents a batch-level crawling failure.
type CrawlError struct {
	Message string
	Cause   error
}

func (e *CrawlError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("crawl error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("crawl error: %s", e.Message)
}

func (e *CrawlError) Unwrap() error {
	return e.Cause
}
