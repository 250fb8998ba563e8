// Package types provides type definitions for structured data used throughout the stylemind system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// SourceDocument is the outcome of extracting a single style-source URL.
// A failed extraction keeps its slot with Success=false and empty Text.
type SourceDocument struct {
	URL       string `json:"url"`
	Platform  string `json:"platform"`
	Text      string `json:"text"`
	Success   bool   `json:"success"`
	Hash      string `json:"hash,omitempty"`       // SHA256 hex digest of Text
	FetchedAt string `json:"fetched_at,omitempty"` // RFC3339 format
}

// Corpus is the aggregate text of a retrieval batch together with its sources.
// Note: The CLI writes Text to a .txt file and Sources to a separate JSON file.
type Corpus struct {
	ID      uuid.UUID        `json:"id"`
	Text    string           `json:"text"`
	Sources []SourceDocument `json:"sources"`
}

// SuccessCount returns the number of sources that produced text.
func (c *Corpus) SuccessCount() int {
	n := 0
	for _, s := range c.Sources {
		if s.Success {
			n++
		}
	}
	return n
}
