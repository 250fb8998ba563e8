package types

// StyleProfile is the quantitative writing-style fingerprint of a corpus.
type StyleProfile struct {
	AverageSentenceLength float64  `json:"average_sentence_length"`
	IsPolite              bool     `json:"is_polite"`
	TopEndings            []string `json:"top_endings"`
	StyleDirective        string   `json:"style_directive"`

	// Diagnostics
	SentenceCount int     `json:"sentence_count"`
	PoliteRatio   float64 `json:"polite_ratio"`
}
