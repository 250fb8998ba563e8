// Package morph provides sentence splitting and morphological tagging of Korean text.
//
// The profiler depends only on the Splitter and Tagger interfaces. The built-in
// implementations are rule based: they recognise sentence boundaries and the
// sentence-final ending of each sentence, which is all style profiling needs.
package morph

import "strings"

// Tag is a part-of-speech tag from the Sejong tag set.
type Tag string

const (
	// TagFinalEnding marks a sentence-final ending (종결어미)
	TagFinalEnding Tag = "EF"
	// TagTerminalPunct marks terminal punctuation: . ! ?
	TagTerminalPunct Tag = "SF"
	// TagEllipsis marks ellipsis and tilde-like continuation marks
	TagEllipsis Tag = "SE"
	// TagSeparator marks commas, colons and slashes
	TagSeparator Tag = "SP"
	// TagBracket marks quotes and brackets
	TagBracket Tag = "SS"
	// TagSymbol marks any other symbol
	TagSymbol Tag = "SO"
	// TagUnknown marks a segment that was not analysed
	TagUnknown Tag = "NA"
)

// IsFinalEnding reports whether the tag denotes a sentence-final ending.
// Compound tags such as "EF+SF" also count.
func (t Tag) IsFinalEnding() bool {
	return strings.HasPrefix(string(t), string(TagFinalEnding))
}

// IsTerminalPunctuation reports whether the tag denotes terminal punctuation.
func (t Tag) IsTerminalPunctuation() bool {
	return t == TagTerminalPunct
}

// Morpheme is a surface form with its tag.
type Morpheme struct {
	Surface string
	Tag     Tag
}

// Splitter splits raw text into sentences.
type Splitter interface {
	// Split returns the sentences of text in order. Blank input yields no sentences.
	Split(text string) []string
}

// Tagger tags the morphemes of a single sentence.
type Tagger interface {
	// Tag returns the ordered morphemes of sentence.
	Tag(sentence string) []Morpheme
}
