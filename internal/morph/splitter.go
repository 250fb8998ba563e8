package morph

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// RuleSplitter splits on terminal punctuation, ellipses and line breaks.
type RuleSplitter struct{}

// NewRuleSplitter creates a RuleSplitter.
func NewRuleSplitter() *RuleSplitter {
	return &RuleSplitter{}
}

// Split implements Splitter.
func (s *RuleSplitter) Split(text string) []string {
	// Decomposed jamo from copy-pasted text would break ending matching
	runes := []rune(norm.NFC.String(text))

	var sentences []string
	var current []rune

	flush := func() {
		sentence := strings.TrimSpace(string(current))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current = current[:0]
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' || r == '\r' {
			flush()
			continue
		}

		current = append(current, r)

		if !isBoundaryPunct(r) {
			continue
		}
		if r == '.' && isDecimalPoint(runes, i) {
			continue
		}

		// Absorb the rest of a punctuation run ("?!", "...") and closing quotes
		for i+1 < len(runes) && (isBoundaryPunct(runes[i+1]) || isClosing(runes[i+1])) {
			i++
			current = append(current, runes[i])
		}
		flush()
	}
	flush()

	return sentences
}

func isBoundaryPunct(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '。', '！', '？':
		return true
	}
	return false
}

func isClosing(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '”', '’', '」', '』', '》', '〉':
		return true
	}
	return false
}

// isDecimalPoint reports whether runes[i] is a '.' between two digits (e.g. "3.5").
func isDecimalPoint(runes []rune, i int) bool {
	return i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1])
}
