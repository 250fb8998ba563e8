package style

import (
	"strconv"
	"strings"

	"github.com/openny/stylemind/internal/prompts"
)

const promptFile = "style.json"

// Directive renders the natural-language style instruction handed to the text generator.
func Directive(avgLen float64, isPolite bool, topEndings []string) string {
	tone := prompts.MustGet(promptFile, "tone-casual")
	if isPolite {
		tone = prompts.MustGet(promptFile, "tone-polite")
	}

	return prompts.Format(prompts.MustGet(promptFile, "style-directive"), map[string]string{
		"Tone":          tone,
		"Endings":       strings.Join(topEndings, ", "),
		"AverageLength": strconv.FormatFloat(avgLen, 'f', 1, 64),
		"LengthStyle":   LengthDescriptor(avgLen),
	})
}

// LengthDescriptor describes sentence length: concise below ConciseLengthLimit, elaborate otherwise.
func LengthDescriptor(avgLen float64) string {
	if avgLen < ConciseLengthLimit {
		return prompts.MustGet(promptFile, "length-concise")
	}
	return prompts.MustGet(promptFile, "length-elaborate")
}
