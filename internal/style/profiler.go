package style

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/openny/stylemind/internal/morph"
	"github.com/openny/stylemind/internal/types"
)

const (
	// PoliteThreshold is the share of polite endings above which a corpus is polite
	PoliteThreshold = 0.5
	// ConciseLengthLimit is the average sentence length (in characters) below which writing is concise
	ConciseLengthLimit = 30.0
	// MaxTopEndings is the number of preferred endings reported
	MaxTopEndings = 3
)

// HonorificMarkers are substrings that put an ending in the polite register.
var HonorificMarkers = []string{"요", "습니다", "ㅂ니다", "습니까", "ㅂ니까", "십시오"}

// Profiler computes StyleProfiles. It holds no per-call state and is safe for concurrent use.
type Profiler struct {
	splitter morph.Splitter
	tagger   morph.Tagger
}

// NewProfiler creates a Profiler from a splitter and a tagger.
func NewProfiler(splitter morph.Splitter, tagger morph.Tagger) *Profiler {
	return &Profiler{splitter: splitter, tagger: tagger}
}

// NewDefaultProfiler creates a Profiler over the built-in rule splitter and suffix tagger.
func NewDefaultProfiler() *Profiler {
	return NewProfiler(morph.NewRuleSplitter(), morph.NewSuffixTagger())
}

// Analyze builds the style profile of text.
// It returns ErrNoAnalyzableText when text is blank or yields no sentences.
func (p *Profiler) Analyze(text string) (*types.StyleProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoAnalyzableText
	}

	sentences := p.splitter.Split(text)
	if len(sentences) == 0 {
		return nil, ErrNoAnalyzableText
	}

	totalLen := 0
	endings := make([]string, 0, len(sentences))
	politeCount := 0

	for _, sentence := range sentences {
		totalLen += utf8.RuneCountInString(sentence)

		ending, ok := sentenceEnding(p.tagger.Tag(sentence))
		if !ok {
			continue
		}
		endings = append(endings, ending)
		if IsHonorific(ending) {
			politeCount++
		}
	}

	avgLen := roundTenths(float64(totalLen) / float64(len(sentences)))
	politeRatio := float64(politeCount) / float64(len(sentences))
	isPolite := politeRatio > PoliteThreshold
	topEndings := TopEndings(endings, MaxTopEndings)

	return &types.StyleProfile{
		AverageSentenceLength: avgLen,
		IsPolite:              isPolite,
		TopEndings:            topEndings,
		StyleDirective:        Directive(avgLen, isPolite, topEndings),
		SentenceCount:         len(sentences),
		PoliteRatio:           politeRatio,
	}, nil
}

// sentenceEnding finds the sentence-final ending of a tagged sentence.
// Only sentences closing on an ending or terminal punctuation qualify; the
// nearest ending scanning backward from the end is the sentence's ending.
func sentenceEnding(morphemes []morph.Morpheme) (string, bool) {
	if len(morphemes) == 0 {
		return "", false
	}

	last := morphemes[len(morphemes)-1].Tag
	if !last.IsFinalEnding() && !last.IsTerminalPunctuation() {
		return "", false
	}

	for i := len(morphemes) - 1; i >= 0; i-- {
		if morphemes[i].Tag.IsFinalEnding() {
			return morphemes[i].Surface, true
		}
	}
	return "", false
}

// IsHonorific reports whether an ending contains a polite-register marker.
func IsHonorific(ending string) bool {
	for _, marker := range HonorificMarkers {
		if strings.Contains(ending, marker) {
			return true
		}
	}
	return false
}

// TopEndings returns up to limit distinct endings by descending frequency.
// Ties keep first-seen order.
func TopEndings(endings []string, limit int) []string {
	counts := make(map[string]int, len(endings))
	distinct := make([]string, 0, len(endings))
	for _, e := range endings {
		if counts[e] == 0 {
			distinct = append(distinct, e)
		}
		counts[e]++
	}

	sort.SliceStable(distinct, func(i, j int) bool {
		return counts[distinct[i]] > counts[distinct[j]]
	})

	if len(distinct) > limit {
		distinct = distinct[:limit]
	}
	return distinct
}

// roundTenths rounds to one decimal place, halves away from zero.
func roundTenths(v float64) float64 {
	return math.Round(v*10) / 10
}
