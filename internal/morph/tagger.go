package morph

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Hangul syllable block arithmetic (U+AC00..U+D7A3).
const (
	hangulBase = 0xAC00
	hangulLast = 0xD7A3
	jongseongN = 28
	jongNieun  = 4  // ㄴ
	jongRieul  = 8  // ㄹ
	jongBieup  = 17 // ㅂ
)

// batchimIndex maps compatibility jamo used at the start of an ending to its final-consonant index.
var batchimIndex = map[rune]int{
	'ㄴ': jongNieun,
	'ㄹ': jongRieul,
	'ㅂ': jongBieup,
}

// DefaultEndings lists sentence-final endings in match priority order.
// Longer endings are tried first; among equal lengths the earlier entry wins,
// so literal forms precede jamo-initial forms.
var DefaultEndings = []string{
	// formal and polite
	"으십시오", "십시오", "습니다", "습니까", "ㅂ니다", "ㅂ니까", "읍시다", "ㅂ시다",
	"이에요", "으세요", "을까요", "ㄹ까요", "는데요", "은데요", "거든요", "잖아요", "던데요",
	"세요", "셔요", "어요", "아요", "여요", "에요", "예요", "네요", "군요", "지요", "나요", "가요", "래요", "대요", "까요",
	"죠", "요",
	// casual and monologue
	"는구나", "는다", "ㄴ다", "구나", "잖아", "거든", "는데", "은데", "던데", "을까", "ㄹ까",
	"다", "네", "군", "지", "야", "자", "라", "냐", "니", "까", "걸", "래", "대", "어", "아", "여", "게",
}

type ending struct {
	surface string
	batchim int    // final consonant the preceding syllable must carry, 0 for literal endings
	rest    string // surface without the leading jamo
	length  int
}

// SuffixTagger tags the last word of a sentence by matching a lexicon of
// sentence-final endings. Other words are left unanalysed.
type SuffixTagger struct {
	endings []ending
}

// NewSuffixTagger creates a tagger over DefaultEndings.
func NewSuffixTagger() *SuffixTagger {
	return NewSuffixTaggerWithEndings(DefaultEndings)
}

// NewSuffixTaggerWithEndings creates a tagger over a custom ending lexicon.
func NewSuffixTaggerWithEndings(lexicon []string) *SuffixTagger {
	endings := make([]ending, 0, len(lexicon))
	for _, surface := range lexicon {
		runes := []rune(surface)
		if len(runes) == 0 {
			continue
		}
		e := ending{surface: surface, rest: surface, length: len(runes)}
		if idx, ok := batchimIndex[runes[0]]; ok {
			e.batchim = idx
			e.rest = string(runes[1:])
		}
		endings = append(endings, e)
	}
	sort.SliceStable(endings, func(i, j int) bool {
		return endings[i].length > endings[j].length
	})
	return &SuffixTagger{endings: endings}
}

// Tag implements Tagger.
func (t *SuffixTagger) Tag(sentence string) []Morpheme {
	segments := segment(norm.NFC.String(sentence))

	lastWord := -1
	for i, seg := range segments {
		if seg.Tag == TagUnknown {
			lastWord = i
		}
	}

	morphemes := make([]Morpheme, 0, len(segments)+1)
	for i, seg := range segments {
		if i != lastWord {
			morphemes = append(morphemes, seg)
			continue
		}
		stem, end := t.splitEnding(seg.Surface)
		if stem != "" {
			morphemes = append(morphemes, Morpheme{Surface: stem, Tag: TagUnknown})
		}
		if end != "" {
			morphemes = append(morphemes, Morpheme{Surface: end, Tag: TagFinalEnding})
		}
	}
	return morphemes
}

// splitEnding returns the word split into stem and sentence-final ending.
// The ending is empty when nothing in the lexicon matches.
func (t *SuffixTagger) splitEnding(word string) (string, string) {
	for _, e := range t.endings {
		if e.batchim == 0 {
			if strings.HasSuffix(word, e.surface) {
				return strings.TrimSuffix(word, e.surface), e.surface
			}
			continue
		}

		if !strings.HasSuffix(word, e.rest) {
			continue
		}
		head := []rune(strings.TrimSuffix(word, e.rest))
		if len(head) == 0 {
			continue
		}
		last := head[len(head)-1]
		if finalConsonant(last) != e.batchim {
			continue
		}
		head[len(head)-1] = last - rune(e.batchim)
		return string(head), e.surface
	}
	return word, ""
}

// finalConsonant returns the jongseong index of a Hangul syllable, or -1.
func finalConsonant(r rune) int {
	if r < hangulBase || r > hangulLast {
		return -1
	}
	return int(r-hangulBase) % jongseongN
}

// segment splits a sentence into word segments (tagged NA) and symbol segments.
func segment(sentence string) []Morpheme {
	var out []Morpheme
	var buf []rune
	var bufTag Tag

	flush := func() {
		if len(buf) == 0 {
			return
		}
		surface := string(buf)
		tag := bufTag
		if tag == TagTerminalPunct && strings.Trim(surface, ".") == "" && len(buf) > 1 {
			tag = TagEllipsis
		}
		out = append(out, Morpheme{Surface: surface, Tag: tag})
		buf = buf[:0]
	}

	for _, r := range sentence {
		if unicode.IsSpace(r) {
			flush()
			continue
		}
		tag := classify(r)
		if len(buf) > 0 && tag != bufTag {
			flush()
		}
		bufTag = tag
		buf = append(buf, r)
	}
	flush()

	return out
}

func classify(r rune) Tag {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return TagTerminalPunct
	case '…', '~', '～':
		return TagEllipsis
	case ',', ':', ';', '/', '·', '、':
		return TagSeparator
	case '"', '\'', '(', ')', '[', ']', '{', '}', '“', '”', '‘', '’', '「', '」', '『', '』', '《', '》', '〈', '〉':
		return TagBracket
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
		return TagUnknown
	}
	return TagSymbol
}
