package style

import (
	"strings"
	"testing"

	"github.com/openny/stylemind/internal/morph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSplitter returns the same sentences for any input.
type fixedSplitter []string

func (s fixedSplitter) Split(string) []string { return s }

// endingTagger tags each sentence as its text followed by a configured ending and a period.
type endingTagger map[string]string

func (t endingTagger) Tag(sentence string) []morph.Morpheme {
	ending, ok := t[sentence]
	if !ok {
		return []morph.Morpheme{{Surface: sentence, Tag: morph.TagUnknown}}
	}
	return []morph.Morpheme{
		{Surface: "stem", Tag: morph.TagUnknown},
		{Surface: ending, Tag: morph.TagFinalEnding},
		{Surface: ".", Tag: morph.TagTerminalPunct},
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	profiler := NewDefaultProfiler()

	for _, input := range []string{"", "   ", "\n\t \n"} {
		profile, err := profiler.Analyze(input)
		assert.ErrorIs(t, err, ErrNoAnalyzableText)
		assert.Nil(t, profile)
	}
}

func TestAnalyze_NoSentences(t *testing.T) {
	profiler := NewProfiler(fixedSplitter(nil), endingTagger{})

	profile, err := profiler.Analyze("not blank")
	assert.ErrorIs(t, err, ErrNoAnalyzableText)
	assert.Nil(t, profile)
}

func TestAnalyze_PoliteCorpus(t *testing.T) {
	profiler := NewDefaultProfiler()

	profile, err := profiler.Analyze("오늘 날씨가 좋네요. 정말 즐거운 하루였어요.")
	require.NoError(t, err)

	// (11 + 13) / 2
	assert.Equal(t, 12.0, profile.AverageSentenceLength)
	assert.True(t, profile.IsPolite)
	assert.Equal(t, []string{"네요", "어요"}, profile.TopEndings)
	assert.Equal(t, 2, profile.SentenceCount)
	assert.Equal(t, 1.0, profile.PoliteRatio)
	assert.Contains(t, profile.StyleDirective, "'네요, 어요'")
	assert.Contains(t, profile.StyleDirective, "평균 12.0자")
	assert.Contains(t, profile.StyleDirective, "짧고 간결하게")
	assert.Contains(t, profile.StyleDirective, "존댓말")
}

func TestAnalyze_CasualCorpus(t *testing.T) {
	profiler := NewDefaultProfiler()

	profile, err := profiler.Analyze("나는 밥을 먹는다. 오늘은 비가 온다. 정말 좋다.")
	require.NoError(t, err)

	assert.False(t, profile.IsPolite)
	assert.Equal(t, []string{"는다", "ㄴ다", "다"}, profile.TopEndings)
	assert.Contains(t, profile.StyleDirective, "반말")
}

func TestAnalyze_TopEndingsFrequencyAndTieOrder(t *testing.T) {
	sentences := make([]string, 10)
	endingOf := endingTagger{}
	sequence := []string{"B", "A", "C", "A", "A", "B", "A", "C", "A", "A"}
	for i, ending := range sequence {
		sentences[i] = "s" + string(rune('0'+i))
		endingOf[sentences[i]] = ending
	}

	profile, err := NewProfiler(fixedSplitter(sentences), endingOf).Analyze("ignored")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, profile.TopEndings)
	assert.Contains(t, profile.StyleDirective, "'A, B, C'")
}

func TestAnalyze_AtMostThreeDistinctEndings(t *testing.T) {
	sentences := []string{"1", "2", "3", "4", "5", "6"}
	tagger := endingTagger{"1": "다", "2": "다", "3": "요", "4": "네", "5": "지", "6": "네"}

	profile, err := NewProfiler(fixedSplitter(sentences), tagger).Analyze("ignored")
	require.NoError(t, err)

	assert.Equal(t, []string{"다", "네", "요"}, profile.TopEndings)
}

func TestAnalyze_PoliteRatioUsesAllSentences(t *testing.T) {
	// Two polite endings out of four sentences is exactly half, which is not polite
	sentences := []string{"a", "b", "c", "d"}
	tagger := endingTagger{"a": "어요", "b": "습니다"}

	profile, err := NewProfiler(fixedSplitter(sentences), tagger).Analyze("ignored")
	require.NoError(t, err)

	assert.False(t, profile.IsPolite)
	assert.Equal(t, 0.5, profile.PoliteRatio)
	assert.Equal(t, []string{"어요", "습니다"}, profile.TopEndings)
}

func TestAnalyze_LengthDescriptorThreshold(t *testing.T) {
	long := strings.Repeat("가", 39) + "."
	profiler := NewProfiler(fixedSplitter([]string{long}), endingTagger{})

	profile, err := profiler.Analyze(long)
	require.NoError(t, err)

	assert.Equal(t, 40.0, profile.AverageSentenceLength)
	assert.Contains(t, profile.StyleDirective, "상세하고 호흡이 긴 문장으로")
	assert.Empty(t, profile.TopEndings)
	assert.Contains(t, profile.StyleDirective, "''")
}

func TestAnalyze_RoundsToOneDecimal(t *testing.T) {
	// 1 + 2 + 2 runes over 3 sentences = 1.666...
	profiler := NewProfiler(fixedSplitter([]string{"가", "가나", "가나"}), endingTagger{})

	profile, err := profiler.Analyze("ignored")
	require.NoError(t, err)

	assert.Equal(t, 1.7, profile.AverageSentenceLength)
}

func TestAnalyze_Idempotent(t *testing.T) {
	profiler := NewDefaultProfiler()
	text := "오늘 날씨가 좋네요. 산책을 했다. 정말 즐거운 하루였어요! 내일도 갈까요?"

	first, err := profiler.Analyze(text)
	require.NoError(t, err)
	second, err := profiler.Analyze(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSentenceEnding(t *testing.T) {
	tests := []struct {
		name      string
		morphemes []morph.Morpheme
		expected  string
		found     bool
	}{
		{"empty", nil, "", false},
		{
			"ending last",
			[]morph.Morpheme{{Surface: "좋", Tag: morph.TagUnknown}, {Surface: "다", Tag: morph.TagFinalEnding}},
			"다", true,
		},
		{
			"scans back past punctuation",
			[]morph.Morpheme{{Surface: "좋", Tag: morph.TagUnknown}, {Surface: "네요", Tag: morph.TagFinalEnding}, {Surface: "!", Tag: morph.TagTerminalPunct}},
			"네요", true,
		},
		{
			"scans back past other morphemes",
			[]morph.Morpheme{{Surface: "다", Tag: morph.TagFinalEnding}, {Surface: "고", Tag: morph.TagUnknown}, {Surface: ".", Tag: morph.TagTerminalPunct}},
			"다", true,
		},
		{
			"trailing symbol disqualifies",
			[]morph.Morpheme{{Surface: "좋", Tag: morph.TagUnknown}, {Surface: "아요", Tag: morph.TagFinalEnding}, {Surface: "^^", Tag: morph.TagSymbol}},
			"", false,
		},
		{
			"punctuation without ending",
			[]morph.Morpheme{{Surface: "사과", Tag: morph.TagUnknown}, {Surface: ".", Tag: morph.TagTerminalPunct}},
			"", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ending, found := sentenceEnding(tt.morphemes)
			assert.Equal(t, tt.expected, ending)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestIsHonorific(t *testing.T) {
	assert.True(t, IsHonorific("네요"))
	assert.True(t, IsHonorific("습니다"))
	assert.True(t, IsHonorific("ㅂ니다"))
	assert.True(t, IsHonorific("ㅂ니까"))
	assert.False(t, IsHonorific("다"))
	assert.False(t, IsHonorific("는다"))
}

func TestTopEndings_Limit(t *testing.T) {
	assert.Equal(t, []string{"x"}, TopEndings([]string{"x", "y", "x"}, 1))
	assert.Empty(t, TopEndings(nil, 3))
}
