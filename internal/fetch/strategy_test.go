package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaverStrategy_SmartEditorInsideFrame(t *testing.T) {
	frame := &fakePage{visible: map[string]string{".se-main-container": "  오늘은 날씨가 좋네요.  \n\n 산책을 했어요. "}}
	page := &fakePage{frames: map[string]*fakePage{"#mainFrame": frame}}

	text, err := NaverStrategy(5*time.Second).ExtractBody(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, "오늘은 날씨가 좋네요.\n산책을 했어요.", text)
	assert.Equal(t, []string{".se-main-container:5s"}, frame.waits)
}

func TestNaverStrategy_FallsBackToLegacyEditor(t *testing.T) {
	frame := &fakePage{visible: map[string]string{"#postViewArea": "예전 에디터 글입니다."}}
	page := &fakePage{frames: map[string]*fakePage{"#mainFrame": frame}}

	text, err := NaverStrategy(time.Second).ExtractBody(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, "예전 에디터 글입니다.", text)
	assert.Equal(t, []string{"wait .se-main-container", "wait #postViewArea", "text #postViewArea"}, frame.calls)
}

func TestNaverStrategy_MissingFrame(t *testing.T) {
	page := &fakePage{visible: map[string]string{".se-main-container": "프레임 밖"}}

	_, err := NaverStrategy(time.Second).ExtractBody(context.Background(), page)
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, PlatformNaver, extErr.Platform)
	assert.Contains(t, err.Error(), "#mainFrame")
}

func TestNaverStrategy_NothingVisible(t *testing.T) {
	page := &fakePage{frames: map[string]*fakePage{"#mainFrame": {}}}

	_, err := NaverStrategy(time.Second).ExtractBody(context.Background(), page)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content selector matched")
}

func TestNaverMobileStrategy_NoFrame(t *testing.T) {
	page := &fakePage{visible: map[string]string{"#viewTypeSelector": "모바일 글"}}

	text, err := NaverMobileStrategy(time.Second).ExtractBody(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, "모바일 글", text)
	assert.NotContains(t, page.calls, "frame #mainFrame")
}

func TestTistoryStrategy_PresenceChecksInOrder(t *testing.T) {
	page := &fakePage{present: map[string]string{
		".tt_article_useless_p_margin": "두 번째 후보",
		"div[class*='article']":        "세 번째 후보",
	}}

	text, err := TistoryStrategy().ExtractBody(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, "두 번째 후보", text)
	assert.Empty(t, page.waits)
	assert.Equal(t, []string{
		"count .contents_style",
		"count .tt_article_useless_p_margin",
		"text .tt_article_useless_p_margin",
	}, page.calls)
}

func TestTistoryStrategy_TextFailureMovesOn(t *testing.T) {
	page := &fakePage{
		present: map[string]string{
			".contents_style":       "깨진 후보",
			"div[class*='article']": "본문",
		},
		textErr: map[string]error{".contents_style": errors.New("detached node")},
	}

	text, err := TistoryStrategy().ExtractBody(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, "본문", text)
}

func TestTistoryStrategy_NoContainer(t *testing.T) {
	_, err := TistoryStrategy().ExtractBody(context.Background(), &fakePage{})
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, PlatformTistory, extErr.Platform)
}

func TestGenericStrategy_NeverExtracts(t *testing.T) {
	page := &fakePage{visible: map[string]string{"body": "아무 글"}}

	text, err := GenericStrategy{}.ExtractBody(context.Background(), page)
	assert.Empty(t, text)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Empty(t, page.calls)
}

func TestChainStrategy_Candidates(t *testing.T) {
	s := NewChainStrategy(PlatformTistory, "", 0, Candidate{Selector: "a"}, Candidate{Selector: "b", Wait: time.Second})
	c := s.Candidates()
	require.Len(t, c, 2)
	c[0].Selector = "changed"
	assert.Equal(t, "a", s.Candidates()[0].Selector)
}
