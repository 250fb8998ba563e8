package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Platform
	}{
		{"naver", "https://blog.naver.com/someone/223000000000", PlatformNaver},
		{"naver uppercase host", "https://BLOG.NAVER.COM/someone/1", PlatformNaver},
		{"naver mobile", "https://m.blog.naver.com/someone/223000000000", PlatformNaverMobile},
		{"tistory subdomain", "https://someone.tistory.com/42", PlatformTistory},
		{"tistory apex", "https://tistory.com/", PlatformTistory},
		{"tistory lookalike", "https://nottistory.com/42", PlatformUnknown},
		{"naver news", "https://news.naver.com/article/1", PlatformUnknown},
		{"medium", "https://medium.com/@someone/post", PlatformUnknown},
		{"unparseable", "::not a url", PlatformUnknown},
		{"empty", "", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPlatform(tt.url))
		})
	}
}

func TestDefaultStrategies_CoverEveryPlatform(t *testing.T) {
	strategies := DefaultStrategies(0)
	for _, p := range []Platform{PlatformNaver, PlatformNaverMobile, PlatformTistory, PlatformUnknown} {
		s, ok := strategies[p]
		if assert.True(t, ok, p) {
			assert.Equal(t, p, s.Platform())
		}
	}
}
