package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known blog platform.
type Platform string

const (
	// PlatformNaver is Naver Blog; the post is rendered inside the #mainFrame iframe
	PlatformNaver Platform = "naver"
	// PlatformNaverMobile is the mobile Naver Blog, which renders the post without an iframe
	PlatformNaverMobile Platform = "naver-mobile"
	// PlatformTistory is Tistory, whose skins use several article containers
	PlatformTistory Platform = "tistory"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the blog platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Hostname())

	switch {
	case host == "m.blog.naver.com":
		return PlatformNaverMobile
	case host == "blog.naver.com":
		return PlatformNaver
	case host == "tistory.com" || strings.HasSuffix(host, ".tistory.com"):
		return PlatformTistory
	default:
		return PlatformUnknown
	}
}
