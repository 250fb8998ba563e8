package fetch

import (
	"context"
	"time"
)

// Strategy extracts the article body from a page of one platform.
type Strategy interface {
	Platform() Platform
	ExtractBody(ctx context.Context, page Page) (string, error)
}

// Candidate is one step of a fallback chain.
// A positive Wait waits up to that long for the element to become visible;
// zero only checks that at least one element matches right now.
type Candidate struct {
	Selector string
	Wait     time.Duration
}

// ChainStrategy tries its candidates in order and returns the text of the first one found.
type ChainStrategy struct {
	platform   Platform
	frame      string
	frameWait  time.Duration
	candidates []Candidate
}

// NewChainStrategy creates a fallback-chain strategy. When frame is non-empty,
// candidates are looked up inside that iframe.
func NewChainStrategy(platform Platform, frame string, frameWait time.Duration, candidates ...Candidate) *ChainStrategy {
	return &ChainStrategy{
		platform:   platform,
		frame:      frame,
		frameWait:  frameWait,
		candidates: candidates,
	}
}

// Platform implements Strategy.
func (s *ChainStrategy) Platform() Platform {
	return s.platform
}

// Candidates returns a copy of the fallback chain.
func (s *ChainStrategy) Candidates() []Candidate {
	return append([]Candidate(nil), s.candidates...)
}

// ExtractBody implements Strategy.
func (s *ChainStrategy) ExtractBody(ctx context.Context, page Page) (string, error) {
	scope := page
	if s.frame != "" {
		frame, err := page.Frame(ctx, s.frame, s.frameWait)
		if err != nil {
			return "", &ExtractionError{Platform: s.platform, Message: "content frame " + s.frame + " not found", Cause: err}
		}
		scope = frame
	}

	var lastErr error
	for _, c := range s.candidates {
		if c.Wait > 0 {
			if err := scope.WaitVisible(ctx, c.Selector, c.Wait); err != nil {
				lastErr = err
				continue
			}
		} else {
			n, err := scope.Count(ctx, c.Selector)
			if err != nil {
				lastErr = err
				continue
			}
			if n == 0 {
				continue
			}
		}

		text, err := scope.Text(ctx, c.Selector)
		if err != nil {
			lastErr = err
			continue
		}
		return NormalizeText(text), nil
	}

	return "", &ExtractionError{Platform: s.platform, Message: "no content selector matched", Cause: lastErr}
}

// GenericStrategy is used for unrecognized platforms. It never extracts
// anything: a generic scrape would pick up navigation and ads.
type GenericStrategy struct{}

// Platform implements Strategy.
func (GenericStrategy) Platform() Platform {
	return PlatformUnknown
}

// ExtractBody implements Strategy.
func (GenericStrategy) ExtractBody(context.Context, Page) (string, error) {
	return "", ErrUnsupportedPlatform
}

// NaverStrategy reads Smart Editor ONE posts, falling back to the legacy editor.
func NaverStrategy(wait time.Duration) Strategy {
	return NewChainStrategy(PlatformNaver, "#mainFrame", wait,
		Candidate{Selector: ".se-main-container", Wait: wait},
		Candidate{Selector: "#postViewArea", Wait: wait},
	)
}

// NaverMobileStrategy reads mobile Naver posts, which are not framed.
func NaverMobileStrategy(wait time.Duration) Strategy {
	return NewChainStrategy(PlatformNaverMobile, "", 0,
		Candidate{Selector: ".se-main-container", Wait: wait},
		Candidate{Selector: "#viewTypeSelector", Wait: wait},
	)
}

// TistoryStrategy tries the article containers used by common Tistory skins.
func TistoryStrategy() Strategy {
	return NewChainStrategy(PlatformTistory, "", 0,
		Candidate{Selector: ".contents_style"},
		Candidate{Selector: ".tt_article_useless_p_margin"},
		Candidate{Selector: "div[class*='article']"},
	)
}

// DefaultStrategies returns the built-in strategy for every known platform.
func DefaultStrategies(wait time.Duration) map[Platform]Strategy {
	return map[Platform]Strategy{
		PlatformNaver:       NaverStrategy(wait),
		PlatformNaverMobile: NaverMobileStrategy(wait),
		PlatformTistory:     TistoryStrategy(),
		PlatformUnknown:     GenericStrategy{},
	}
}
