package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openny/stylemind/internal/logging"
)

// DefaultNavigationTimeout bounds one extraction, page load included.
const DefaultNavigationTimeout = 30 * time.Second

// Extractor pulls the article body out of a blog URL.
type Extractor struct {
	renderer   Renderer
	strategies map[Platform]Strategy
	timeout    time.Duration
	logger     logging.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithStrategies replaces the per-platform strategies.
func WithStrategies(strategies map[Platform]Strategy) ExtractorOption {
	return func(e *Extractor) { e.strategies = strategies }
}

// WithTimeout sets the per-URL deadline.
func WithTimeout(d time.Duration) ExtractorOption {
	return func(e *Extractor) { e.timeout = d }
}

// WithLogger sets the logger used to report failed extractions.
func WithLogger(logger logging.Logger) ExtractorOption {
	return func(e *Extractor) { e.logger = logger }
}

// NewExtractor creates an Extractor over renderer.
func NewExtractor(renderer Renderer, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		renderer:   renderer,
		strategies: DefaultStrategies(5 * time.Second),
		timeout:    DefaultNavigationTimeout,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the normalized article text of url, or "" when anything goes
// wrong. It never returns an error and never panics; failures are logged.
// Unsupported platforms are rejected before any session is opened.
func (e *Extractor) Extract(ctx context.Context, url string) string {
	platform := DetectPlatform(url)
	text, err := e.extract(ctx, url, platform)
	if err != nil {
		e.logger.Warn("extraction failed",
			logging.String("url", url),
			logging.String("platform", string(platform)),
			logging.Err(err),
		)
		return ""
	}
	return text
}

func (e *Extractor) extract(ctx context.Context, url string, platform Platform) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("panic during extraction: %v", r)
		}
	}()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	strategy, ok := e.strategies[platform]
	if !ok {
		strategy = GenericStrategy{}
	}
	if _, generic := strategy.(GenericStrategy); generic {
		return "", ErrUnsupportedPlatform
	}

	err = e.renderer.Render(ctx, url, func(ctx context.Context, page Page) error {
		body, err := strategy.ExtractBody(ctx, page)
		if err != nil {
			return err
		}
		text = body
		return nil
	})
	if err != nil {
		var extErr *ExtractionError
		if errors.As(err, &extErr) && extErr.URL == "" {
			extErr.URL = url
		}
		return "", err
	}
	return text, nil
}
