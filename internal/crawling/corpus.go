package crawling

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openny/stylemind/internal/fetch"
	"github.com/openny/stylemind/internal/logging"
	"github.com/openny/stylemind/internal/types"
	"golang.org/x/sync/errgroup"
)

// TextExtractor returns the article text of a URL, or "" on failure.
type TextExtractor interface {
	Extract(ctx context.Context, url string) string
}

// Coordinator fans extraction out over a batch of URLs.
type Coordinator struct {
	extractor   TextExtractor
	concurrency int
	logger      logging.Logger
	now         func() time.Time
}

// NewCoordinator creates a Coordinator. concurrency <= 0 runs every URL at once.
func NewCoordinator(extractor TextExtractor, concurrency int, logger logging.Logger) *Coordinator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Coordinator{
		extractor:   extractor,
		concurrency: concurrency,
		logger:      logger,
		now:         time.Now,
	}
}

// Collect extracts every URL and returns one document per input, in input order.
// A failed URL yields a document with Success=false; it never cancels the others.
func (c *Coordinator) Collect(ctx context.Context, urls []string) []types.SourceDocument {
	if len(urls) == 0 {
		return nil
	}

	docs := make([]types.SourceDocument, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	if c.concurrency > 0 {
		g.SetLimit(c.concurrency)
	}

	start := c.now()
	for i, u := range urls {
		g.Go(func() error {
			docs[i] = c.collectOne(gctx, u)
			return nil
		})
	}
	_ = g.Wait()

	succeeded := 0
	for _, d := range docs {
		if d.Success {
			succeeded++
		}
	}
	c.logger.Info("retrieval finished",
		logging.Int("urls", len(urls)),
		logging.Int("succeeded", succeeded),
		logging.Duration("elapsed", c.now().Sub(start)),
	)
	return docs
}

func (c *Coordinator) collectOne(ctx context.Context, rawURL string) types.SourceDocument {
	doc := types.SourceDocument{
		URL:      rawURL,
		Platform: string(fetch.DetectPlatform(rawURL)),
	}

	if !fetch.IsFetchableURL(rawURL) {
		c.logger.Warn("skipping invalid URL", logging.String("url", rawURL))
		doc.FetchedAt = c.now().UTC().Format(time.RFC3339)
		return doc
	}

	text := c.extractor.Extract(ctx, rawURL)
	doc.FetchedAt = c.now().UTC().Format(time.RFC3339)
	if text == "" {
		return doc
	}

	sum := sha256.Sum256([]byte(text))
	doc.Text = text
	doc.Success = true
	doc.Hash = hex.EncodeToString(sum[:])
	return doc
}

// Retrieve extracts every URL and joins the non-empty texts with single
// spaces in input order. The result is "" only when nothing was extracted.
func (c *Coordinator) Retrieve(ctx context.Context, urls []string) string {
	return Aggregate(c.Collect(ctx, urls))
}

// BuildCorpus extracts every URL and packages the aggregate with its sources.
func (c *Coordinator) BuildCorpus(ctx context.Context, urls []string) *types.Corpus {
	docs := c.Collect(ctx, urls)
	if docs == nil {
		docs = []types.SourceDocument{}
	}
	return &types.Corpus{
		ID:      uuid.New(),
		Text:    Aggregate(docs),
		Sources: docs,
	}
}

// RequireURLs reports a CrawlError when urls holds no non-blank entry.
func RequireURLs(urls []string) error {
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			return nil
		}
	}
	return &CrawlError{Message: "no URLs provided"}
}

// Aggregate joins the text of successful documents with single spaces.
func Aggregate(docs []types.SourceDocument) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.Success && d.Text != "" {
			parts = append(parts, d.Text)
		}
	}
	return strings.Join(parts, " ")
}
