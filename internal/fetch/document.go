package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// HTTPRenderer loads pages with a plain GET and parses them with goquery.
// Nothing is executed, so it only sees server-rendered markup; framed pages
// are followed by fetching the iframe's src.
type HTTPRenderer struct {
	opts *Options
}

// NewHTTPRenderer creates an HTTPRenderer. A nil opts uses DefaultOptions.
func NewHTTPRenderer(opts *Options) *HTTPRenderer {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTTPRenderer{opts: opts}
}

// Render implements Renderer.
func (r *HTTPRenderer) Render(ctx context.Context, rawURL string, fn func(ctx context.Context, page Page) error) error {
	page, err := r.load(ctx, rawURL)
	if err != nil {
		return err
	}
	return fn(ctx, page)
}

func (r *HTTPRenderer) load(ctx context.Context, rawURL string) (*documentPage, error) {
	result, err := URL(ctx, rawURL, r.opts)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to parse HTML", Cause: err}
	}
	return &documentPage{renderer: r, url: rawURL, doc: doc}, nil
}

// documentPage implements Page over a static document. Without a script
// runtime, "visible" means present.
type documentPage struct {
	renderer *HTTPRenderer
	url      string
	doc      *goquery.Document
}

func (p *documentPage) Frame(ctx context.Context, selector string, wait time.Duration) (Page, error) {
	src, ok := p.doc.Find(selector).First().Attr("src")
	if !ok || strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("frame %q not found", selector)
	}

	frameURL, err := resolveReference(p.url, src)
	if err != nil {
		return nil, fmt.Errorf("frame %q: %w", selector, err)
	}

	if wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, wait)
		defer cancel()
	}
	return p.renderer.load(ctx, frameURL)
}

func (p *documentPage) WaitVisible(_ context.Context, selector string, _ time.Duration) error {
	if p.doc.Find(selector).Length() == 0 {
		return fmt.Errorf("no element matches %q", selector)
	}
	return nil
}

func (p *documentPage) Count(_ context.Context, selector string) (int, error) {
	return p.doc.Find(selector).Length(), nil
}

func (p *documentPage) Text(_ context.Context, selector string) (string, error) {
	sel := p.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("no element matches %q", selector)
	}
	content := sel.Clone()
	content.Find("script, style, noscript").Remove()
	return content.Text(), nil
}

func resolveReference(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	refURL, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(refURL).String(), nil
}
