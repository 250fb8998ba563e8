package fetch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/openny/stylemind/internal/logging"
)

// BrowserOptions configures headless Chrome sessions.
type BrowserOptions struct {
	UserAgent string
	Headful   bool
	// IdleWait bounds the wait for network idleness after the load event.
	IdleWait time.Duration
	// TextWait bounds reading an element's text.
	TextWait time.Duration
}

// BrowserRenderer renders pages in headless Chrome, one fresh browser per call.
type BrowserRenderer struct {
	opts     BrowserOptions
	preparer *BrowserPreparer
	logger   logging.Logger
}

// NewBrowserRenderer creates a BrowserRenderer. The preparer resolves the Chrome binary once.
func NewBrowserRenderer(opts BrowserOptions, preparer *BrowserPreparer, logger logging.Logger) *BrowserRenderer {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.TextWait == 0 {
		opts.TextWait = 5 * time.Second
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &BrowserRenderer{opts: opts, preparer: preparer, logger: logger}
}

// Render implements Renderer.
func (r *BrowserRenderer) Render(ctx context.Context, url string, fn func(ctx context.Context, page Page) error) error {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", !r.opts.Headful),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(r.opts.UserAgent),
	)
	if r.preparer != nil {
		if execPath := r.preparer.Ensure(ctx); execPath != "" {
			allocOpts = append(allocOpts, chromedp.ExecPath(execPath))
		}
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	start := time.Now()
	if err := chromedp.Run(browserCtx, navigateAndSettle(url, r.opts.IdleWait)); err != nil {
		return fmt.Errorf("browser navigation failed: %w", err)
	}
	r.logger.Debug("page loaded", logging.String("url", url), logging.Duration("elapsed", time.Since(start)))

	return fn(browserCtx, &chromedpPage{textWait: r.opts.TextWait})
}

// navigateAndSettle navigates and then waits up to idleWait for the main
// frame's networkIdle lifecycle event. Pages that keep polling never go idle,
// so running out of idleWait is not an error.
func navigateAndSettle(url string, idleWait time.Duration) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		c := chromedp.FromContext(ctx)
		if c == nil || c.Target == nil {
			return fmt.Errorf("no browser target in context")
		}
		tracker := newIdleTracker(cdp.FrameID(c.Target.TargetID))

		chromedp.ListenTarget(ctx, func(ev interface{}) {
			if e, ok := ev.(*page.EventLifecycleEvent); ok {
				tracker.observe(e)
			}
		})
		if err := page.SetLifecycleEventsEnabled(true).Do(ctx); err != nil {
			return fmt.Errorf("enable lifecycle events: %w", err)
		}
		if err := chromedp.Navigate(url).Do(ctx); err != nil {
			return err
		}
		if idleWait <= 0 {
			return nil
		}

		timer := time.NewTimer(idleWait)
		defer timer.Stop()
		for !tracker.settled() {
			select {
			case <-tracker.changed:
			case <-timer.C:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}
}

// idleTracker follows lifecycle events of the main frame and reports when the
// most recent document has reached networkIdle.
type idleTracker struct {
	mainFrame cdp.FrameID
	changed   chan struct{}

	mu     sync.Mutex
	loader cdp.LoaderID
	idle   map[cdp.LoaderID]bool
}

func newIdleTracker(mainFrame cdp.FrameID) *idleTracker {
	return &idleTracker{
		mainFrame: mainFrame,
		changed:   make(chan struct{}, 1),
		idle:      make(map[cdp.LoaderID]bool),
	}
}

func (t *idleTracker) observe(e *page.EventLifecycleEvent) {
	if e.FrameID != t.mainFrame {
		return
	}

	t.mu.Lock()
	switch e.Name {
	case "init":
		t.loader = e.LoaderID
	case "networkIdle":
		t.idle[e.LoaderID] = true
	}
	t.mu.Unlock()

	select {
	case t.changed <- struct{}{}:
	default:
	}
}

func (t *idleTracker) settled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loader != "" && t.idle[t.loader]
}

// chromedpPage implements Page over a live tab. A nil root queries the top document;
// otherwise queries run inside the iframe node root.
type chromedpPage struct {
	root     *cdp.Node
	textWait time.Duration
}

func (p *chromedpPage) queryOpts(by chromedp.QueryOption, extra ...chromedp.QueryOption) []chromedp.QueryOption {
	opts := []chromedp.QueryOption{by}
	if p.root != nil {
		opts = append(opts, chromedp.FromNode(p.root))
	}
	return append(opts, extra...)
}

func (p *chromedpPage) Frame(ctx context.Context, selector string, wait time.Duration) (Page, error) {
	ctx, cancel := withOptionalTimeout(ctx, wait)
	defer cancel()

	var nodes []*cdp.Node
	if err := chromedp.Run(ctx, chromedp.Nodes(selector, &nodes, p.queryOpts(chromedp.ByQuery)...)); err != nil {
		return nil, fmt.Errorf("frame %q: %w", selector, err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("frame %q not found", selector)
	}
	return &chromedpPage{root: nodes[0], textWait: p.textWait}, nil
}

func (p *chromedpPage) WaitVisible(ctx context.Context, selector string, wait time.Duration) error {
	ctx, cancel := withOptionalTimeout(ctx, wait)
	defer cancel()

	if err := chromedp.Run(ctx, chromedp.WaitVisible(selector, p.queryOpts(chromedp.ByQuery)...)); err != nil {
		return fmt.Errorf("wait for %q: %w", selector, err)
	}
	return nil
}

func (p *chromedpPage) Count(ctx context.Context, selector string) (int, error) {
	var nodes []*cdp.Node
	if err := chromedp.Run(ctx, chromedp.Nodes(selector, &nodes, p.queryOpts(chromedp.ByQueryAll, chromedp.AtLeast(0))...)); err != nil {
		return 0, fmt.Errorf("count %q: %w", selector, err)
	}
	return len(nodes), nil
}

func (p *chromedpPage) Text(ctx context.Context, selector string) (string, error) {
	ctx, cancel := withOptionalTimeout(ctx, p.textWait)
	defer cancel()

	var text string
	if err := chromedp.Run(ctx, chromedp.Text(selector, &text, p.queryOpts(chromedp.ByQuery)...)); err != nil {
		return "", fmt.Errorf("text of %q: %w", selector, err)
	}
	return text, nil
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
