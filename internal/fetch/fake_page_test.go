package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// fakePage is an in-memory Page. visible elements satisfy WaitVisible,
// present elements only satisfy Count.
type fakePage struct {
	frames  map[string]*fakePage
	visible map[string]string
	present map[string]string
	textErr map[string]error

	waits []string
	calls []string
}

func (p *fakePage) Frame(_ context.Context, selector string, wait time.Duration) (Page, error) {
	p.calls = append(p.calls, "frame "+selector)
	f, ok := p.frames[selector]
	if !ok {
		return nil, fmt.Errorf("frame %q not found", selector)
	}
	return f, nil
}

func (p *fakePage) WaitVisible(_ context.Context, selector string, wait time.Duration) error {
	p.calls = append(p.calls, "wait "+selector)
	p.waits = append(p.waits, fmt.Sprintf("%s:%s", selector, wait))
	if _, ok := p.visible[selector]; ok {
		return nil
	}
	return errors.New("timeout waiting for " + selector)
}

func (p *fakePage) Count(_ context.Context, selector string) (int, error) {
	p.calls = append(p.calls, "count "+selector)
	if _, ok := p.visible[selector]; ok {
		return 1, nil
	}
	if _, ok := p.present[selector]; ok {
		return 1, nil
	}
	return 0, nil
}

func (p *fakePage) Text(_ context.Context, selector string) (string, error) {
	p.calls = append(p.calls, "text "+selector)
	if err, ok := p.textErr[selector]; ok {
		return "", err
	}
	if text, ok := p.visible[selector]; ok {
		return text, nil
	}
	if text, ok := p.present[selector]; ok {
		return text, nil
	}
	return "", errors.New("no element " + selector)
}

// fakeRenderer hands a fixed page to the callback.
type fakeRenderer struct {
	page      Page
	renderErr error
	panicMsg  string

	rendered []string
	released int
}

func (r *fakeRenderer) Render(ctx context.Context, url string, fn func(ctx context.Context, page Page) error) error {
	r.rendered = append(r.rendered, url)
	defer func() { r.released++ }()
	if r.renderErr != nil {
		return r.renderErr
	}
	if r.panicMsg != "" {
		panic(r.panicMsg)
	}
	return fn(ctx, r.page)
}
