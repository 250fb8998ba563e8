package fetch

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/openny/stylemind/internal/logging"
)

// DefaultInstallTimeout bounds the one-time browser install command.
const DefaultInstallTimeout = 5 * time.Minute

// chromeCandidates are the executable names searched on PATH.
var chromeCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
	"chrome",
}

// BrowserPreparer makes sure a Chrome binary is available. The work runs at
// most once per preparer; later calls return the cached result.
type BrowserPreparer struct {
	chromePath     string
	installCommand string
	installTimeout time.Duration
	logger         logging.Logger

	lookPath func(file string) (string, error)
	run      func(ctx context.Context, command string) ([]byte, error)

	once     sync.Once
	execPath string
}

// NewBrowserPreparer creates a preparer. chromePath, when set, is used as is.
// installCommand is a shell command run when no binary can be found.
func NewBrowserPreparer(chromePath, installCommand string, logger logging.Logger) *BrowserPreparer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &BrowserPreparer{
		chromePath:     chromePath,
		installCommand: installCommand,
		installTimeout: DefaultInstallTimeout,
		logger:         logger,
		lookPath:       exec.LookPath,
		run:            runShell,
	}
}

// Ensure returns the Chrome executable path, or "" to let chromedp search on its own.
// Failures are logged and never returned; sessions then fail per URL.
func (p *BrowserPreparer) Ensure(ctx context.Context) string {
	p.once.Do(func() {
		p.execPath = p.prepare(context.WithoutCancel(ctx))
	})
	return p.execPath
}

func (p *BrowserPreparer) prepare(ctx context.Context) string {
	if p.chromePath != "" {
		return p.chromePath
	}

	if path := p.find(); path != "" {
		p.logger.Debug("chrome binary found", logging.String("path", path))
		return path
	}

	if p.installCommand == "" {
		p.logger.Warn("no chrome binary found on PATH and no install command configured")
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, p.installTimeout)
	defer cancel()

	p.logger.Info("installing browser", logging.String("command", p.installCommand))
	if out, err := p.run(ctx, p.installCommand); err != nil {
		p.logger.Error("browser install failed", logging.Err(err), logging.String("output", string(out)))
		return ""
	}

	path := p.find()
	if path == "" {
		p.logger.Warn("browser install finished but no chrome binary is on PATH")
	}
	return path
}

func (p *BrowserPreparer) find() string {
	for _, name := range chromeCandidates {
		if path, err := p.lookPath(name); err == nil {
			return path
		}
	}
	return ""
}

func runShell(ctx context.Context, command string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, "sh", "-c", command).CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("run %q: %w", command, err)
	}
	return out, nil
}
