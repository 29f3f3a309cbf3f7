// Package rod implements webgrab.Fetcher using Chrome browser automation.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/webgrab"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements webgrab.Fetcher at compile time.
var _ webgrab.Fetcher = (*Fetcher)(nil)

// Default fetch tuning. The settle and scroll delays give asynchronous page
// scripts time to mutate the DOM before capture.
const (
	DefaultNavTimeout  = 10 * time.Second
	DefaultSettleDelay = 5 * time.Second
	DefaultScrollDelay = 2 * time.Second

	// DefaultUserAgent is a realistic desktop user agent; headless Chrome's
	// own UA advertises automation and gets pages served differently.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// stealthJS hides the navigation-control flag that page scripts inspect to
// detect automation. Installed before any page script runs.
const stealthJS = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined})`

// Fetcher retrieves fully rendered pages using a headless Chrome browser.
// Each Fetch call launches its own isolated browser instance and tears it
// down before returning, so no two fetches share browser process state.
// A leaked browser process is the primary failure mode of this kind of
// system; the per-call lifecycle keeps release unconditional.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	navTimeout  time.Duration
	settleDelay time.Duration
	scrollDelay time.Duration
	userAgent   string
	viewportW   int
	viewportH   int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithNavTimeout sets the bounded wait for the document body to appear
// after navigation. Defaults to 10s.
func WithNavTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.navTimeout = d }
}

// WithSettleDelay sets the post-load wait before scrolling. Defaults to 5s.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) { f.settleDelay = d }
}

// WithScrollDelay sets the wait between scroll stages. Defaults to 2s.
func WithScrollDelay(d time.Duration) Option {
	return func(f *Fetcher) { f.scrollDelay = d }
}

// WithUserAgent overrides the desktop user agent presented to pages.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithViewport overrides the 1920x1080 default viewport.
func WithViewport(width, height int) Option {
	return func(f *Fetcher) {
		f.viewportW = width
		f.viewportH = height
	}
}

// NewFetcher creates a new Fetcher. The browser is not launched here; each
// Fetch call launches and tears down its own instance.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		navTimeout:  DefaultNavTimeout,
		settleDelay: DefaultSettleDelay,
		scrollDelay: DefaultScrollDelay,
		userAgent:   DefaultUserAgent,
		viewportW:   1920,
		viewportH:   1080,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch navigates to the URL in a fresh headless browser, waits for the
// body, settles, runs the scroll sequence to trigger lazy-loaded content,
// and returns the rendered HTML and page title.
func (f *Fetcher) Fetch(ctx context.Context, url string, progress webgrab.ProgressFunc) (*webgrab.FetchResult, error) {
	report := func(message string, percent int) {
		if progress != nil {
			progress(message, percent)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, webgrab.Errorf(webgrab.EUNAVAILABLE, "fetching %s: %v", url, err)
	}

	report("Starting browser...", 10)

	browser, cleanup, err := f.launchBrowser()
	if err != nil {
		return nil, webgrab.Errorf(webgrab.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer cleanup()

	result, err := f.fetchPage(ctx, browser, url, report)
	if err != nil {
		return nil, webgrab.Errorf(webgrab.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	return result, nil
}

// launchBrowser starts an isolated headless browser. The returned cleanup
// closes the browser and kills the launcher process; it is safe to call on
// every exit path.
func (f *Fetcher) launchBrowser() (*rod.Browser, func(), error) {
	lnchr := launcher.New().
		NoSandbox(true).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, nil, err
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, nil, err
	}

	cleanup := func() {
		_ = browser.Close()
		lnchr.Kill()
	}
	return browser, cleanup, nil
}

// fetchPage runs the navigation, readiness wait, settle, and scroll sequence
// on the given browser and captures the result.
func (f *Fetcher) fetchPage(ctx context.Context, browser *rod.Browser, url string, report webgrab.ProgressFunc) (*webgrab.FetchResult, error) {
	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent: f.userAgent,
	}); err != nil {
		return nil, err
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             f.viewportW,
		Height:            f.viewportH,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, err
	}
	if _, err := page.EvalOnNewDocument(stealthJS); err != nil {
		return nil, err
	}

	report("Loading: "+url, 30)

	// Navigation and the readiness wait share one bounded timeout.
	nav := page.Timeout(f.navTimeout)
	if err := nav.Navigate(url); err != nil {
		return nil, err
	}

	report("Waiting for page to load...", 50)

	// Minimal readiness condition: the document body exists.
	if _, err := nav.Element("body"); err != nil {
		return nil, err
	}

	// Settle delay for dynamic content.
	if err := sleep(ctx, f.settleDelay); err != nil {
		return nil, err
	}

	report("Scrolling page...", 70)

	// Scroll mid-page, to the bottom, then back to the top. Visibility and
	// scroll handlers fire along the way and materialize lazy content.
	// Heuristic, not a completeness guarantee.
	scrolls := []struct {
		js    string
		delay time.Duration
	}{
		{`() => window.scrollTo(0, document.body.scrollHeight / 2)`, f.scrollDelay},
		{`() => window.scrollTo(0, document.body.scrollHeight)`, f.scrollDelay},
		{`() => window.scrollTo(0, 0)`, f.scrollDelay / 2},
	}
	for _, s := range scrolls {
		if _, err := page.Eval(s.js); err != nil {
			return nil, err
		}
		if err := sleep(ctx, s.delay); err != nil {
			return nil, err
		}
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}
	info, err := page.Info()
	if err != nil {
		return nil, err
	}

	report("Content fetched!", 90)

	return &webgrab.FetchResult{HTML: html, Title: info.Title}, nil
}

// sleep waits for d or until the context is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
