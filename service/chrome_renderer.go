package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// chromeRenderTimeout bounds one local capture including browser startup
const chromeRenderTimeout = 30 * time.Second

// ChromeRenderer captures face markup with a locally installed
// Chrome/Chromium via chromedp. It sits between the remote screenshot
// service and the raster compositor: same real-browser fidelity as the
// remote tier, available whenever a browser binary is on the host.
type ChromeRenderer struct {
	chromePath string
}

// NewChromeRenderer creates a new ChromeRenderer, detecting the browser
// binary at construction time
func NewChromeRenderer() *ChromeRenderer {
	return &ChromeRenderer{chromePath: detectChromePath()}
}

// Ensure ChromeRenderer implements RenderStrategy
var _ RenderStrategy = (*ChromeRenderer)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Name identifies the strategy in logs
func (r *ChromeRenderer) Name() string { return "local-chrome" }

// Available reports whether a Chrome/Chromium binary was found
func (r *ChromeRenderer) Available() bool { return r.chromePath != "" }

// Render loads the markup as a data: document and screenshots the viewport
func (r *ChromeRenderer) Render(ctx context.Context, job RenderJob) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, chromeRenderTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(r.chromePath),
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	width, height := job.Layout.ViewportPx()
	docURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(job.Markup))

	var buf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(docURL),
		chromedp.WaitReady("body"),
		// Assets are inlined data URIs, so a short settle is enough for
		// layout and font loading.
		chromedp.Sleep(1000*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithClip(&page.Viewport{
					X:      0,
					Y:      0,
					Width:  float64(width),
					Height: float64(height),
					Scale:  1,
				}).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}

	return buf, nil
}
