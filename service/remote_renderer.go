package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"inkwell-cards/utils"
)

// remoteRenderTimeout bounds one screenshot call; there is no retry, a
// timeout falls straight through to the next render tier.
const remoteRenderTimeout = 8 * time.Second

// remoteSettleDelay is how long the service lets the page settle before
// capturing.
const remoteSettleDelay = "1s"

// RemoteRenderer is the primary render tier: a hosted Chromium screenshot
// service that accepts an HTML document as a multipart upload and returns a
// raster capture. The response may be the PNG itself or an archive-like
// wrapper holding it, in which case the PNG is salvaged by signature
// scanning.
type RemoteRenderer struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewRemoteRenderer creates a new RemoteRenderer. Either parameter being
// empty leaves the tier unavailable and the chain skips it.
func NewRemoteRenderer(endpoint, apiKey string) *RemoteRenderer {
	return &RemoteRenderer{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: remoteRenderTimeout,
		},
	}
}

// Ensure RemoteRenderer implements RenderStrategy
var _ RenderStrategy = (*RemoteRenderer)(nil)

// Name identifies the strategy in logs
func (r *RemoteRenderer) Name() string { return "remote-screenshot" }

// Available reports whether the screenshot service is configured
func (r *RemoteRenderer) Available() bool {
	return r.endpoint != "" && r.apiKey != ""
}

// Render posts the markup to the screenshot service and returns the PNG
func (r *RemoteRenderer) Render(ctx context.Context, job RenderJob) ([]byte, error) {
	width, height := job.Layout.ViewportPx()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.WriteString(part, job.Markup); err != nil {
		return nil, fmt.Errorf("failed to write markup part: %w", err)
	}

	fields := map[string]string{
		"emulatedMediaType": "print",
		"waitDelay":         remoteSettleDelay,
		"width":             strconv.Itoa(width),
		"height":            strconv.Itoa(height),
		"format":            "png",
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build screenshot request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("screenshot request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("screenshot service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read screenshot response: %w", err)
	}

	// The service sometimes wraps the capture in a zip-like container.
	contentType := resp.Header.Get("Content-Type")
	if isArchiveContentType(contentType) {
		png, err := utils.ExtractPNG(data)
		if err != nil {
			return nil, fmt.Errorf("failed to extract PNG from %s response: %w", contentType, err)
		}
		return png, nil
	}

	return data, nil
}

// isArchiveContentType reports whether the declared content type is an
// archive/compressed wrapper rather than a raw image.
func isArchiveContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "zip") ||
		strings.Contains(ct, "compressed") ||
		strings.Contains(ct, "octet-stream")
}
