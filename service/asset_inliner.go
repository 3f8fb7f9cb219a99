package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"inkwell-cards/models"
	"inkwell-cards/utils"
)

// AssetInliner resolves asset references (storage file ids or absolute
// URLs) into self-contained base64 data URIs so that markup needs no
// network access at render time.
//
// Inlining failures are non-fatal: the card renders without the asset.
type AssetInliner struct {
	storage    AssetStorageInterface
	httpClient *http.Client
}

// Ensure AssetInliner implements AssetInlinerInterface
var _ AssetInlinerInterface = (*AssetInliner)(nil)

// NewAssetInliner creates a new AssetInliner
func NewAssetInliner(storage AssetStorageInterface) *AssetInliner {
	return &AssetInliner{
		storage: storage,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Inline converts an asset reference into a data URI. Returns "" when the
// reference is empty or the fetch fails.
func (a *AssetInliner) Inline(ctx context.Context, ref string) string {
	if ref == "" {
		return ""
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		uri, err := a.inlineURL(ctx, ref)
		if err != nil {
			log.Printf("⚠️  Warning: failed to inline asset %s: %v", ref, err)
			return ""
		}
		return uri
	}

	// Storage-relative reference: logo/signature assets are stored as PNG.
	data, err := a.storage.DownloadImage(ctx, ref)
	if err != nil {
		log.Printf("⚠️  Warning: failed to inline stored asset %s: %v", ref, err)
		return ""
	}
	return utils.EncodeDataURI("image/png", NormalizeAssetImage(data))
}

// inlineURL fetches an absolute URL and wraps the body using the declared
// content type (default image/png).
func (a *AssetInliner) inlineURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("asset endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read asset body: %w", err)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/png"
	}
	return utils.EncodeDataURI(mimeType, data), nil
}

// BuildCardContent resolves an order and its template into the render-time
// payload: the message text plus inlined logo, signature and template
// artwork. Missing or unfetchable assets leave their field empty.
func (a *AssetInliner) BuildCardContent(ctx context.Context, order *models.Order, tmpl *models.CardTemplate) models.CardContent {
	return models.CardContent{
		Message:          order.Message(),
		LogoDataURI:      a.Inline(ctx, order.LogoRef()),
		SignatureDataURI: a.Inline(ctx, order.SignatureRef()),
		TemplateDataURI:  a.Inline(ctx, tmpl.PreviewRef),
	}
}
