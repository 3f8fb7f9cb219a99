package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"inkwell-cards/layout"
	"inkwell-cards/models"
)

// ErrNoRenderer indicates every render tier failed (or none was available)
// for a face.
var ErrNoRenderer = errors.New("all render strategies failed")

// RenderJob is the input to one face render. Markup is the composed HTML
// document for the browser-based tiers; Content and Layout carry the same
// information in semantic form for the raster compositor, so every tier
// draws from the same geometry and text-wrapping decisions.
type RenderJob struct {
	Markup  string
	Layout  layout.LayoutConfig
	Content models.CardContent
}

// RenderStrategy is one way of turning a face render job into a raster
// image. Strategies are tried in order by the RenderChain; a failure is
// absorbed and the next strategy runs.
type RenderStrategy interface {
	// Name identifies the strategy in logs
	Name() string
	// Available reports whether the strategy can run at all (configured,
	// binary present, ...). Unavailable strategies are skipped silently.
	Available() bool
	// Render produces image bytes at the job layout's viewport
	Render(ctx context.Context, job RenderJob) ([]byte, error)
}

// RenderChain tries an ordered list of render strategies and returns the
// first successful raster. Per-tier failures are logged and absorbed; only
// when every tier fails does the chain surface an error.
type RenderChain struct {
	strategies []RenderStrategy
}

// NewRenderChain creates a new RenderChain with the given tiers, in order
func NewRenderChain(strategies ...RenderStrategy) *RenderChain {
	return &RenderChain{strategies: strategies}
}

// RenderChainInterface defines the contract consumed by the orchestrator
type RenderChainInterface interface {
	Render(ctx context.Context, job RenderJob) ([]byte, error)
}

// Ensure RenderChain implements RenderChainInterface
var _ RenderChainInterface = (*RenderChain)(nil)

// Render runs the chain for one face
func (c *RenderChain) Render(ctx context.Context, job RenderJob) ([]byte, error) {
	var lastErr error

	for _, s := range c.strategies {
		if !s.Available() {
			continue
		}

		img, err := s.Render(ctx, job)
		if err != nil {
			log.Printf("⚠️  Render tier %s failed for %s face: %v", s.Name(), job.Layout.Face, err)
			lastErr = err
			continue
		}
		if len(img) == 0 {
			log.Printf("⚠️  Render tier %s returned empty image for %s face", s.Name(), job.Layout.Face)
			lastErr = fmt.Errorf("strategy %s returned empty image", s.Name())
			continue
		}

		log.Printf("✓ Rendered %s face via %s (%d bytes)", job.Layout.Face, s.Name(), len(img))
		return img, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoRenderer, lastErr)
	}
	return nil, ErrNoRenderer
}
