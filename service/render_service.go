package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"inkwell-cards/layout"
	"inkwell-cards/models"
	"inkwell-cards/repository"
)

// RenderServiceInterface defines the contract for the preview pipeline
type RenderServiceInterface interface {
	RenderOrder(ctx context.Context, orderID int64, mode layout.Mode, requestedSpread bool) (*models.RenderResult, error)
}

// RenderService orchestrates one render invocation: it resolves the order
// and template, inlines assets, builds both face markups and runs each face
// through the render chain. Both faces must succeed before anything is
// persisted; a failed face aborts the whole invocation with no partial
// write.
type RenderService struct {
	orders    repository.OrderRepositoryInterface
	templates repository.TemplateRepositoryInterface
	inliner   AssetInlinerInterface
	builder   TemplateBuilderInterface
	chain     RenderChainInterface
	now       func() time.Time
}

// NewRenderService creates a new RenderService
func NewRenderService(
	orders repository.OrderRepositoryInterface,
	templates repository.TemplateRepositoryInterface,
	inliner AssetInlinerInterface,
	builder TemplateBuilderInterface,
	chain RenderChainInterface,
) *RenderService {
	return &RenderService{
		orders:    orders,
		templates: templates,
		inliner:   inliner,
		builder:   builder,
		chain:     chain,
		now:       time.Now,
	}
}

// Ensure RenderService implements RenderServiceInterface
var _ RenderServiceInterface = (*RenderService)(nil)

// RenderOrder renders both card faces for an order and persists the
// previews. Triggered by storefront events such as "signature updated" or
// "preview requested".
func (s *RenderService) RenderOrder(ctx context.Context, orderID int64, mode layout.Mode, requestedSpread bool) (*models.RenderResult, error) {
	log.Printf("🖨  Rendering order %d (mode=%s, spread=%v)", orderID, mode, requestedSpread)

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", orderID, err)
	}

	tmpl, err := s.templates.GetByID(ctx, order.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %d for order %d: %w", order.TemplateID, orderID, err)
	}

	content := s.inliner.BuildCardContent(ctx, order, tmpl)

	// The faces are independent: one failing never keeps the other from
	// being attempted. Persistence still requires both to succeed.
	frontPNG, frontErr := s.renderFace(ctx, layout.FaceFront, mode, requestedSpread, content)
	insidePNG, insideErr := s.renderFace(ctx, layout.FaceInside, mode, requestedSpread, content)
	if frontErr != nil {
		return nil, fmt.Errorf("failed to render front face of order %d: %w", orderID, frontErr)
	}
	if insideErr != nil {
		return nil, fmt.Errorf("failed to render inside face of order %d: %w", orderID, insideErr)
	}

	updatedAt := s.now().UTC()
	frontB64 := base64.StdEncoding.EncodeToString(frontPNG)
	insideB64 := base64.StdEncoding.EncodeToString(insidePNG)

	if err := s.orders.SavePreviews(ctx, orderID, frontB64, insideB64, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to persist previews for order %d: %w", orderID, err)
	}

	return &models.RenderResult{
		OrderID:     orderID,
		FrontPNG:    frontPNG,
		InsidePNG:   insidePNG,
		GeneratedAt: updatedAt.Format(time.RFC3339),
	}, nil
}

// renderFace builds and renders one face through the strategy chain
func (s *RenderService) renderFace(ctx context.Context, face layout.Face, mode layout.Mode, requestedSpread bool, content models.CardContent) ([]byte, error) {
	cfg := layout.Resolve(face, mode, requestedSpread)

	var (
		markup string
		err    error
	)
	if face == layout.FaceFront {
		markup, err = s.builder.BuildFront(cfg, content)
	} else {
		markup, err = s.builder.BuildInside(cfg, content)
	}
	if err != nil {
		return nil, err
	}

	return s.chain.Render(ctx, RenderJob{
		Markup:  markup,
		Layout:  cfg,
		Content: content,
	})
}
