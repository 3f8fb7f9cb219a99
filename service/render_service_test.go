package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"inkwell-cards/layout"
	"inkwell-cards/models"
	"inkwell-cards/repository"
)

// fakeOrderRepo records SavePreviews calls.
type fakeOrderRepo struct {
	order     *models.Order
	saveCalls int
	gotFront  string
	gotInside string
	gotAt     time.Time
	saveErr   error
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, orderID int64) (*models.Order, error) {
	if f.order == nil || f.order.ID != orderID {
		return nil, repository.ErrOrderNotFound
	}
	return f.order, nil
}

func (f *fakeOrderRepo) SavePreviews(ctx context.Context, orderID int64, frontB64, insideB64 string, updatedAt time.Time) error {
	f.saveCalls++
	f.gotFront = frontB64
	f.gotInside = insideB64
	f.gotAt = updatedAt
	return f.saveErr
}

type fakeTemplateRepo struct {
	tmpl *models.CardTemplate
}

func (f *fakeTemplateRepo) GetByID(ctx context.Context, templateID int64) (*models.CardTemplate, error) {
	if f.tmpl == nil || f.tmpl.ID != templateID {
		return nil, repository.ErrTemplateNotFound
	}
	return f.tmpl, nil
}

func (f *fakeTemplateRepo) List(ctx context.Context) ([]models.CardTemplate, error) {
	if f.tmpl == nil {
		return nil, nil
	}
	return []models.CardTemplate{*f.tmpl}, nil
}

// fakeInliner returns the order's message without touching any storage.
type fakeInliner struct{}

func (fakeInliner) Inline(ctx context.Context, ref string) string { return "" }
func (fakeInliner) BuildCardContent(ctx context.Context, order *models.Order, tmpl *models.CardTemplate) models.CardContent {
	return models.CardContent{Message: order.Message()}
}

// fakeChain renders per-face canned results.
type fakeChain struct {
	results map[layout.Face][]byte
	errs    map[layout.Face]error
	calls   []layout.Face
}

func (f *fakeChain) Render(ctx context.Context, job RenderJob) ([]byte, error) {
	f.calls = append(f.calls, job.Layout.Face)
	if err := f.errs[job.Layout.Face]; err != nil {
		return nil, err
	}
	return f.results[job.Layout.Face], nil
}

func newTestService(orders *fakeOrderRepo, templates *fakeTemplateRepo, chain *fakeChain) *RenderService {
	return NewRenderService(orders, templates, fakeInliner{}, NewTemplateBuilder(), chain)
}

func TestRenderOrder_HappyPath(t *testing.T) {
	orders := &fakeOrderRepo{order: &models.Order{
		ID:            42,
		TemplateID:    3,
		CustomMessage: "Warmest wishes for a joyful and restful holiday season.",
		LogoPath:      "logo-id",
	}}
	templates := &fakeTemplateRepo{tmpl: &models.CardTemplate{ID: 3, Name: "Winter Pines"}}
	chain := &fakeChain{results: map[layout.Face][]byte{
		layout.FaceFront:  []byte("front-png"),
		layout.FaceInside: []byte("inside-png"),
	}}

	svc := newTestService(orders, templates, chain)
	result, err := svc.RenderOrder(context.Background(), 42, layout.ModePreview, false)
	if err != nil {
		t.Fatalf("RenderOrder: %v", err)
	}

	if string(result.FrontPNG) != "front-png" || string(result.InsidePNG) != "inside-png" {
		t.Errorf("result buffers = %q / %q", result.FrontPNG, result.InsidePNG)
	}
	if len(chain.calls) != 2 {
		t.Errorf("chain invoked %d times, want one per face", len(chain.calls))
	}

	if orders.saveCalls != 1 {
		t.Fatalf("SavePreviews called %d times, want exactly 1", orders.saveCalls)
	}
	if orders.gotFront != base64.StdEncoding.EncodeToString([]byte("front-png")) {
		t.Errorf("persisted front blob = %q", orders.gotFront)
	}
	if orders.gotInside != base64.StdEncoding.EncodeToString([]byte("inside-png")) {
		t.Errorf("persisted inside blob = %q", orders.gotInside)
	}
	if _, err := time.Parse(time.RFC3339, result.GeneratedAt); err != nil {
		t.Errorf("GeneratedAt %q is not RFC3339: %v", result.GeneratedAt, err)
	}
}

func TestRenderOrder_InsideFailureIsAtomic(t *testing.T) {
	orders := &fakeOrderRepo{order: &models.Order{ID: 42, TemplateID: 3}}
	templates := &fakeTemplateRepo{tmpl: &models.CardTemplate{ID: 3}}
	chain := &fakeChain{
		results: map[layout.Face][]byte{layout.FaceFront: []byte("front-png")},
		errs:    map[layout.Face]error{layout.FaceInside: ErrNoRenderer},
	}

	svc := newTestService(orders, templates, chain)
	if _, err := svc.RenderOrder(context.Background(), 42, layout.ModePreview, false); !errors.Is(err, ErrNoRenderer) {
		t.Fatalf("err = %v, want ErrNoRenderer", err)
	}

	if orders.saveCalls != 0 {
		t.Errorf("SavePreviews called %d times after a face failure, want 0", orders.saveCalls)
	}
}

func TestRenderOrder_FrontFailureStillRendersInside(t *testing.T) {
	orders := &fakeOrderRepo{order: &models.Order{ID: 42, TemplateID: 3}}
	templates := &fakeTemplateRepo{tmpl: &models.CardTemplate{ID: 3}}
	chain := &fakeChain{
		results: map[layout.Face][]byte{layout.FaceInside: []byte("inside-png")},
		errs:    map[layout.Face]error{layout.FaceFront: ErrNoRenderer},
	}

	svc := newTestService(orders, templates, chain)
	if _, err := svc.RenderOrder(context.Background(), 42, layout.ModePreview, false); !errors.Is(err, ErrNoRenderer) {
		t.Fatalf("err = %v, want ErrNoRenderer", err)
	}

	// Faces are independent: the inside face is still attempted.
	if len(chain.calls) != 2 {
		t.Errorf("chain invoked %d times, want both faces attempted", len(chain.calls))
	}
	if orders.saveCalls != 0 {
		t.Errorf("SavePreviews called %d times after a face failure, want 0", orders.saveCalls)
	}
}

func TestRenderOrder_OrderNotFoundAbortsBeforeRendering(t *testing.T) {
	orders := &fakeOrderRepo{}
	templates := &fakeTemplateRepo{}
	chain := &fakeChain{}

	svc := newTestService(orders, templates, chain)
	_, err := svc.RenderOrder(context.Background(), 99, layout.ModePreview, false)
	if !errors.Is(err, repository.ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
	if len(chain.calls) != 0 {
		t.Errorf("chain invoked %d times for a missing order", len(chain.calls))
	}
}

func TestRenderOrder_TemplateNotFoundAborts(t *testing.T) {
	orders := &fakeOrderRepo{order: &models.Order{ID: 42, TemplateID: 3}}
	templates := &fakeTemplateRepo{} // no template 3
	chain := &fakeChain{}

	svc := newTestService(orders, templates, chain)
	_, err := svc.RenderOrder(context.Background(), 42, layout.ModePreview, false)
	if !errors.Is(err, repository.ErrTemplateNotFound) {
		t.Fatalf("err = %v, want ErrTemplateNotFound", err)
	}
	if len(chain.calls) != 0 {
		t.Errorf("chain invoked %d times for a missing template", len(chain.calls))
	}
}

func TestRenderOrder_PersistFailureSurfaces(t *testing.T) {
	orders := &fakeOrderRepo{
		order:   &models.Order{ID: 42, TemplateID: 3},
		saveErr: errors.New("connection reset"),
	}
	templates := &fakeTemplateRepo{tmpl: &models.CardTemplate{ID: 3}}
	chain := &fakeChain{results: map[layout.Face][]byte{
		layout.FaceFront:  []byte("f"),
		layout.FaceInside: []byte("i"),
	}}

	svc := newTestService(orders, templates, chain)
	if _, err := svc.RenderOrder(context.Background(), 42, layout.ModePreview, false); err == nil {
		t.Fatal("expected persist failure to surface")
	}
}

// End-to-end through the real chain with a failing primary: a configured
// remote tier that errors must fall through to the compositor and still
// yield two non-empty rasters and exactly one persist call.
func TestRenderOrder_EndToEndWithFallback(t *testing.T) {
	orders := &fakeOrderRepo{order: &models.Order{
		ID:            42,
		TemplateID:    3,
		CustomMessage: "Warmest wishes for a joyful and restful holiday season.",
	}}
	templates := &fakeTemplateRepo{tmpl: &models.CardTemplate{ID: 3}}

	// Unreachable endpoint: the remote tier is available but always fails.
	remote := NewRemoteRenderer("http://127.0.0.1:1", "key")
	chain := NewRenderChain(remote, NewCompositor())

	svc := NewRenderService(orders, templates, fakeInliner{}, NewTemplateBuilder(), chain)
	result, err := svc.RenderOrder(context.Background(), 42, layout.ModePreview, false)
	if err != nil {
		t.Fatalf("RenderOrder: %v", err)
	}
	if len(result.FrontPNG) == 0 || len(result.InsidePNG) == 0 {
		t.Error("expected non-empty rasters from the fallback tier")
	}
	if orders.saveCalls != 1 {
		t.Errorf("SavePreviews called %d times, want 1", orders.saveCalls)
	}
}
