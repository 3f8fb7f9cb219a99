package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"inkwell-cards/layout"
	"inkwell-cards/repository"
	"inkwell-cards/service"
)

// RenderController handles HTTP requests for card preview rendering
type RenderController struct {
	renderService service.RenderServiceInterface
	orders        repository.OrderRepositoryInterface
}

// NewRenderController creates a new RenderController
func NewRenderController(renderService service.RenderServiceInterface, orders repository.OrderRepositoryInterface) *RenderController {
	return &RenderController{
		renderService: renderService,
		orders:        orders,
	}
}

// orderIDFromPath extracts the order id from /admin/orders/{id}/previews
func orderIDFromPath(path string) (int64, error) {
	trimmed := strings.TrimPrefix(path, "/admin/orders/")
	trimmed = strings.TrimSuffix(trimmed, "/previews")
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid order id %q", trimmed)
	}
	return id, nil
}

// RenderPreviews handles POST /admin/orders/{id}/previews
// Triggers a full render of both card faces and persists the results.
// Query parameters: mode=preview|production (default preview),
// spread=true to force a spread preview.
func (c *RenderController) RenderPreviews(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDFromPath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mode := layout.ModePreview
	if r.URL.Query().Get("mode") == string(layout.ModeProduction) {
		mode = layout.ModeProduction
	}
	spread := r.URL.Query().Get("spread") == "true"

	ctx := context.Background()
	result, err := c.renderService.RenderOrder(ctx, orderID, mode, spread)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) || errors.Is(err, repository.ErrTemplateNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to render order: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":      "success",
		"orderId":     result.OrderID,
		"generatedAt": result.GeneratedAt,
		"frontBytes":  len(result.FrontPNG),
		"insideBytes": len(result.InsidePNG),
	})
}

// GetPreviews handles GET /admin/orders/{id}/previews
// Returns the stored preview blobs and their timestamp.
func (c *RenderController) GetPreviews(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDFromPath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	order, err := c.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to get order: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"orderId":           order.ID,
		"frontPreview":      order.FrontPreview,
		"insidePreview":     order.InsidePreview,
		"previewsUpdatedAt": order.PreviewsUpdatedAt,
	})
}

// HandlePreviews routes /admin/orders/{id}/previews by method
func (c *RenderController) HandlePreviews(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.RenderPreviews(w, r)
	case http.MethodGet:
		c.GetPreviews(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
