package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"inkwell-cards/repository"
)

// TemplateController handles HTTP requests for card templates
type TemplateController struct {
	repository repository.TemplateRepositoryInterface
}

// NewTemplateController creates a new TemplateController
func NewTemplateController(repo repository.TemplateRepositoryInterface) *TemplateController {
	return &TemplateController{repository: repo}
}

// ListTemplates handles GET /admin/templates
func (c *TemplateController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	templates, err := c.repository.List(ctx)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list templates: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(templates); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetTemplate handles GET /admin/templates/{id}
func (c *TemplateController) GetTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/admin/templates/")
	if path == "" {
		// Trailing-slash form of the collection URL.
		c.ListTemplates(w, r)
		return
	}

	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid template id %q", path), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	tmpl, err := c.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to get template: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tmpl); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
