package router

import (
	"net/http"
	"strings"

	"inkwell-cards/app/controller"
)

type Controllers struct {
	Render   *controller.RenderController
	Template *controller.TemplateController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Template list
	http.HandleFunc("/admin/templates", controllers.Template.ListTemplates)

	// Template detail
	http.HandleFunc("/admin/templates/", controllers.Template.GetTemplate)

	// Order previews - POST triggers a render, GET returns stored blobs
	http.HandleFunc("/admin/orders/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/previews") {
			controllers.Render.HandlePreviews(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})
}
