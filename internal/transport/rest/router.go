package rest

import (
	"net/http"
)

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Submit  *SubmitHandler
	Gallery *GalleryHandler
	Health  *HealthHandler
}

// NewRouter builds the HTTP route table. Method-qualified patterns make
// the mux reject wrong methods with 405 on matched paths.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/submit", h.Submit.Submit)
	mux.HandleFunc("GET /api/gallery", h.Gallery.List)
	mux.HandleFunc("GET /api/gallery/{id}/download", h.Gallery.Download)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}
