package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mmrmagno/valart/internal/domain"
)

// downloadFilename is the attachment name for the art artifact. It matches
// the name the editor uses for local downloads.
const downloadFilename = "ascii-art.txt"

// galleryService defines the minimal interface needed by GalleryHandler.
type galleryService interface {
	ListPublished(ctx context.Context, page int) (*domain.GalleryPage, error)
	GetArtwork(ctx context.Context, id uuid.UUID) (*domain.Artwork, error)
}

// GalleryHandler serves the public gallery REST endpoints.
type GalleryHandler struct {
	svc galleryService
	log *slog.Logger
}

// NewGalleryHandler creates a GalleryHandler.
func NewGalleryHandler(svc galleryService, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{svc: svc, log: logger.With("handler", "gallery")}
}

type galleryItemDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Author      string      `json:"author"`
	Art         string      `json:"art"`
	GridSize    gridSizeDTO `json:"gridSize"`
	SubmittedAt time.Time   `json:"submittedAt"`
}

type galleryPageResponse struct {
	Items       []galleryItemDTO `json:"items"`
	Total       int              `json:"total"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

// List handles GET /api/gallery?page=N. Page defaults to 1.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		page = n
	}

	result, err := h.svc.ListPublished(r.Context(), page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items := make([]galleryItemDTO, 0, len(result.Items))
	for _, a := range result.Items {
		items = append(items, galleryItemDTO{
			ID:     a.ID.String(),
			Name:   a.Name,
			Author: a.Author,
			Art:    a.Art,
			GridSize: gridSizeDTO{
				Width:  a.GridSize.Width,
				Height: a.GridSize.Height,
			},
			SubmittedAt: a.SubmittedAt,
		})
	}

	writeJSON(w, http.StatusOK, galleryPageResponse{
		Items:       items,
		Total:       result.Total,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
	})
}

// Download handles GET /api/gallery/{id}/download. It serves the stored
// art bytes unchanged as a text attachment.
func (h *GalleryHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid artwork id")
		return
	}

	artwork, err := h.svc.GetArtwork(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+downloadFilename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(artwork.Art)) //nolint:errcheck
}

func (h *GalleryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPage):
		writeError(w, http.StatusBadRequest, "page must be >= 1")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "artwork not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
