// Package gallery serves paginated reads of published artworks. It never
// writes; promotion from pending to published happens outside the
// application (see cmd/promote).
package gallery

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mmrmagno/valart/internal/domain"
)

// DefaultPageSize is the number of records per gallery page when the
// configuration does not override it.
const DefaultPageSize = 9

type artworkRepo interface {
	ListPublished(ctx context.Context, limit, offset int) ([]domain.Artwork, error)
	CountPublished(ctx context.Context) (int, error)
	GetPublished(ctx context.Context, id uuid.UUID) (*domain.Artwork, error)
}

// Service provides gallery read operations.
type Service struct {
	artworks artworkRepo
	pageSize int
	log      *slog.Logger
}

// NewService creates a Gallery service. pageSize <= 0 falls back to
// DefaultPageSize.
func NewService(log *slog.Logger, artworks artworkRepo, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		artworks: artworks,
		pageSize: pageSize,
		log:      log.With("service", "gallery"),
	}
}
