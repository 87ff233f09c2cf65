package gallery

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mmrmagno/valart/internal/domain"
)

// ListPublished returns one page of published artworks in stable insertion
// order. Pages are 1-based and pageSize records long; page < 1 is rejected
// before the store is queried, distinctly from an empty result. A page
// past the end yields empty Items with the real totals.
func (s *Service) ListPublished(ctx context.Context, page int) (*domain.GalleryPage, error) {
	if page < 1 {
		return nil, fmt.Errorf("page %d: %w", page, domain.ErrInvalidPage)
	}

	total, err := s.artworks.CountPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("count published: %w", err)
	}

	if total == 0 {
		return &domain.GalleryPage{
			Items:       []domain.Artwork{},
			Total:       0,
			TotalPages:  0,
			CurrentPage: page,
		}, nil
	}

	items, err := s.artworks.ListPublished(ctx, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("list published: %w", err)
	}

	return &domain.GalleryPage{
		Items:       items,
		Total:       total,
		TotalPages:  (total + s.pageSize - 1) / s.pageSize,
		CurrentPage: page,
	}, nil
}

// GetArtwork returns one published artwork, for the downloadable artifact.
// Pending records are invisible here: domain.ErrNotFound covers both
// unknown and not-yet-promoted ids.
func (s *Service) GetArtwork(ctx context.Context, id uuid.UUID) (*domain.Artwork, error) {
	artwork, err := s.artworks.GetPublished(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get artwork %s: %w", id, err)
	}
	return artwork, nil
}
