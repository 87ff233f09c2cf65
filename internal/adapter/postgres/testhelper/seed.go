package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmrmagno/valart/internal/domain"
)

// uniqueSuffix returns a short unique string for non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedArtwork inserts one artwork row with the given status and returns it.
func SeedArtwork(t *testing.T, pool *pgxpool.Pool, status domain.ArtworkStatus) domain.Artwork {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	artwork := domain.Artwork{
		ID:          uuid.New(),
		Name:        "Creation " + suffix,
		Author:      "Author " + suffix,
		Art:         "█░\n░█",
		GridSize:    domain.Dimensions{Width: 2, Height: 2},
		Status:      status,
		SubmittedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO artworks (id, name, author, author_email, art, grid_width, grid_height, status, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		artwork.ID, artwork.Name, artwork.Author, artwork.AuthorEmail, artwork.Art,
		artwork.GridSize.Width, artwork.GridSize.Height, string(artwork.Status), artwork.SubmittedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArtwork insert: %v", err)
	}

	return artwork
}

// Promote flips one record to published, the way a moderator would by
// hand. Tests use it in place of the out-of-band cmd/promote step.
func Promote(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) {
	t.Helper()

	tag, err := pool.Exec(context.Background(),
		`UPDATE artworks SET status = 'published' WHERE id = $1 AND status = 'pending'`,
		id,
	)
	if err != nil {
		t.Fatalf("testhelper: Promote: %v", err)
	}
	if tag.RowsAffected() != 1 {
		t.Fatalf("testhelper: Promote: record %s not pending", id)
	}
}
