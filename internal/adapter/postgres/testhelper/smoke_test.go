package testhelper

import (
	"context"
	"testing"

	"github.com/mmrmagno/valart/internal/domain"
)

func TestSetupTestDB(t *testing.T) {
	pool := SetupTestDB(t)

	var n int
	if err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM artworks").Scan(&n); err != nil {
		t.Fatalf("query artworks: %v", err)
	}
}

func TestSeedArtwork(t *testing.T) {
	pool := SetupTestDB(t)

	seeded := SeedArtwork(t, pool, domain.StatusPending)

	var status string
	err := pool.QueryRow(context.Background(),
		"SELECT status FROM artworks WHERE id = $1", seeded.ID).Scan(&status)
	if err != nil {
		t.Fatalf("query seeded artwork: %v", err)
	}
	if status != string(domain.StatusPending) {
		t.Errorf("status = %q, want %q", status, domain.StatusPending)
	}

	Promote(t, pool, seeded.ID)

	err = pool.QueryRow(context.Background(),
		"SELECT status FROM artworks WHERE id = $1", seeded.ID).Scan(&status)
	if err != nil {
		t.Fatalf("query promoted artwork: %v", err)
	}
	if status != string(domain.StatusPublished) {
		t.Errorf("status after promote = %q, want %q", status, domain.StatusPublished)
	}
}
