package domain

import (
	"time"

	"github.com/google/uuid"
)

// ArtworkStatus is the moderation state of a stored submission.
// Transitions happen outside the application: a moderator promotes a
// pending record by hand (cmd/promote); the store itself only ever
// appends pending records and lists published ones.
type ArtworkStatus string

const (
	StatusPending   ArtworkStatus = "pending"
	StatusPublished ArtworkStatus = "published"
)

// Artwork is one accepted submission. Created once on accept, immutable
// afterwards; deletion is a manual moderation action on the store.
type Artwork struct {
	ID          uuid.UUID
	Name        string
	Author      string
	AuthorEmail *string
	Art         string
	GridSize    Dimensions
	Status      ArtworkStatus
	SubmittedAt time.Time
}

// GalleryPage is a read-only projection of the published records,
// computed on demand and never persisted.
type GalleryPage struct {
	Items       []Artwork
	Total       int
	TotalPages  int
	CurrentPage int
}
