// Package submission gates candidate submissions and turns accepted ones
// into durable gallery records: validate -> sanitize -> append -> notify.
package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmrmagno/valart/internal/domain"
)

type artworkRepo interface {
	Append(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error)
}

type mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// DefaultNotifyTimeout bounds notification dispatch so a slow mailer can
// never block the HTTP response indefinitely.
const DefaultNotifyTimeout = 10 * time.Second

// Service accepts submissions into the moderation store and dispatches
// best-effort notifications.
type Service struct {
	artworks      artworkRepo
	mail          mailer
	adminEmail    string
	notifyTimeout time.Duration
	log           *slog.Logger
}

// NewService creates a Submission service. adminEmail receives a
// notification for every accepted submission; notifyTimeout <= 0 falls
// back to DefaultNotifyTimeout.
func NewService(
	log *slog.Logger,
	artworks artworkRepo,
	mail mailer,
	adminEmail string,
	notifyTimeout time.Duration,
) *Service {
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	return &Service{
		artworks:      artworks,
		mail:          mail,
		adminEmail:    adminEmail,
		notifyTimeout: notifyTimeout,
		log:           log.With("service", "submission"),
	}
}

// Result is the outcome of an accepted submission. EmailSent lets callers
// distinguish "submitted and confirmed" from "submitted, email pending".
type Result struct {
	Artwork   *domain.Artwork
	EmailSent bool
}
