package submission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmrmagno/valart/internal/domain"
)

// Submit validates a candidate submission, appends it to the moderation
// store, and dispatches notifications. The stored record stays pending
// until a moderator promotes it out of band.
//
// Notification is a best-effort side effect: its failure never rolls back
// a successful append and is reported via Result.EmailSent instead of an
// error.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	artwork := &domain.Artwork{
		Name:        domain.SanitizeText(input.CreationName),
		Author:      domain.SanitizeText(input.AuthorName),
		Art:         domain.SanitizeArt(input.Art),
		GridSize:    domain.Dimensions{Width: input.GridWidth, Height: input.GridHeight},
		AuthorEmail: trimOrNil(input.AuthorEmail),
	}

	stored, err := s.artworks.Append(ctx, artwork)
	if err != nil {
		return nil, fmt.Errorf("append artwork: %w", err)
	}

	s.log.InfoContext(ctx, "submission accepted",
		slog.String("artwork_id", stored.ID.String()),
		slog.String("author", stored.Author),
		slog.Int("grid_width", stored.GridSize.Width),
		slog.Int("grid_height", stored.GridSize.Height),
	)

	return &Result{
		Artwork:   stored,
		EmailSent: s.notify(ctx, stored),
	}, nil
}

// notify sends the admin notification and, when the author left an
// address, a confirmation mail. Dispatch shares one bounded timeout.
// Returns false if any message failed or mail is disabled.
func (s *Service) notify(ctx context.Context, artwork *domain.Artwork) bool {
	if s.mail == nil {
		s.log.DebugContext(ctx, "mail disabled, skipping notifications",
			slog.String("artwork_id", artwork.ID.String()),
		)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	sent := true

	subject := fmt.Sprintf("New ASCII Art Submission: %q", artwork.Name)
	if err := s.mail.Send(ctx, s.adminEmail, subject, adminBody(artwork)); err != nil {
		s.log.WarnContext(ctx, "admin notification failed",
			slog.String("artwork_id", artwork.ID.String()),
			slog.String("error", err.Error()),
		)
		sent = false
	}

	if artwork.AuthorEmail != nil {
		err := s.mail.Send(ctx, *artwork.AuthorEmail,
			"Your VALART submission was received", authorBody(artwork))
		if err != nil {
			s.log.WarnContext(ctx, "author confirmation failed",
				slog.String("artwork_id", artwork.ID.String()),
				slog.String("error", err.Error()),
			)
			sent = false
		}
	}

	return sent
}

// trimOrNil trims whitespace. Returns nil if the value is absent or empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
