package submission

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mmrmagno/valart/internal/domain"
)

const (
	maxNameLen = 100
	maxArtLen  = 10000
)

// nameCharset limits author and creation names to alphanumerics,
// whitespace, hyphen, and underscore.
var nameCharset = regexp.MustCompile(`^[A-Za-z0-9\s_-]+$`)

// SubmitInput holds a candidate submission.
type SubmitInput struct {
	AuthorName   string
	CreationName string
	Art          string
	GridWidth    int
	GridHeight   int
	AuthorEmail  *string
}

// Validate checks all fields and collects all errors; there is no partial
// acceptance. Grid bounds are the storage-wide 1–100, independent of the
// tighter drawing UI presets.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName("authorName", i.AuthorName)...)
	errs = append(errs, validateName("creationName", i.CreationName)...)

	art := strings.TrimSpace(i.Art)
	if art == "" {
		errs = append(errs, domain.FieldError{Field: "art", Message: "required"})
	} else if utf8.RuneCountInString(i.Art) > maxArtLen {
		errs = append(errs, domain.FieldError{Field: "art", Message: "max 10000 characters"})
	}

	if i.GridWidth < domain.MinGridSide || i.GridWidth > domain.MaxGridSide {
		errs = append(errs, domain.FieldError{Field: "gridSize.width", Message: "must be between 1 and 100"})
	}
	if i.GridHeight < domain.MinGridSide || i.GridHeight > domain.MaxGridSide {
		errs = append(errs, domain.FieldError{Field: "gridSize.height", Message: "must be between 1 and 100"})
	}

	if i.AuthorEmail != nil && *i.AuthorEmail != "" {
		if _, err := mail.ParseAddress(*i.AuthorEmail); err != nil {
			errs = append(errs, domain.FieldError{Field: "authorEmail", Message: "invalid email address"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(field, value string) []domain.FieldError {
	var errs []domain.FieldError

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		return errs
	}
	if len(trimmed) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: field, Message: "max 100 characters"})
	}
	if !nameCharset.MatchString(trimmed) {
		errs = append(errs, domain.FieldError{
			Field:   field,
			Message: "only letters, digits, whitespace, hyphen and underscore allowed",
		})
	}

	return errs
}
