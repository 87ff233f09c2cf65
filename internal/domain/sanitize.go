package domain

import (
	"strings"
	"unicode"
)

// SanitizeText prepares a free-text field for storage and notification
// rendering:
//   - trims leading/trailing whitespace
//   - compresses runs of spaces and tabs into one space
//   - drops control characters (newlines included)
//
// Case and punctuation are preserved. Art text is NOT passed through
// here — its newlines are part of the canonical rendering.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		switch {
		case r == ' ' || r == '\t':
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
		case unicode.IsControl(r):
			continue
		default:
			prevSpace = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeArt normalizes art text for storage: line endings become '\n'
// and a single trailing newline is dropped so the stored form matches the
// canonical rendering exactly.
func SanitizeArt(art string) string {
	art = strings.ReplaceAll(art, "\r\n", "\n")
	return strings.TrimSuffix(art, "\n")
}
