package submission

import (
	"fmt"
	"html"

	"github.com/mmrmagno/valart/internal/domain"
)

// Mail bodies embed the art verbatim inside a <pre> block so the glyph
// grid keeps its shape in a monospace rendering. Everything user-supplied
// is HTML-escaped on the way in.

const preStyle = `background: #1a1a1a; color: #ece8e1; padding: 15px; border-radius: 4px; line-height: 1;`

func adminBody(a *domain.Artwork) string {
	email := "Not provided"
	if a.AuthorEmail != nil {
		email = html.EscapeString(*a.AuthorEmail)
	}

	return fmt.Sprintf(
		`<h1>New ASCII Art Submission</h1>
<p><strong>Creation:</strong> %s</p>
<p><strong>Author:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<pre style="%s">%s</pre>
<p><strong>Grid size:</strong> %dx%d</p>`,
		html.EscapeString(a.Name),
		html.EscapeString(a.Author),
		email,
		preStyle,
		html.EscapeString(a.Art),
		a.GridSize.Width, a.GridSize.Height,
	)
}

func authorBody(a *domain.Artwork) string {
	return fmt.Sprintf(
		`<h2>Hi %s,</h2>
<p>Thank you for submitting your ASCII art creation <strong>%q</strong> to VALART!</p>
<p>We've received your submission and it will be reviewed shortly.</p>
<h3>Your creation:</h3>
<pre style="%s">%s</pre>
<p>Grid size: %d x %d</p>
<p>- The VALART Team</p>`,
		html.EscapeString(a.Author),
		html.EscapeString(a.Name),
		preStyle,
		html.EscapeString(a.Art),
		a.GridSize.Width, a.GridSize.Height,
	)
}
