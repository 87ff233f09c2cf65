package submission

import (
	"errors"
	"strings"
	"testing"

	"github.com/mmrmagno/valart/internal/domain"
)

func validInput() SubmitInput {
	return SubmitInput{
		AuthorName:   "Ada",
		CreationName: "Lovelace",
		Art:          "██\n░░",
		GridWidth:    2,
		GridHeight:   2,
	}
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}

	fields := make(map[string]string, len(vErr.Errors))
	for _, fe := range vErr.Errors {
		fields[fe.Field] = fe.Message
	}
	return fields
}

func TestSubmitInput_Validate_OK(t *testing.T) {
	if err := validInput().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubmitInput_Validate_NameBoundaries(t *testing.T) {
	in := validInput()
	in.AuthorName = strings.Repeat("a", 100)
	in.CreationName = strings.Repeat("b", 100)
	if err := in.Validate(); err != nil {
		t.Fatalf("100-char names must be accepted: %v", err)
	}

	in.AuthorName = strings.Repeat("a", 101)
	err := in.Validate()
	if err == nil {
		t.Fatal("101-char author name must be rejected")
	}
	if _, ok := fieldMessages(t, err)["authorName"]; !ok {
		t.Error("error must name the authorName field")
	}
}

func TestSubmitInput_Validate_NameCharset(t *testing.T) {
	ok := []string{"Ada Lovelace", "player_1", "north-west", "A1 b2\tC3"}
	for _, name := range ok {
		in := validInput()
		in.AuthorName = name
		if err := in.Validate(); err != nil {
			t.Errorf("name %q should be accepted: %v", name, err)
		}
	}

	bad := []string{"<script>", "a;b", "née", "100%"}
	for _, name := range bad {
		in := validInput()
		in.CreationName = name
		if in.Validate() == nil {
			t.Errorf("name %q should be rejected", name)
		}
	}
}

func TestSubmitInput_Validate_Art(t *testing.T) {
	in := validInput()
	in.Art = "   \n  "
	err := in.Validate()
	if err == nil {
		t.Fatal("whitespace-only art must be rejected")
	}
	if got := fieldMessages(t, err)["art"]; got != "required" {
		t.Errorf("art message: got %q, want %q", got, "required")
	}

	in = validInput()
	in.Art = strings.Repeat("█", 10000)
	if err := in.Validate(); err != nil {
		t.Fatalf("10000-glyph art must be accepted: %v", err)
	}

	in.Art = strings.Repeat("█", 10001)
	if in.Validate() == nil {
		t.Fatal("10001-glyph art must be rejected")
	}
}

func TestSubmitInput_Validate_GridBounds(t *testing.T) {
	in := validInput()
	in.GridWidth, in.GridHeight = 100, 100
	if err := in.Validate(); err != nil {
		t.Fatalf("100x100 must be accepted: %v", err)
	}

	in.GridWidth = 101
	err := in.Validate()
	if err == nil {
		t.Fatal("width 101 must be rejected")
	}
	if _, ok := fieldMessages(t, err)["gridSize.width"]; !ok {
		t.Error("error must name gridSize.width")
	}

	in = validInput()
	in.GridHeight = 0
	if in.Validate() == nil {
		t.Fatal("height 0 must be rejected")
	}
}

func TestSubmitInput_Validate_Email(t *testing.T) {
	in := validInput()
	if err := in.Validate(); err != nil {
		t.Fatalf("absent email must be valid: %v", err)
	}

	bad := "not-an-email"
	in.AuthorEmail = &bad
	err := in.Validate()
	if err == nil {
		t.Fatal("malformed email must be rejected")
	}
	if _, ok := fieldMessages(t, err)["authorEmail"]; !ok {
		t.Error("error must name authorEmail")
	}

	good := "ada@example.com"
	in.AuthorEmail = &good
	if err := in.Validate(); err != nil {
		t.Fatalf("valid email must be accepted: %v", err)
	}
}

func TestSubmitInput_Validate_CollectsAllViolations(t *testing.T) {
	bad := "nope"
	in := SubmitInput{
		AuthorName:   "",
		CreationName: "<b>",
		Art:          "",
		GridWidth:    0,
		GridHeight:   200,
		AuthorEmail:  &bad,
	}

	err := in.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := fieldMessages(t, err)
	for _, want := range []string{"authorName", "creationName", "art", "gridSize.width", "gridSize.height", "authorEmail"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("missing violation for field %q", want)
		}
	}
}
