//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	artworkrepo "github.com/mmrmagno/valart/internal/adapter/postgres/artwork"
	"github.com/mmrmagno/valart/internal/adapter/postgres/testhelper"
	"github.com/mmrmagno/valart/internal/config"
	"github.com/mmrmagno/valart/internal/service/gallery"
	"github.com/mmrmagno/valart/internal/service/submission"
	"github.com/mmrmagno/valart/internal/transport/middleware"
	"github.com/mmrmagno/valart/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// recordingMailer captures outbound mail instead of sending it.
type recordingMailer struct {
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *recordingMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) (*testServer, *recordingMailer) {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	artworks := artworkrepo.New(pool)

	mail := &recordingMailer{}
	submissionSvc := submission.NewService(logger, artworks, mail, "admin@valart.example", 0)
	gallerySvc := gallery.NewService(logger, artworks, gallery.DefaultPageSize)

	router := rest.NewRouter(rest.Handlers{
		Submit:  rest.NewSubmitHandler(submissionSvc, logger),
		Gallery: rest.NewGalleryHandler(gallerySvc, logger),
		Health:  rest.NewHealthHandler(pool, "test-version"),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         86400,
		}),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}, mail
}

// submitArtwork POSTs a submission and returns status + decoded body.
func (ts *testServer) submitArtwork(t *testing.T, payload map[string]any) (int, map[string]any) {
	t.Helper()

	jsonBody, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+"/api/submit", "application/json", bytes.NewReader(jsonBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// galleryPage GETs one gallery page and returns status + decoded body.
func (ts *testServer) galleryPage(t *testing.T, page int) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(fmt.Sprintf("%s/api/gallery?page=%d", ts.URL, page))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// downloadArtwork GETs the download artifact and returns status, headers,
// and raw body bytes.
func (ts *testServer) downloadArtwork(t *testing.T, id string) (int, http.Header, []byte) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + "/api/gallery/" + id + "/download")
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, raw
}

// promote publishes a pending artwork directly in the database, standing
// in for the out-of-band moderation step.
func (ts *testServer) promote(t *testing.T, id string) {
	t.Helper()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	testhelper.Promote(t, ts.Pool, parsed)
}
