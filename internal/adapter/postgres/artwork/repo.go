// Package artwork implements the moderation store on PostgreSQL: an
// append-only artworks table whose records are written as single atomic
// inserts and promoted to published only by an out-of-band moderator
// action (cmd/promote).
package artwork

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mmrmagno/valart/internal/adapter/postgres"
	"github.com/mmrmagno/valart/internal/domain"
)

const table = "artworks"

var columns = []string{
	"id", "name", "author", "author_email", "art",
	"grid_width", "grid_height", "status", "submitted_at",
}

// qb builds PostgreSQL-flavored ($1, $2, ...) queries.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides artwork persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates an artwork repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// artworkRow mirrors one artworks table row for scany.
type artworkRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Author      string    `db:"author"`
	AuthorEmail *string   `db:"author_email"`
	Art         string    `db:"art"`
	GridWidth   int       `db:"grid_width"`
	GridHeight  int       `db:"grid_height"`
	Status      string    `db:"status"`
	SubmittedAt time.Time `db:"submitted_at"`
}

// Append writes one submission as a single INSERT. Id and submission
// timestamp are assigned here when unset; the id is never reused and the
// record starts pending regardless of the caller's Status. Concurrent
// appends cannot collide: ids are random UUIDs and each record is one
// statement, so a reader never observes a half-written record.
func (r *Repo) Append(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error) {
	stored := *artwork
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.SubmittedAt.IsZero() {
		stored.SubmittedAt = time.Now().UTC()
	}
	stored.Status = domain.StatusPending

	sql, args, err := qb.Insert(table).
		Columns(columns...).
		Values(
			stored.ID, stored.Name, stored.Author, stored.AuthorEmail, stored.Art,
			stored.GridSize.Width, stored.GridSize.Height, string(stored.Status), stored.SubmittedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return nil, mapError(err, stored.ID)
	}

	return &stored, nil
}

// ListPublished returns a slice of published artworks in stable insertion
// order (submission time, id as tie-breaker). Returns an empty slice (not
// nil) when the window is past the end.
func (r *Repo) ListPublished(ctx context.Context, limit, offset int) ([]domain.Artwork, error) {
	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": string(domain.StatusPublished)}).
		OrderBy("submitted_at ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []artworkRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list published: %w", err)
	}

	artworks := make([]domain.Artwork, len(rows))
	for i, row := range rows {
		artworks[i] = toDomain(row)
	}

	return artworks, nil
}

// CountPublished returns the number of published artworks.
func (r *Repo) CountPublished(ctx context.Context) (int, error) {
	sql, args, err := qb.Select("count(*)").
		From(table).
		Where(squirrel.Eq{"status": string(domain.StatusPublished)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count published: %w", err)
	}

	return count, nil
}

// GetPublished returns one published artwork by id. Pending records are
// not visible through this method: both an unknown id and a not-yet
// promoted record yield domain.ErrNotFound.
func (r *Repo) GetPublished(ctx context.Context, id uuid.UUID) (*domain.Artwork, error) {
	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "status": string(domain.StatusPublished)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row artworkRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		return nil, mapError(err, id)
	}

	artwork := toDomain(row)
	return &artwork, nil
}

// toDomain converts a table row into a domain.Artwork.
func toDomain(row artworkRow) domain.Artwork {
	return domain.Artwork{
		ID:          row.ID,
		Name:        row.Name,
		Author:      row.Author,
		AuthorEmail: row.AuthorEmail,
		Art:         row.Art,
		GridSize:    domain.Dimensions{Width: row.GridWidth, Height: row.GridHeight},
		Status:      domain.ArtworkStatus(row.Status),
		SubmittedAt: row.SubmittedAt,
	}
}

// mapError converts pgx/pgconn/scany errors into domain errors.
func mapError(err error, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("artwork %s: %w", id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("artwork %s: %w", id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("artwork %s: %w", id, domain.ErrAlreadyExists)
		case "23514": // check_violation
			return fmt.Errorf("artwork %s: %w", id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("artwork %s: %w", id, err)
}
