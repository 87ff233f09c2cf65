// Command promote publishes a pending gallery submission.
// It is the moderation step: the server only appends pending records,
// and nothing becomes visible until a moderator runs this.
//
// Usage:
//
//	promote --id=3f2a...-uuid
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	rawID := flag.String("id", "", "id of the pending artwork to publish")
	flag.Parse()

	if *rawID == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --id=<artwork-uuid>")
		os.Exit(1)
	}

	id, err := uuid.Parse(*rawID)
	if err != nil {
		log.Fatalf("invalid artwork id %q: %v", *rawID, err)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx,
		"UPDATE artworks SET status = 'published' WHERE id = $1 AND status = 'pending'",
		id,
	)
	if err != nil {
		log.Fatalf("update status: %v", err)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("No pending artwork with id %s, or already published.\n", id)
		os.Exit(1)
	}

	fmt.Printf("Artwork %s published.\n", id)
}
