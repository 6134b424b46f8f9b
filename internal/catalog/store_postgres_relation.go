package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hondana-dev/hondana/internal/platform/database/schema"
)

// relationRepository implements the [BookAuthorRepository] interface using
// pgx. Inserts are pipelined through a [pgx.Batch] to bound round-trips for
// multi-author books.
type relationRepository struct {
	db querier
}

// CreateRelations links the book to every author id. The insert is
// idempotent per pair: a duplicate author occurrence in one request maps to
// a single join row.
func (repository *relationRepository) CreateRelations(ctx context.Context, bookID int64, authorIDs []int64) error {
	if len(authorIDs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, schema.BookAuthors.Table, schema.BookAuthors.BookID, schema.BookAuthors.AuthorID)

	batch := &pgx.Batch{}
	for _, authorID := range authorIDs {
		batch.Queue(query, bookID, authorID)
	}

	result := repository.db.SendBatch(ctx, batch)
	if err := result.Close(); err != nil {
		return fmt.Errorf("postgres: failed to batch insert book authors: %w", err)
	}

	return nil
}

// DeleteByBookID clears all author links for the book. Update flows call it
// before re-creating the full replacement set.
func (repository *relationRepository) DeleteByBookID(ctx context.Context, bookID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BookAuthors.Table, schema.BookAuthors.BookID)

	if _, err := repository.db.Exec(ctx, query, bookID); err != nil {
		return fmt.Errorf("postgres: failed to clear book authors: %w", err)
	}

	return nil
}
