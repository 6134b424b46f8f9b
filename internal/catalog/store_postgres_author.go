package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hondana-dev/hondana/internal/platform/database/schema"
	"github.com/hondana-dev/hondana/internal/platform/dberr"
)

// authorRepository implements the [AuthorRepository] interface using pgx.
type authorRepository struct {
	db querier
}

// Create persists a transient author and returns it with the assigned id.
// A unique violation on (name, birth_date) surfaces as [dberr.ErrConflict].
func (repository *authorRepository) Create(ctx context.Context, author Author) (Author, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s, %s
	`,
		schema.Authors.Table, schema.Authors.Name, schema.Authors.BirthDate,
		schema.Authors.ID, schema.Authors.Name, schema.Authors.BirthDate,
	)

	var created Author
	err := repository.db.QueryRow(ctx, query, author.Name, author.BirthDate).
		Scan(&created.ID, &created.Name, &created.BirthDate)
	if err != nil {
		return Author{}, dberr.Wrap(err, "create_author")
	}

	return created, nil
}

// FindByID returns the author or [dberr.ErrNotFound].
func (repository *authorRepository) FindByID(ctx context.Context, id int64) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Authors.ID, schema.Authors.Name, schema.Authors.BirthDate,
		schema.Authors.Table,
		schema.Authors.ID,
	)

	var author Author
	err := repository.db.QueryRow(ctx, query, id).
		Scan(&author.ID, &author.Name, &author.BirthDate)
	if err != nil {
		return nil, dberr.Wrap(err, "find_author_by_id")
	}

	return &author, nil
}

// FindByNameAndBirthDate looks up an author by business identity. Absence is
// not an error: it returns (nil, nil) when no author matches.
func (repository *authorRepository) FindByNameAndBirthDate(ctx context.Context, name string, birthDate time.Time) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.Authors.ID, schema.Authors.Name, schema.Authors.BirthDate,
		schema.Authors.Table,
		schema.Authors.Name, schema.Authors.BirthDate,
	)

	var author Author
	err := repository.db.QueryRow(ctx, query, name, birthDate).
		Scan(&author.ID, &author.Name, &author.BirthDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dberr.Wrap(err, "find_author_by_identity")
	}

	return &author, nil
}

// Update replaces name and birth date, returning the stored row. A missing
// id surfaces as [dberr.ErrNotFound], an identity collision as
// [dberr.ErrConflict].
func (repository *authorRepository) Update(ctx context.Context, id int64, name string, birthDate time.Time) (Author, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = NOW()
		WHERE %s = $3
		RETURNING %s, %s, %s
	`,
		schema.Authors.Table,
		schema.Authors.Name, schema.Authors.BirthDate, schema.Authors.UpdatedAt,
		schema.Authors.ID,
		schema.Authors.ID, schema.Authors.Name, schema.Authors.BirthDate,
	)

	var updated Author
	err := repository.db.QueryRow(ctx, query, name, birthDate, id).
		Scan(&updated.ID, &updated.Name, &updated.BirthDate)
	if err != nil {
		return Author{}, dberr.Wrap(err, "update_author")
	}

	return updated, nil
}

// FindBookIDsByAuthorID returns the ids of all books linked to the author
// through the join table, ordered for deterministic listings.
func (repository *authorRepository) FindBookIDsByAuthorID(ctx context.Context, authorID int64) ([]int64, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s
	`,
		schema.BookAuthors.BookID,
		schema.BookAuthors.Table,
		schema.BookAuthors.AuthorID,
		schema.BookAuthors.BookID,
	)

	rows, err := repository.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list book ids by author: %w", err)
	}
	defer rows.Close()

	var bookIDs []int64
	for rows.Next() {
		var bookID int64
		if err := rows.Scan(&bookID); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan book id: %w", err)
		}
		bookIDs = append(bookIDs, bookID)
	}

	return bookIDs, rows.Err()
}
