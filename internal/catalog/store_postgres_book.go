package catalog

import (
	"context"
	"fmt"

	"github.com/hondana-dev/hondana/internal/platform/database/schema"
	"github.com/hondana-dev/hondana/internal/platform/dberr"
)

// bookRepository implements the [BookRepository] interface using pgx.
type bookRepository struct {
	db querier
}

// Create persists the book's own row (title, price, status). Author links
// are established separately through the relation repository.
func (repository *bookRepository) Create(ctx context.Context, book Book) (Book, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.Books.Table, schema.Books.Title, schema.Books.Price, schema.Books.PublicationStatus,
		schema.Books.ID,
	)

	created := book
	err := repository.db.QueryRow(ctx, query, book.Title, book.Price.Int(), book.PublicationStatus.code()).
		Scan(&created.ID)
	if err != nil {
		return Book{}, dberr.Wrap(err, "create_book")
	}

	return created, nil
}

// FindByIDWithAuthors hydrates the full aggregate: the book row plus its
// authors ordered by author id. It returns [dberr.ErrNotFound] for an
// unknown id.
func (repository *bookRepository) FindByIDWithAuthors(ctx context.Context, id int64) (*Book, error) {
	book, err := repository.findRow(ctx, id)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s
		FROM %s a
		JOIN %s ba ON ba.%s = a.%s
		WHERE ba.%s = $1
		ORDER BY a.%s
	`,
		schema.Authors.ID, schema.Authors.Name, schema.Authors.BirthDate,
		schema.Authors.Table,
		schema.BookAuthors.Table, schema.BookAuthors.AuthorID, schema.Authors.ID,
		schema.BookAuthors.BookID,
		schema.Authors.ID,
	)

	rows, err := repository.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list book authors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var author Author
		if err := rows.Scan(&author.ID, &author.Name, &author.BirthDate); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan book author: %w", err)
		}
		book.Authors = append(book.Authors, author)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read book authors: %w", err)
	}

	return book, nil
}

// UpdateBasicInfo writes the new title and price, returning the stored row
// without authors. A missing id surfaces as [dberr.ErrNotFound].
func (repository *bookRepository) UpdateBasicInfo(ctx context.Context, id int64, title string, price Price) (Book, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = NOW()
		WHERE %s = $3
		RETURNING %s, %s, %s, %s
	`,
		schema.Books.Table,
		schema.Books.Title, schema.Books.Price, schema.Books.UpdatedAt,
		schema.Books.ID,
		schema.Books.ID, schema.Books.Title, schema.Books.Price, schema.Books.PublicationStatus,
	)

	return repository.scanRow(repository.db.QueryRow(ctx, query, title, price.Int(), id), "update_book_basic_info")
}

// UpdatePublicationStatus writes the new status unconditionally. Transition
// legality is decided by the domain layer before this call.
func (repository *bookRepository) UpdatePublicationStatus(ctx context.Context, id int64, status PublicationStatus) (Book, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = NOW()
		WHERE %s = $2
		RETURNING %s, %s, %s, %s
	`,
		schema.Books.Table,
		schema.Books.PublicationStatus, schema.Books.UpdatedAt,
		schema.Books.ID,
		schema.Books.ID, schema.Books.Title, schema.Books.Price, schema.Books.PublicationStatus,
	)

	return repository.scanRow(repository.db.QueryRow(ctx, query, status.code(), id), "update_book_status")
}

// FindByIDs returns book summaries (no author lists) for the given ids,
// ordered by id. Unknown ids are silently skipped.
func (repository *bookRepository) FindByIDs(ctx context.Context, ids []int64) ([]Book, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s
	`,
		schema.Books.ID, schema.Books.Title, schema.Books.Price, schema.Books.PublicationStatus,
		schema.Books.Table,
		schema.Books.ID,
		schema.Books.ID,
	)

	rows, err := repository.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list books by ids: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var (
			book       Book
			price      int
			statusCode int16
		)
		if err := rows.Scan(&book.ID, &book.Title, &price, &statusCode); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan book: %w", err)
		}
		book.Price = Price(price)
		book.PublicationStatus = statusFromCode(statusCode)
		books = append(books, book)
	}

	return books, rows.Err()
}

// ExistsByTitleAndAuthorIDs reports whether any book carries the given title
// together with exactly the given author-id set. The comparison is
// order-independent: both sides are aggregated into sorted distinct arrays.
func (repository *bookRepository) ExistsByTitleAndAuthorIDs(ctx context.Context, title string, authorIDs []int64) (bool, error) {
	return repository.existsByIdentity(ctx, title, authorIDs, nil)
}

// ExistsByTitleAndAuthorIDsExcluding is [ExistsByTitleAndAuthorIDs] ignoring
// one book id, used by update flows to let a book keep its own identity.
func (repository *bookRepository) ExistsByTitleAndAuthorIDsExcluding(ctx context.Context, title string, authorIDs []int64, excludeBookID int64) (bool, error) {
	return repository.existsByIdentity(ctx, title, authorIDs, &excludeBookID)
}

func (repository *bookRepository) existsByIdentity(ctx context.Context, title string, authorIDs []int64, excludeBookID *int64) (bool, error) {
	// Exact set equality: the book's aggregated author ids must equal the
	// candidate ids, both sorted and deduplicated.
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1
			FROM %s b
			WHERE b.%s = $1
			AND (
				SELECT array_agg(ba.%s ORDER BY ba.%s)
				FROM %s ba
				WHERE ba.%s = b.%s
			) = (SELECT array_agg(DISTINCT v ORDER BY v) FROM unnest($2::bigint[]) AS v)
	`,
		schema.Books.Table,
		schema.Books.Title,
		schema.BookAuthors.AuthorID, schema.BookAuthors.AuthorID,
		schema.BookAuthors.Table,
		schema.BookAuthors.BookID, schema.Books.ID,
	)

	args := []any{title, authorIDs}
	if excludeBookID != nil {
		query += fmt.Sprintf(" AND b.%s <> $3", schema.Books.ID)
		args = append(args, *excludeBookID)
	}
	query += ")"

	var exists bool
	if err := repository.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to check book identity: %w", err)
	}

	return exists, nil
}

// findRow loads the book's own row without authors.
func (repository *bookRepository) findRow(ctx context.Context, id int64) (*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Books.ID, schema.Books.Title, schema.Books.Price, schema.Books.PublicationStatus,
		schema.Books.Table,
		schema.Books.ID,
	)

	book, err := repository.scanRow(repository.db.QueryRow(ctx, query, id), "find_book_by_id")
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// scanRow maps one book row (id, title, price, status code) into the domain
// type, wrapping storage errors.
func (repository *bookRepository) scanRow(row interface{ Scan(dest ...any) error }, action string) (Book, error) {
	var (
		book       Book
		price      int
		statusCode int16
	)
	if err := row.Scan(&book.ID, &book.Title, &price, &statusCode); err != nil {
		return Book{}, dberr.Wrap(err, action)
	}

	book.Price = Price(price)
	book.PublicationStatus = statusFromCode(statusCode)
	return book, nil
}
