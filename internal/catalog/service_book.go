package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hondana-dev/hondana/internal/platform/apperr"
	"github.com/hondana-dev/hondana/internal/platform/dberr"
)

// BookCreateInput is the plain input value for creating a book. Status
// defaults to UNPUBLISHED when empty.
type BookCreateInput struct {
	Title   string
	Price   int
	Authors []AuthorInput
	Status  PublicationStatus
}

// BookUpdateInput is the plain input value for replacing a book's basic
// info (title, price, author set).
type BookUpdateInput struct {
	Title   string
	Price   int
	Authors []AuthorInput
}

// CreateBook resolves the author inputs, creates the book, establishes the
// join rows, and reloads the complete aggregate, all in one transaction.
//
// It fails with VALIDATION_ERROR before any store access on invalid fields,
// and with CONFLICT when a book with the same title and exactly the same
// author set already exists.
func (service *Service) CreateBook(ctx context.Context, input BookCreateInput) (*Book, error) {
	price, err := NewPrice(input.Price)
	if err != nil {
		return nil, err
	}
	if err := validateBookInput(input.Title, input.Authors); err != nil {
		return nil, err
	}

	var created *Book
	err = service.uow.Run(ctx, func(s Stores) error {
		authors, err := resolveAuthors(ctx, s.Authors, input.Authors)
		if err != nil {
			return err
		}

		book, err := NewBook(input.Title, price, authors, input.Status)
		if err != nil {
			return err
		}

		exists, err := s.Books.ExistsByTitleAndAuthorIDs(ctx, book.Title, book.AuthorIDs())
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict("A book with the same title and authors already exists")
		}

		persisted, err := s.Books.Create(ctx, book)
		if err != nil {
			return err
		}

		if err := s.Relations.CreateRelations(ctx, persisted.ID, book.AuthorIDs()); err != nil {
			return err
		}

		created, err = s.Books.FindByIDWithAuthors(ctx, persisted.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("book_created",
		slog.Int64("book_id", created.ID),
		slog.String("title", created.Title),
	)
	return created, nil
}

// GetBook loads the complete aggregate.
//
// It fails with NOT_FOUND for an unknown id.
func (service *Service) GetBook(ctx context.Context, id int64) (*Book, error) {
	var book *Book

	err := service.uow.Run(ctx, func(s Stores) error {
		var err error
		book, err = service.loadBook(ctx, s, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

// UpdateBook replaces a book's basic info and author associations. The join
// rows are fully replaced (delete + re-create), not diffed.
//
// It fails with NOT_FOUND for an unknown id and with CONFLICT when the
// (title, author set) pair collides with a different book.
func (service *Service) UpdateBook(ctx context.Context, id int64, input BookUpdateInput) (*Book, error) {
	price, err := NewPrice(input.Price)
	if err != nil {
		return nil, err
	}
	if err := validateBookInput(input.Title, input.Authors); err != nil {
		return nil, err
	}

	var updated *Book
	err = service.uow.Run(ctx, func(s Stores) error {
		existing, err := service.loadBook(ctx, s, id)
		if err != nil {
			return err
		}

		authors, err := resolveAuthors(ctx, s.Authors, input.Authors)
		if err != nil {
			return err
		}

		replacement, err := existing.UpdateBasicInfo(input.Title, price, authors)
		if err != nil {
			return err
		}

		exists, err := s.Books.ExistsByTitleAndAuthorIDsExcluding(ctx, replacement.Title, replacement.AuthorIDs(), id)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict("A book with the same title and authors already exists")
		}

		if _, err := s.Books.UpdateBasicInfo(ctx, id, replacement.Title, replacement.Price); err != nil {
			return err
		}

		// Full replace of the join rows, not a diff.
		if err := s.Relations.DeleteByBookID(ctx, id); err != nil {
			return err
		}
		if err := s.Relations.CreateRelations(ctx, id, replacement.AuthorIDs()); err != nil {
			return err
		}

		updated, err = s.Books.FindByIDWithAuthors(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("book_updated", slog.Int64("book_id", updated.ID))
	return updated, nil
}

// PublishBook unconditionally moves a book to PUBLISHED. Publishing an
// already-published book succeeds and still issues the write (idempotent).
//
// It fails with NOT_FOUND for an unknown id.
func (service *Service) PublishBook(ctx context.Context, id int64) (*Book, error) {
	var published *Book

	err := service.uow.Run(ctx, func(s Stores) error {
		existing, err := service.loadBook(ctx, s, id)
		if err != nil {
			return err
		}

		upgraded := existing.Publish()

		if _, err := s.Books.UpdatePublicationStatus(ctx, id, upgraded.PublicationStatus); err != nil {
			return err
		}

		published, err = s.Books.FindByIDWithAuthors(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("book_published", slog.Int64("book_id", published.ID))
	return published, nil
}

// UpdatePublicationStatus applies an explicit status change.
//
// It fails with NOT_FOUND for an unknown id and with
// BUSINESS_RULE_VIOLATION when the one-way transition rule forbids the
// requested change.
func (service *Service) UpdatePublicationStatus(ctx context.Context, id int64, status PublicationStatus) (*Book, error) {
	var updated *Book

	err := service.uow.Run(ctx, func(s Stores) error {
		existing, err := service.loadBook(ctx, s, id)
		if err != nil {
			return err
		}

		replacement, err := existing.UpdatePublicationStatus(status)
		if err != nil {
			return err
		}

		if _, err := s.Books.UpdatePublicationStatus(ctx, id, replacement.PublicationStatus); err != nil {
			return err
		}

		updated, err = s.Books.FindByIDWithAuthors(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("book_status_updated",
		slog.Int64("book_id", updated.ID),
		slog.String("status", string(updated.PublicationStatus)),
	)
	return updated, nil
}

// loadBook fetches the aggregate, translating a storage miss into a
// book-specific NOT_FOUND.
func (service *Service) loadBook(ctx context.Context, s Stores, id int64) (*Book, error) {
	book, err := s.Books.FindByIDWithAuthors(ctx, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Book")
		}
		return nil, err
	}
	return book, nil
}

// validateBookInput runs the field checks that must fail before any store
// access: title, non-empty author list, and every author entry.
func validateBookInput(title string, authors []AuthorInput) error {
	if err := validateBookFields(title, len(authors)); err != nil {
		return err
	}

	for _, a := range authors {
		if err := validateAuthorFields(a.Name, a.BirthDate); err != nil {
			return err
		}
	}
	return nil
}
