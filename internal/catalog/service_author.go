package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hondana-dev/hondana/internal/platform/apperr"
	"github.com/hondana-dev/hondana/internal/platform/dberr"
)

// AuthorBooks pairs an author with the books reachable through the join
// relation. Books carries summaries (no nested author lists) and may be
// empty.
type AuthorBooks struct {
	Author Author
	Books  []Book
}

// CreateAuthor persists a new author.
//
// It fails with CONFLICT when an author with the same (name, birth date)
// already exists, and with VALIDATION_ERROR on invalid fields before any
// store access.
func (service *Service) CreateAuthor(ctx context.Context, input AuthorInput) (*Author, error) {
	author, err := NewAuthor(input.Name, input.BirthDate)
	if err != nil {
		return nil, err
	}

	var created Author
	err = service.uow.Run(ctx, func(s Stores) error {
		existing, err := s.Authors.FindByNameAndBirthDate(ctx, author.Name, author.BirthDate)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.Conflict("An author with the same name and birth date already exists")
		}

		created, err = s.Authors.Create(ctx, author)
		return err
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("author_created",
		slog.Int64("author_id", created.ID),
		slog.String("name", created.Name),
	)
	return &created, nil
}

// UpdateAuthor replaces an author's name and birth date.
//
// It fails with NOT_FOUND for an unknown id and with CONFLICT when a
// different author already holds the target (name, birth date).
func (service *Service) UpdateAuthor(ctx context.Context, id int64, input AuthorInput) (*Author, error) {
	// Field validation before any store access.
	candidate, err := NewAuthor(input.Name, input.BirthDate)
	if err != nil {
		return nil, err
	}

	var updated Author
	err = service.uow.Run(ctx, func(s Stores) error {
		existing, err := s.Authors.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, dberr.ErrNotFound) {
				return apperr.NotFound("Author")
			}
			return err
		}

		duplicate, err := s.Authors.FindByNameAndBirthDate(ctx, candidate.Name, candidate.BirthDate)
		if err != nil {
			return err
		}
		if duplicate != nil && duplicate.ID != existing.ID {
			return apperr.Conflict("An author with the same name and birth date already exists")
		}

		replacement, err := existing.Update(candidate.Name, candidate.BirthDate)
		if err != nil {
			return err
		}

		updated, err = s.Authors.Update(ctx, replacement.ID, replacement.Name, replacement.BirthDate)
		return err
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("author_updated", slog.Int64("author_id", updated.ID))
	return &updated, nil
}

// GetAuthorBooks returns the author together with the (possibly empty) list
// of books reachable via the join relation.
//
// It fails with NOT_FOUND for an unknown author id.
func (service *Service) GetAuthorBooks(ctx context.Context, authorID int64) (*AuthorBooks, error) {
	var result AuthorBooks

	err := service.uow.Run(ctx, func(s Stores) error {
		author, err := s.Authors.FindByID(ctx, authorID)
		if err != nil {
			if errors.Is(err, dberr.ErrNotFound) {
				return apperr.NotFound("Author")
			}
			return err
		}
		result.Author = *author

		bookIDs, err := s.Authors.FindBookIDsByAuthorID(ctx, authorID)
		if err != nil {
			return err
		}
		if len(bookIDs) == 0 {
			return nil
		}

		result.Books, err = s.Books.FindByIDs(ctx, bookIDs)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
