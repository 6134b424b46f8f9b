package catalog

import (
	"fmt"
	"strings"

	"github.com/hondana-dev/hondana/internal/platform/apperr"
	"github.com/hondana-dev/hondana/internal/platform/validate"
	"github.com/hondana-dev/hondana/pkg/slice"
)

// Book is the aggregate root of the catalog: a title with a price, a
// publication status, and at least one author.
//
// A Book is immutable: every mutation returns a new validated copy. Basic
// info (title, price, authors) and publication status are independently
// mutable subsets of state. Duplicate identity is (title, exact author-ID
// set), order-independent.
type Book struct {
	ID                int64             `json:"id"`
	Title             string            `json:"title"`
	Price             Price             `json:"price"`
	PublicationStatus PublicationStatus `json:"publication_status"`
	Authors           []Author          `json:"authors"`
}

// NewBook validates title and authors and returns a transient Book (ID 0).
// The title is trimmed; at least one author is required.
func NewBook(title string, price Price, authors []Author, status PublicationStatus) (Book, error) {
	if err := validateBookFields(title, len(authors)); err != nil {
		return Book{}, err
	}

	if status == "" {
		status = StatusUnpublished
	}

	return Book{
		Title:             strings.TrimSpace(title),
		Price:             price,
		PublicationStatus: status,
		Authors:           authors,
	}, nil
}

// UpdateBasicInfo returns a new Book with the given title, price and
// authors, preserving the receiver's ID and publication status.
func (b Book) UpdateBasicInfo(newTitle string, newPrice Price, newAuthors []Author) (Book, error) {
	if err := validateBookFields(newTitle, len(newAuthors)); err != nil {
		return Book{}, err
	}

	return Book{
		ID:                b.ID,
		Title:             strings.TrimSpace(newTitle),
		Price:             newPrice,
		PublicationStatus: b.PublicationStatus,
		Authors:           newAuthors,
	}, nil
}

// UpdatePublicationStatus returns a copy with the new status, or a
// BUSINESS_RULE_VIOLATION when the one-way transition rule forbids it.
func (b Book) UpdatePublicationStatus(newStatus PublicationStatus) (Book, error) {
	if !b.PublicationStatus.CanTransitionTo(newStatus) {
		return Book{}, apperr.Unprocessable(fmt.Sprintf(
			"A published book cannot be reverted to unpublished (current: %s, requested: %s)",
			b.PublicationStatus, newStatus,
		))
	}

	updated := b
	updated.PublicationStatus = newStatus
	return updated, nil
}

// Publish returns a copy with the status upgraded to PUBLISHED. It never
// fails: publishing an already-published book is a no-op.
func (b Book) Publish() Book {
	published := b
	published.PublicationStatus = b.PublicationStatus.Publish()
	return published
}

// AuthorIDs projects the ordered author list to its identifiers.
func (b Book) AuthorIDs() []int64 {
	return authorIDs(b.Authors)
}

func authorIDs(authors []Author) []int64 {
	return slice.Map(authors, func(a Author) int64 { return a.ID })
}

func validateBookFields(title string, authorCount int) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, title).
		MaxLen(FieldTitle, title, maxNameLen).
		Custom(FieldAuthors, authorCount == 0, "At least one author is required")
	return validator.Err()
}
