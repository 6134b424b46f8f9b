package catalog

import (
	"strings"
	"time"

	"github.com/hondana-dev/hondana/internal/platform/validate"
)

// Author represents the writer of one or more books.
//
// An Author is immutable: edits go through [Author.Update], which returns a
// new validated instance. ID is 0 until the storage layer assigns one.
//
// Business identity is the (Name, BirthDate) pair: two authors are the same
// real-world person if and only if both fields match exactly.
type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
}

// Field names for validation
const (
	FieldName              = "name"
	FieldBirthDate         = "birth_date"
	FieldTitle             = "title"
	FieldPrice             = "price"
	FieldAuthors           = "authors"
	FieldPublicationStatus = "publication_status"
)

// maxNameLen caps author names and book titles.
const maxNameLen = 255

// NewAuthor validates name and birth date and returns a transient Author
// (ID 0). The name is trimmed; the birth date must be strictly before today.
func NewAuthor(name string, birthDate time.Time) (Author, error) {
	if err := validateAuthorFields(name, birthDate); err != nil {
		return Author{}, err
	}

	return Author{
		Name:      strings.TrimSpace(name),
		BirthDate: birthDate,
	}, nil
}

// Update re-validates the new fields and returns a new Author preserving
// the receiver's identity.
func (a Author) Update(newName string, newBirthDate time.Time) (Author, error) {
	if err := validateAuthorFields(newName, newBirthDate); err != nil {
		return Author{}, err
	}

	return Author{
		ID:        a.ID,
		Name:      strings.TrimSpace(newName),
		BirthDate: newBirthDate,
	}, nil
}

// SameIdentity reports whether the author's business key matches the given
// (name, birth date) pair at date granularity.
func (a Author) SameIdentity(name string, birthDate time.Time) bool {
	return a.Name == strings.TrimSpace(name) && sameDate(a.BirthDate, birthDate)
}

func validateAuthorFields(name string, birthDate time.Time) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, name).
		MaxLen(FieldName, name, maxNameLen).
		PastDate(FieldBirthDate, birthDate)
	return validator.Err()
}

// sameDate compares two timestamps at date granularity.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
