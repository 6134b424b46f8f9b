package catalog

import (
	"github.com/hondana-dev/hondana/internal/platform/validate"
)

// PublicationStatus is the two-state publication lifecycle of a book.
//
// The transition rule is one-way: a book can move from UNPUBLISHED to
// PUBLISHED, but never back.
type PublicationStatus string

const (
	StatusUnpublished PublicationStatus = "UNPUBLISHED"
	StatusPublished   PublicationStatus = "PUBLISHED"
)

// ParsePublicationStatus validates a wire value into a [PublicationStatus].
func ParsePublicationStatus(value string) (PublicationStatus, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldPublicationStatus, value, string(StatusUnpublished), string(StatusPublished))

	if err := validator.Err(); err != nil {
		return "", err
	}

	return PublicationStatus(value), nil
}

// CanTransitionTo reports whether the status may change to target.
// From UNPUBLISHED any target is allowed; from PUBLISHED only PUBLISHED.
func (s PublicationStatus) CanTransitionTo(target PublicationStatus) bool {
	if s == StatusPublished {
		return target == StatusPublished
	}
	return true
}

// Publish returns PUBLISHED unconditionally. It is the idempotent
// forward-only shortcut with no error path, distinct from the general
// transition check.
func (s PublicationStatus) Publish() PublicationStatus {
	return StatusPublished
}

// Storage codes for publication_status (smallint column).
const (
	statusCodeUnpublished int16 = 0
	statusCodePublished   int16 = 1
)

// code returns the smallint storage representation.
func (s PublicationStatus) code() int16 {
	if s == StatusPublished {
		return statusCodePublished
	}
	return statusCodeUnpublished
}

// statusFromCode maps a smallint storage value back to a status.
func statusFromCode(code int16) PublicationStatus {
	if code == statusCodePublished {
		return StatusPublished
	}
	return StatusUnpublished
}
