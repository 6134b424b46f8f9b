package catalog

import (
	"context"
	"time"
)

// AuthorInput is the plain input value for an author reference in a create
// or update request.
type AuthorInput struct {
	Name      string
	BirthDate time.Time
}

// resolveAuthors maps each input to a persisted Author, reusing an existing
// author when one with the identical (name, birth date) pair already exists,
// otherwise validating and persisting a new one. The output preserves input
// order and length.
//
// Lookups are per-occurrence: a pair repeated within one batch is looked up
// again rather than cached. Inside one transaction the second lookup sees
// the first insert; across transactions the unique index on
// authors(name, birth_date) rejects the race loser.
func resolveAuthors(ctx context.Context, authors AuthorRepository, inputs []AuthorInput) ([]Author, error) {
	resolved := make([]Author, 0, len(inputs))

	for _, input := range inputs {
		existing, err := authors.FindByNameAndBirthDate(ctx, input.Name, input.BirthDate)
		if err != nil {
			return nil, err
		}

		if existing != nil {
			resolved = append(resolved, *existing)
			continue
		}

		author, err := NewAuthor(input.Name, input.BirthDate)
		if err != nil {
			return nil, err
		}

		created, err := authors.Create(ctx, author)
		if err != nil {
			return nil, err
		}

		resolved = append(resolved, created)
	}

	return resolved, nil
}
