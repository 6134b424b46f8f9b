// Package catalog implements the book/author catalog domain: the validated
// entities (Author, Book, Price, PublicationStatus) and the use cases that
// keep them consistent across multi-step writes.
//
// # Architecture
//
// Every use case is a single unit of work with the shape load, validate,
// mutate, persist, reload and return. Checks run in the order: not-found,
// then duplicate, then mutation; the first violation wins.
// Field validation happens in the domain constructors before any store
// access.
package catalog

import (
	"log/slog"
)

// Service exposes the catalog use cases. It holds no persistent state; all
// reads and writes go through the [UnitOfWork].
type Service struct {
	uow    UnitOfWork
	logger *slog.Logger
}

func NewService(uow UnitOfWork, logger *slog.Logger) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}
