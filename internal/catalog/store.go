package catalog

import (
	"context"
	"time"
)

// AuthorRepository is the storage contract for authors.
//
// FindByNameAndBirthDate returns (nil, nil) when no author matches. Absence
// is not an error for identity lookups.
type AuthorRepository interface {
	Create(ctx context.Context, a Author) (Author, error)
	FindByID(ctx context.Context, id int64) (*Author, error)
	FindByNameAndBirthDate(ctx context.Context, name string, birthDate time.Time) (*Author, error)
	Update(ctx context.Context, id int64, name string, birthDate time.Time) (Author, error)
	FindBookIDsByAuthorID(ctx context.Context, authorID int64) ([]int64, error)
}

// BookRepository is the storage contract for books.
//
// FindByIDWithAuthors hydrates the full aggregate; FindByIDs returns books
// without their author lists (summaries).
type BookRepository interface {
	Create(ctx context.Context, b Book) (Book, error)
	FindByIDWithAuthors(ctx context.Context, id int64) (*Book, error)
	UpdateBasicInfo(ctx context.Context, id int64, title string, price Price) (Book, error)
	UpdatePublicationStatus(ctx context.Context, id int64, status PublicationStatus) (Book, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Book, error)
	ExistsByTitleAndAuthorIDs(ctx context.Context, title string, authorIDs []int64) (bool, error)
	ExistsByTitleAndAuthorIDsExcluding(ctx context.Context, title string, authorIDs []int64, excludeBookID int64) (bool, error)
}

// BookAuthorRepository is the storage contract for the book↔author join
// relation. It is the single source of truth for which authors belong to
// which book after the initial create.
type BookAuthorRepository interface {
	CreateRelations(ctx context.Context, bookID int64, authorIDs []int64) error
	DeleteByBookID(ctx context.Context, bookID int64) error
}

// Stores bundles the three repositories bound to one transaction.
type Stores struct {
	Authors   AuthorRepository
	Books     BookRepository
	Relations BookAuthorRepository
}

// UnitOfWork executes fn against a [Stores] bundle whose writes either all
// commit or all roll back. Every use case runs inside exactly one call.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(s Stores) error) error
}
