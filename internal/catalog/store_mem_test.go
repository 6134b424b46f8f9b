package catalog

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/hondana-dev/hondana/internal/platform/dberr"
)

// memStore holds the shared in-memory state behind the fake repositories
// used by the service tests in place of PostgreSQL. Books are stored without
// their author lists; the join state lives in relations, same as the real
// storage layout.
type memStore struct {
	nextAuthorID int64
	nextBookID   int64

	authors   map[int64]Author
	books     map[int64]Book
	relations map[int64][]int64

	// statusWrites counts UpdatePublicationStatus calls so tests can assert
	// that publish flows always issue the write.
	statusWrites int
}

func newMemStore() *memStore {
	return &memStore{
		authors:   make(map[int64]Author),
		books:     make(map[int64]Book),
		relations: make(map[int64][]int64),
	}
}

func (m *memStore) stores() Stores {
	return Stores{
		Authors:   &memAuthorRepo{state: m},
		Books:     &memBookRepo{state: m},
		Relations: &memRelationRepo{state: m},
	}
}

// memUnitOfWork runs fn directly against the shared store. The service
// tests do not exercise rollback semantics.
type memUnitOfWork struct {
	store *memStore
}

func (u *memUnitOfWork) Run(_ context.Context, fn func(s Stores) error) error {
	return fn(u.store.stores())
}

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	store := newMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(&memUnitOfWork{store: store}, logger), store
}

// # AuthorRepository

type memAuthorRepo struct {
	state *memStore
}

func (r *memAuthorRepo) Create(_ context.Context, author Author) (Author, error) {
	r.state.nextAuthorID++
	author.ID = r.state.nextAuthorID
	r.state.authors[author.ID] = author
	return author, nil
}

func (r *memAuthorRepo) FindByID(_ context.Context, id int64) (*Author, error) {
	author, ok := r.state.authors[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &author, nil
}

func (r *memAuthorRepo) FindByNameAndBirthDate(_ context.Context, name string, birthDate time.Time) (*Author, error) {
	for _, author := range r.state.authors {
		if author.SameIdentity(name, birthDate) {
			found := author
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memAuthorRepo) Update(_ context.Context, id int64, name string, birthDate time.Time) (Author, error) {
	author, ok := r.state.authors[id]
	if !ok {
		return Author{}, dberr.ErrNotFound
	}
	author.Name = name
	author.BirthDate = birthDate
	r.state.authors[id] = author
	return author, nil
}

func (r *memAuthorRepo) FindBookIDsByAuthorID(_ context.Context, authorID int64) ([]int64, error) {
	var bookIDs []int64
	for bookID, authorIDs := range r.state.relations {
		for _, id := range authorIDs {
			if id == authorID {
				bookIDs = append(bookIDs, bookID)
				break
			}
		}
	}
	sort.Slice(bookIDs, func(i, j int) bool { return bookIDs[i] < bookIDs[j] })
	return bookIDs, nil
}

// # BookRepository

type memBookRepo struct {
	state *memStore
}

func (r *memBookRepo) Create(_ context.Context, book Book) (Book, error) {
	r.state.nextBookID++
	book.ID = r.state.nextBookID
	book.Authors = nil
	r.state.books[book.ID] = book
	return book, nil
}

func (r *memBookRepo) FindByIDWithAuthors(_ context.Context, id int64) (*Book, error) {
	book, ok := r.state.books[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}

	for _, authorID := range sortedDistinct(r.state.relations[id]) {
		book.Authors = append(book.Authors, r.state.authors[authorID])
	}
	return &book, nil
}

func (r *memBookRepo) UpdateBasicInfo(_ context.Context, id int64, title string, price Price) (Book, error) {
	book, ok := r.state.books[id]
	if !ok {
		return Book{}, dberr.ErrNotFound
	}
	book.Title = title
	book.Price = price
	r.state.books[id] = book
	return book, nil
}

func (r *memBookRepo) UpdatePublicationStatus(_ context.Context, id int64, status PublicationStatus) (Book, error) {
	r.state.statusWrites++
	book, ok := r.state.books[id]
	if !ok {
		return Book{}, dberr.ErrNotFound
	}
	book.PublicationStatus = status
	r.state.books[id] = book
	return book, nil
}

func (r *memBookRepo) FindByIDs(_ context.Context, ids []int64) ([]Book, error) {
	var books []Book
	for _, id := range sortedDistinct(ids) {
		if book, ok := r.state.books[id]; ok {
			books = append(books, book)
		}
	}
	return books, nil
}

func (r *memBookRepo) ExistsByTitleAndAuthorIDs(_ context.Context, title string, authorIDs []int64) (bool, error) {
	return r.existsByIdentity(title, authorIDs, 0), nil
}

func (r *memBookRepo) ExistsByTitleAndAuthorIDsExcluding(_ context.Context, title string, authorIDs []int64, excludeBookID int64) (bool, error) {
	return r.existsByIdentity(title, authorIDs, excludeBookID), nil
}

func (r *memBookRepo) existsByIdentity(title string, authorIDs []int64, excludeBookID int64) bool {
	want := sortedDistinct(authorIDs)
	for id, book := range r.state.books {
		if id == excludeBookID || book.Title != title {
			continue
		}
		if equalIDs(sortedDistinct(r.state.relations[id]), want) {
			return true
		}
	}
	return false
}

// # BookAuthorRepository

type memRelationRepo struct {
	state *memStore
}

func (r *memRelationRepo) CreateRelations(_ context.Context, bookID int64, authorIDs []int64) error {
	r.state.relations[bookID] = sortedDistinct(append(r.state.relations[bookID], authorIDs...))
	return nil
}

func (r *memRelationRepo) DeleteByBookID(_ context.Context, bookID int64) error {
	delete(r.state.relations, bookID)
	return nil
}

// # Helpers

func sortedDistinct(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	var out []int64
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
