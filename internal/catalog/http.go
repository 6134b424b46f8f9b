package catalog

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hondana-dev/hondana/internal/platform/constants"
	"github.com/hondana-dev/hondana/internal/platform/validate"
	"github.com/hondana-dev/hondana/pkg/slice"
)

// Handler exposes the catalog use cases over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the author and book subtrees on the given router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/authors", func(authorRoute chi.Router) {
		authorRoute.Post("/", handler.createAuthor)
		authorRoute.Put("/{id}", handler.updateAuthor)
		authorRoute.Get("/{id}/books", handler.getAuthorBooks)
	})

	router.Route("/books", func(bookRoute chi.Router) {
		bookRoute.Post("/", handler.createBook)
		bookRoute.Get("/{id}", handler.getBook)
		bookRoute.Put("/{id}", handler.updateBook)
		bookRoute.Patch("/{id}/publication-status", handler.updatePublicationStatus)
		bookRoute.Post("/{id}/publish", handler.publishBook)
	})
}

// # Wire Types

// authorPayload is the author shape accepted in create and update bodies,
// standalone or nested inside a book payload. Dates travel as YYYY-MM-DD.
type authorPayload struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

// toInput parses the wire date into the domain input form.
func (payload authorPayload) toInput() (AuthorInput, error) {
	birthDate, err := time.Parse(constants.DateLayout, payload.BirthDate)
	if err != nil {
		return AuthorInput{}, validate.RequiredError(FieldBirthDate, "Must be a valid date in YYYY-MM-DD format")
	}

	return AuthorInput{Name: payload.Name, BirthDate: birthDate}, nil
}

type bookCreatePayload struct {
	Title             string          `json:"title"`
	Price             int             `json:"price"`
	PublicationStatus string          `json:"publication_status,omitempty"`
	Authors           []authorPayload `json:"authors"`
}

type bookUpdatePayload struct {
	Title   string          `json:"title"`
	Price   int             `json:"price"`
	Authors []authorPayload `json:"authors"`
}

type statusPayload struct {
	PublicationStatus string `json:"publication_status"`
}

// authorResponse is the author wire representation.
type authorResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

// bookResponse is the full book aggregate wire representation.
type bookResponse struct {
	ID                int64            `json:"id"`
	Title             string           `json:"title"`
	Price             int              `json:"price"`
	PublicationStatus string           `json:"publication_status"`
	Authors           []authorResponse `json:"authors"`
}

// bookSummaryResponse is the book representation without the author list,
// used in per-author listings.
type bookSummaryResponse struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Price             int    `json:"price"`
	PublicationStatus string `json:"publication_status"`
}

// authorBooksResponse pairs an author with their book summaries.
type authorBooksResponse struct {
	Author authorResponse        `json:"author"`
	Books  []bookSummaryResponse `json:"books"`
}

func newAuthorResponse(author Author) authorResponse {
	return authorResponse{
		ID:        author.ID,
		Name:      author.Name,
		BirthDate: author.BirthDate.Format(constants.DateLayout),
	}
}

func newBookResponse(book Book) bookResponse {
	return bookResponse{
		ID:                book.ID,
		Title:             book.Title,
		Price:             book.Price.Int(),
		PublicationStatus: string(book.PublicationStatus),
		Authors:           slice.Map(book.Authors, newAuthorResponse),
	}
}

func newBookSummaryResponse(book Book) bookSummaryResponse {
	return bookSummaryResponse{
		ID:                book.ID,
		Title:             book.Title,
		Price:             book.Price.Int(),
		PublicationStatus: string(book.PublicationStatus),
	}
}

// parseAuthorInputs converts the nested wire authors, failing on the first
// malformed date.
func parseAuthorInputs(payloads []authorPayload) ([]AuthorInput, error) {
	inputs := make([]AuthorInput, 0, len(payloads))
	for _, payload := range payloads {
		input, err := payload.toInput()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}
