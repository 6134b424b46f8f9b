package schema

// BooksTable represents the 'books' table
type BooksTable struct {
	Table             string
	ID                string
	Title             string
	Price             string
	PublicationStatus string
	CreatedAt         string
	UpdatedAt         string
}

// Books is the schema definition for books
var Books = BooksTable{
	Table:             "books",
	ID:                "id",
	Title:             "title",
	Price:             "price",
	PublicationStatus: "publication_status",
	CreatedAt:         "created_at",
	UpdatedAt:         "updated_at",
}

func (t BooksTable) Columns() []string {
	return []string{t.ID, t.Title, t.Price, t.PublicationStatus, t.CreatedAt, t.UpdatedAt}
}
