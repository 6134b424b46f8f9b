package schema

// AuthorsTable represents the 'authors' table
type AuthorsTable struct {
	Table     string
	ID        string
	Name      string
	BirthDate string
	CreatedAt string
	UpdatedAt string
}

// Authors is the schema definition for authors
var Authors = AuthorsTable{
	Table:     "authors",
	ID:        "id",
	Name:      "name",
	BirthDate: "birth_date",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t AuthorsTable) Columns() []string {
	return []string{t.ID, t.Name, t.BirthDate, t.CreatedAt, t.UpdatedAt}
}
