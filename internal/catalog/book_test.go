package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hondana-dev/hondana/internal/platform/apperr"
)

func testAuthors(t *testing.T, ids ...int64) []Author {
	t.Helper()
	authors := make([]Author, 0, len(ids))
	for _, id := range ids {
		author, err := NewAuthor("Author", birthDate(1950, time.January, 1))
		require.NoError(t, err)
		author.ID = id
		authors = append(authors, author)
	}
	return authors
}

/*
TestNewBook verifies construction with a trimmed title and the UNPUBLISHED
default status.
*/
func TestNewBook(t *testing.T) {
	book, err := NewBook("  Kokoro  ", ZeroPrice, testAuthors(t, 1), "")
	require.NoError(t, err)

	assert.Equal(t, "Kokoro", book.Title)
	assert.Equal(t, StatusUnpublished, book.PublicationStatus)
	assert.Zero(t, book.ID)

	published, err := NewBook("Kokoro", ZeroPrice, testAuthors(t, 1), StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, published.PublicationStatus)
}

/*
TestNewBook_InvalidFields verifies title and author-list validation.
*/
func TestNewBook_InvalidFields(t *testing.T) {
	cases := []struct {
		name    string
		title   string
		authors []Author
	}{
		{"empty_title", "", testAuthors(t, 1)},
		{"blank_title", "   ", testAuthors(t, 1)},
		{"no_authors", "Kokoro", nil},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := NewBook(testCase.title, ZeroPrice, testCase.authors, "")
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

/*
TestUpdateBasicInfo verifies that basic-info updates preserve identity and
publication status.
*/
func TestUpdateBasicInfo(t *testing.T) {
	book, err := NewBook("Kokoro", ZeroPrice, testAuthors(t, 1), StatusPublished)
	require.NoError(t, err)
	book.ID = 7

	updated, err := book.UpdateBasicInfo(" Botchan ", Price(1200), testAuthors(t, 2, 3))
	require.NoError(t, err)

	assert.Equal(t, int64(7), updated.ID)
	assert.Equal(t, "Botchan", updated.Title)
	assert.Equal(t, Price(1200), updated.Price)
	assert.Equal(t, StatusPublished, updated.PublicationStatus)
	assert.Equal(t, []int64{2, 3}, updated.AuthorIDs())
}

/*
TestBookUpdatePublicationStatus verifies the transition rule enforcement.
*/
func TestBookUpdatePublicationStatus(t *testing.T) {
	book, err := NewBook("Kokoro", ZeroPrice, testAuthors(t, 1), StatusUnpublished)
	require.NoError(t, err)

	published, err := book.UpdatePublicationStatus(StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, published.PublicationStatus)

	// Reverting a published book is a business rule violation.
	_, err = published.UpdatePublicationStatus(StatusUnpublished)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "BUSINESS_RULE_VIOLATION", appError.Code)

	// Re-asserting PUBLISHED is allowed.
	again, err := published.UpdatePublicationStatus(StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, again.PublicationStatus)
}

/*
TestBookPublish verifies that Publish never fails and is idempotent.
*/
func TestBookPublish(t *testing.T) {
	book, err := NewBook("Kokoro", ZeroPrice, testAuthors(t, 1), StatusUnpublished)
	require.NoError(t, err)

	published := book.Publish()
	assert.Equal(t, StatusPublished, published.PublicationStatus)
	assert.Equal(t, StatusUnpublished, book.PublicationStatus)

	assert.Equal(t, StatusPublished, published.Publish().PublicationStatus)
}

/*
TestAuthorIDs verifies the ordered projection of the author list.
*/
func TestAuthorIDs(t *testing.T) {
	book, err := NewBook("Kokoro", ZeroPrice, testAuthors(t, 5, 3, 9), "")
	require.NoError(t, err)

	assert.Equal(t, []int64{5, 3, 9}, book.AuthorIDs())
}
