package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	service, _ := newTestService(t)
	router := chi.NewRouter()
	NewHandler(service).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	request := httptest.NewRequest(method, path, &buf)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeData(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Data
}

/*
TestHTTP_CreateAuthor verifies the author creation endpoint, including the
YYYY-MM-DD wire date format.
*/
func TestHTTP_CreateAuthor(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/authors", map[string]any{
		"name":       "Natsume Soseki",
		"birth_date": "1867-02-09",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	data := decodeData(t, recorder)
	assert.Equal(t, "Natsume Soseki", data["name"])
	assert.Equal(t, "1867-02-09", data["birth_date"])
	assert.NotZero(t, data["id"])
}

/*
TestHTTP_CreateAuthor_BadDate verifies the 400 on a malformed birth date.
*/
func TestHTTP_CreateAuthor_BadDate(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/authors", map[string]any{
		"name":       "Natsume Soseki",
		"birth_date": "09/02/1867",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestHTTP_CreateAuthor_Duplicate verifies the 409 response shape.
*/
func TestHTTP_CreateAuthor_Duplicate(t *testing.T) {
	router := newTestRouter(t)
	payload := map[string]any{"name": "Natsume Soseki", "birth_date": "1867-02-09"}

	recorder := doJSON(t, router, http.MethodPost, "/authors", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/authors", payload)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "CONFLICT", envelope.Code)
}

/*
TestHTTP_BookLifecycle verifies create, read, update, status change, and
publish over the wire.
*/
func TestHTTP_BookLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Create
	recorder := doJSON(t, router, http.MethodPost, "/books", map[string]any{
		"title": "Kokoro",
		"price": 1200,
		"authors": []map[string]any{
			{"name": "Natsume Soseki", "birth_date": "1867-02-09"},
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	data := decodeData(t, recorder)
	assert.Equal(t, "UNPUBLISHED", data["publication_status"])
	bookID := int64(data["id"].(float64))

	// Read
	recorder = doJSON(t, router, http.MethodGet, fmt.Sprintf("/books/%d", bookID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	data = decodeData(t, recorder)
	assert.Equal(t, "Kokoro", data["title"])
	assert.Len(t, data["authors"], 1)

	// Update basic info
	recorder = doJSON(t, router, http.MethodPut, fmt.Sprintf("/books/%d", bookID), map[string]any{
		"title": "Botchan",
		"price": 900,
		"authors": []map[string]any{
			{"name": "Natsume Soseki", "birth_date": "1867-02-09"},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	data = decodeData(t, recorder)
	assert.Equal(t, "Botchan", data["title"])

	// Publish
	recorder = doJSON(t, router, http.MethodPost, fmt.Sprintf("/books/%d/publish", bookID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	data = decodeData(t, recorder)
	assert.Equal(t, "PUBLISHED", data["publication_status"])

	// Downgrade attempt via the status endpoint
	recorder = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/books/%d/publication-status", bookID), map[string]any{
		"publication_status": "UNPUBLISHED",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

/*
TestHTTP_GetBook_BadID verifies the 400 on a non-numeric path id.
*/
func TestHTTP_GetBook_BadID(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/books/abc", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestHTTP_GetBook_NotFound verifies the 404 envelope.
*/
func TestHTTP_GetBook_NotFound(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/books/999", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestHTTP_GetAuthorBooks verifies the listing endpoint, including the empty
array for an author without books.
*/
func TestHTTP_GetAuthorBooks(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/authors", map[string]any{
		"name":       "Natsume Soseki",
		"birth_date": "1867-02-09",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	authorID := int64(decodeData(t, recorder)["id"].(float64))

	recorder = doJSON(t, router, http.MethodGet, fmt.Sprintf("/authors/%d/books", authorID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	data := decodeData(t, recorder)
	books, ok := data["books"].([]any)
	require.True(t, ok, "books must serialize as an array")
	assert.Empty(t, books)
}
