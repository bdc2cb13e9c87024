package books

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/bookstore-go/auth"
	"github.com/user/bookstore-go/config"
)

// newTestRouter mounts the book handlers without auth middleware so the
// handlers themselves are under test.
func newTestRouter(t *testing.T) (chi.Router, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock pool")
	t.Cleanup(mock.Close)

	r := chi.NewRouter()
	r.Route("/books", func(r chi.Router) {
		NewBookHandlers(NewBookService(mock)).RegisterRoutes(r)
	})
	return r, mock
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const testBookJSON = `{"name":"N","author":"A","published_year":2000,"book_summary":"S"}`

func TestHandleCreateBook(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("INSERT INTO books").
		WithArgs("N", "A", 2000, "S").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	w := doRequest(r, http.MethodPost, "/books/", testBookJSON)

	assert.Equal(t, http.StatusOK, w.Code)
	var book Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, 1, book.ID)
	assert.Equal(t, "N", book.Name)
	assert.Equal(t, "A", book.Author)
	assert.Equal(t, 2000, book.PublishedYear)
	assert.Equal(t, "S", book.BookSummary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleCreateBookRejectsBadBodies(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing fields", `{"name":"N"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/books/", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleGetBook(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT id, name, author, published_year, book_summary FROM books").
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "author", "published_year", "book_summary"}).
			AddRow(1, "N", "A", 2000, "S"))

	w := doRequest(r, http.MethodGet, "/books/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var book Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, 1, book.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleGetBookNotFound(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT id, name, author, published_year, book_summary FROM books").
		WithArgs(999).
		WillReturnError(pgx.ErrNoRows)

	w := doRequest(r, http.MethodGet, "/books/999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Book not found"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleGetBookInvalidID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/books/not-a-number", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleListBooks(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT id, name, author, published_year, book_summary FROM books").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "author", "published_year", "book_summary"}).
			AddRow(1, "Book One", "Author One", 2020, "Summary One").
			AddRow(2, "Book Two", "Author Two", 2021, "Summary Two"))

	w := doRequest(r, http.MethodGet, "/books/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var result []Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleListBooksEmpty(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT id, name, author, published_year, book_summary FROM books").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "author", "published_year", "book_summary"}))

	w := doRequest(r, http.MethodGet, "/books/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleUpdateBook(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("UPDATE books").
		WithArgs("N2", "A2", 2001, "S2", 1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "author", "published_year", "book_summary"}).
			AddRow(1, "N2", "A2", 2001, "S2"))

	w := doRequest(r, http.MethodPut, "/books/1", `{"name":"N2","author":"A2","published_year":2001,"book_summary":"S2"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var book Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, "N2", book.Name)
	assert.Equal(t, 2001, book.PublishedYear)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleUpdateBookNotFound(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("UPDATE books").
		WithArgs("N", "A", 2000, "S", 999).
		WillReturnError(pgx.ErrNoRows)

	w := doRequest(r, http.MethodPut, "/books/999", testBookJSON)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Book not found"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleDeleteBook(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec("DELETE FROM books").
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	w := doRequest(r, http.MethodDelete, "/books/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Book deleted successfully"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleDeleteBookNotFound(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec("DELETE FROM books").
		WithArgs(999).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	w := doRequest(r, http.MethodDelete, "/books/999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Book not found"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestProtectedRoutesRejectUnauthenticated mounts the routes behind the auth
// middleware, the way main wires them, and checks every route without
// credentials gets the 403 rejection.
func TestProtectedRoutesRejectUnauthenticated(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	tokens := auth.NewTokenService(config.AuthConfig{
		JWTSecret:      "test-secret",
		AccessTokenTTL: 30 * time.Minute,
	})
	authService := auth.NewAuthService(mock, tokens)

	r := chi.NewRouter()
	r.Route("/books", func(r chi.Router) {
		r.Use(auth.RequireUser(authService))
		NewBookHandlers(NewBookService(mock)).RegisterRoutes(r)
	})

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/books/"},
		{http.MethodPost, "/books/"},
		{http.MethodGet, "/books/1"},
		{http.MethodPut, "/books/1"},
		{http.MethodDelete, "/books/1"},
	}

	for _, route := range routes {
		t.Run("no auth "+route.method+" "+route.path, func(t *testing.T) {
			w := doRequest(r, route.method, route.path, testBookJSON)
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
		t.Run("malformed auth "+route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, strings.NewReader(testBookJSON))
			req.Header.Set("Authorization", "NotBearer abc")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
