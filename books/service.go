package books

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/user/bookstore-go/apperror"
	"github.com/user/bookstore-go/db"
)

const msgBookNotFound = "Book not found"

// BookService provides CRUD operations over the books table. The database
// dependency is the db.Querier interface so tests can inject a mock pool.
type BookService struct {
	db db.Querier
}

// NewBookService creates a new BookService.
func NewBookService(pool db.Querier) *BookService {
	return &BookService{db: pool}
}

// Create inserts a new book and returns it with its assigned id.
func (s *BookService) Create(ctx context.Context, req BookRequest) (*Book, error) {
	book := &Book{
		Name:          req.Name,
		Author:        req.Author,
		PublishedYear: req.PublishedYear,
		BookSummary:   req.BookSummary,
	}
	query := `INSERT INTO books (name, author, published_year, book_summary)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`
	err := s.db.QueryRow(ctx, query, req.Name, req.Author, req.PublishedYear, req.BookSummary).Scan(&book.ID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create book", err)
	}
	return book, nil
}

// Get retrieves a book by id.
func (s *BookService) Get(ctx context.Context, id int) (*Book, error) {
	var book Book
	query := `SELECT id, name, author, published_year, book_summary FROM books WHERE id = $1`
	err := s.db.QueryRow(ctx, query, id).Scan(&book.ID, &book.Name, &book.Author, &book.PublishedYear, &book.BookSummary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(msgBookNotFound, nil)
		}
		return nil, apperror.NewDatabaseError("failed to get book", err)
	}
	return &book, nil
}

// List returns all books. The result is never nil so an empty catalog
// serializes as [].
func (s *BookService) List(ctx context.Context) ([]Book, error) {
	query := `SELECT id, name, author, published_year, book_summary FROM books ORDER BY id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list books", err)
	}
	defer rows.Close()

	result := []Book{}
	for rows.Next() {
		var book Book
		if err := rows.Scan(&book.ID, &book.Name, &book.Author, &book.PublishedYear, &book.BookSummary); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan book row", err)
		}
		result = append(result, book)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to iterate books", err)
	}
	return result, nil
}

// Update replaces all writable fields of a book and returns the stored row.
func (s *BookService) Update(ctx context.Context, id int, req BookRequest) (*Book, error) {
	var book Book
	query := `UPDATE books
	          SET name = $1, author = $2, published_year = $3, book_summary = $4
	          WHERE id = $5
	          RETURNING id, name, author, published_year, book_summary`
	err := s.db.QueryRow(ctx, query, req.Name, req.Author, req.PublishedYear, req.BookSummary, id).
		Scan(&book.ID, &book.Name, &book.Author, &book.PublishedYear, &book.BookSummary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(msgBookNotFound, nil)
		}
		return nil, apperror.NewDatabaseError("failed to update book", err)
	}
	return &book, nil
}

// Delete removes a book by id.
func (s *BookService) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM books WHERE id = $1`
	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError(msgBookNotFound, nil)
	}
	return nil
}
