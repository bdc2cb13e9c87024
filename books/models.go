// Package books implements the book catalog resource: model, CRUD service,
// and HTTP handlers. Every route here sits behind the auth middleware; any
// authenticated user may read or write any book.
package books

// Book represents a catalog entry.
type Book struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Author        string `json:"author"`
	PublishedYear int    `json:"published_year"`
	BookSummary   string `json:"book_summary"`
}
