package books

// BookRequest is the payload for creating or fully replacing a book.
type BookRequest struct {
	Name          string `json:"name" validate:"required" example:"The Great Gatsby"`
	Author        string `json:"author" validate:"required" example:"F. Scott Fitzgerald"`
	PublishedYear int    `json:"published_year" validate:"required" example:"1925"`
	BookSummary   string `json:"book_summary" validate:"required" example:"A story of decadence and excess."`
}

// MessageResponse is the confirmation body for deletions.
type MessageResponse struct {
	Message string `json:"message" example:"Book deleted successfully"`
}
