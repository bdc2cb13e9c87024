package books

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/user/bookstore-go/apperror"
	"github.com/user/bookstore-go/auth"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// BookHandlers provides HTTP handlers for the book resource.
type BookHandlers struct {
	service *BookService
}

// NewBookHandlers creates new BookHandlers.
func NewBookHandlers(service *BookService) *BookHandlers {
	return &BookHandlers{service: service}
}

// RegisterRoutes mounts the book routes on a router that already carries the
// auth middleware.
func (h *BookHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListBooks())
	r.Post("/", h.HandleCreateBook())
	r.Get("/{bookID}", h.HandleGetBook())
	r.Put("/{bookID}", h.HandleUpdateBook())
	r.Delete("/{bookID}", h.HandleDeleteBook())
}

// bookIDParam extracts and parses the {bookID} URL parameter.
func bookIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "bookID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewBadRequestError("invalid book id", err)
	}
	return id, nil
}

// HandleListBooks godoc
// @Summary List all books
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {array} books.Book
// @Failure 403 {object} apperror.ErrorResponse "Not authenticated"
// @Router /books/ [get]
func (h *BookHandlers) HandleListBooks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.service.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, result)
	}
}

// HandleCreateBook godoc
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookBody body books.BookRequest true "Book fields"
// @Success 200 {object} books.Book
// @Failure 400 {object} apperror.ErrorResponse "Invalid body"
// @Failure 403 {object} apperror.ErrorResponse "Not authenticated"
// @Router /books/ [post]
func (h *BookHandlers) HandleCreateBook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := validate.Struct(req); err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("name, author, published_year, and book_summary are required", err))
			return
		}

		book, err := h.service.Create(r.Context(), req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, book)
	}
}

// HandleGetBook godoc
// @Summary Get a book by id
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param bookID path int true "Book ID"
// @Success 200 {object} books.Book
// @Failure 403 {object} apperror.ErrorResponse "Not authenticated"
// @Failure 404 {object} apperror.ErrorResponse "Book not found"
// @Router /books/{bookID} [get]
func (h *BookHandlers) HandleGetBook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bookIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		book, err := h.service.Get(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, book)
	}
}

// HandleUpdateBook godoc
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookID path int true "Book ID"
// @Param bookBody body books.BookRequest true "Book fields"
// @Success 200 {object} books.Book
// @Failure 400 {object} apperror.ErrorResponse "Invalid body"
// @Failure 403 {object} apperror.ErrorResponse "Not authenticated"
// @Failure 404 {object} apperror.ErrorResponse "Book not found"
// @Router /books/{bookID} [put]
func (h *BookHandlers) HandleUpdateBook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bookIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req BookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := validate.Struct(req); err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("name, author, published_year, and book_summary are required", err))
			return
		}

		book, err := h.service.Update(r.Context(), id, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, book)
	}
}

// HandleDeleteBook godoc
// @Summary Delete a book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param bookID path int true "Book ID"
// @Success 200 {object} books.MessageResponse "Book deleted successfully"
// @Failure 403 {object} apperror.ErrorResponse "Not authenticated"
// @Failure 404 {object} apperror.ErrorResponse "Book not found"
// @Router /books/{bookID} [delete]
func (h *BookHandlers) HandleDeleteBook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bookIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if err := h.service.Delete(r.Context(), id); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Book deleted successfully"})
	}
}
