// HTTP handlers for the auth endpoints, plus the shared response helpers the
// other handler packages use.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/user/bookstore-go/apperror"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleSignup godoc
// @Summary User signup
// @Description Registers a new user with an email and password.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupBody body auth.SignupRequest true "Signup credentials"
// @Success 200 {object} auth.MessageResponse "User created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Invalid body or email already registered"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /signup [post]
func (h *Handlers) HandleSignup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := validate.Struct(req); err != nil {
			WriteError(w, r, apperror.NewValidationError("email and password are required", err))
			return
		}

		if err := h.service.Signup(r.Context(), req); err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User created successfully"})
	}
}

// HandleLogin godoc
// @Summary User login
// @Description Authenticates a user and returns a bearer access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Login credentials"
// @Success 200 {object} auth.TokenResponse "Access token issued"
// @Failure 400 {object} apperror.ErrorResponse "Invalid body or incorrect email or password"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := validate.Struct(req); err != nil {
			WriteError(w, r, apperror.NewValidationError("email and password are required", err))
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// writeJSON serializes data to the response with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"detail":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteJSON is the exported variant used by other handler packages.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, data)
}

// WriteError converts any error into the standardized {"detail": ...} body
// with the status code carried by its apperror type. Errors that are not
// AppErrors become generic 500s.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
