package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/user/bookstore-go/apperror"
	"github.com/user/bookstore-go/db"
)

// Client-facing failure messages. These are part of the external contract:
// login keeps one message for both unknown email and wrong password, and the
// middleware keeps one message for every flavor of rejected token.
const (
	msgEmailAlreadyRegistered = "Email already registered"
	msgIncorrectCredentials   = "Incorrect email or password"
	msgNotAuthenticated       = "Not authenticated"
	msgInvalidToken           = "Invalid token or expired token"
)

// dummyDigest is a valid bcrypt digest compared against when login hits an
// unknown email, so that path costs about as much as a real password check.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService orchestrates signup, login, and identity resolution. The
// database dependency is the db.Querier interface so tests can inject a mock
// pool.
type AuthService struct {
	db     db.Querier
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(pool db.Querier, tokens *TokenService) *AuthService {
	return &AuthService{
		db:     pool,
		tokens: tokens,
	}
}

// Signup hashes the password and creates the user record. A duplicate email
// surfaces as a 400 rejection; the uniqueness check itself is the database
// unique index, so concurrent signups with the same email cannot both succeed.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) error {
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return apperror.NewInternalError("failed to hash password", err)
	}

	if err := s.createUser(ctx, req.Email, hashed); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return apperror.NewDuplicateEmailError(msgEmailAlreadyRegistered, err)
		}
		return apperror.NewDatabaseError("failed to create user", err)
	}
	return nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password produce the identical error so responses cannot be used to
// enumerate registered accounts.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.UserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			CheckPassword(req.Password, dummyDigest)
			return nil, apperror.NewInvalidCredentialsError(msgIncorrectCredentials, nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if !CheckPassword(req.Password, user.HashedPassword) {
		return nil, apperror.NewInvalidCredentialsError(msgIncorrectCredentials, nil)
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// ResolveIdentity is the single choke point for protected routes. It extracts
// the bearer token from the Authorization header value, verifies it, and
// confirms the subject still exists in the store. Every failed step maps to
// the same 403 rejection class.
func (s *AuthService) ResolveIdentity(ctx context.Context, authHeader string) (*User, error) {
	if authHeader == "" {
		return nil, apperror.NewUnauthenticatedError(msgNotAuthenticated, nil)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, apperror.NewUnauthenticatedError(msgNotAuthenticated, nil)
	}

	subject, err := s.tokens.Verify(parts[1])
	if err != nil {
		return nil, apperror.NewUnauthenticatedError(msgInvalidToken, err)
	}

	user, err := s.UserByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Token subject no longer exists.
			return nil, apperror.NewUnauthenticatedError(msgInvalidToken, nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return user, nil
}

func (s *AuthService) createUser(ctx context.Context, email, hashedPassword string) error {
	query := `INSERT INTO users (email, password)
	          VALUES ($1, $2)`
	_, err := s.db.Exec(ctx, query, email, hashedPassword)
	return err
}

// UserByEmail retrieves a user by exact email. Emails are case-sensitive;
// no normalization is applied on write or read. A miss is pgx.ErrNoRows and
// the caller decides what it means.
func (s *AuthService) UserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	query := `SELECT id, email, password, created_at FROM users WHERE email = $1`
	err := s.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
