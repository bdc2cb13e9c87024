// Data Transfer Objects for the auth endpoints.
package auth

// SignupRequest is the payload for POST /signup.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// TokenResponse is returned on successful login. TokenType is the literal
// "bearer".
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

// MessageResponse is a generic confirmation body.
type MessageResponse struct {
	Message string `json:"message" example:"User created successfully"`
}
