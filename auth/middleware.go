// HTTP middleware protecting resource routes. Every protected request is
// authenticated from scratch: token out of the header, signature and expiry
// check, then a store lookup to confirm the subject still exists.
package auth

import (
	"net/http"
)

// RequireUser wraps protected routes. It resolves the request's identity via
// the AuthService and stores the *User in the context for handlers to read
// with CurrentUser. Any failure short-circuits into the 403 rejection.
func RequireUser(service *AuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := service.ResolveIdentity(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithUser(r.Context(), user)))
		})
	}
}
