// Package auth implements the authentication and authorization contract:
// credential storage, password hashing, JWT issuance and verification, and the
// middleware that protects resource routes.
package auth

import "time"

// User represents a registered account. HashedPassword carries the bcrypt
// digest and is never serialized; no exposed operation updates or deletes a
// user after creation.
type User struct {
	ID             int       `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
