package store

import "errors"

// Errors returned by the stores and services. Handlers map these to HTTP
// status codes; none of them is fatal.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrAuthRequired       = errors.New("login required")
)
