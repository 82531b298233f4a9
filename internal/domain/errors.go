package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique key is already taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnauthorized indicates the session has no bound identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrCartEmpty indicates checkout was attempted on an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrInvalidInput indicates a malformed or incomplete request payload.
	ErrInvalidInput = errors.New("invalid input")
)
