package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCardNotFound indicates the requested card does not exist
	ErrCardNotFound = errors.New("card not found")

	// ErrServerOffline indicates the card catalog API is unreachable
	ErrServerOffline = errors.New("card catalog is unreachable")
)
