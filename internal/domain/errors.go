package domain

import "errors"

var (
	// ErrNotFound is returned when the backend has no record for an ASIN
	// or a saved search id does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidRequest is returned when request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache.
	ErrCacheMiss = errors.New("cache miss")

	// ErrBackendFailure is returned when an analysis backend request fails
	// after retries are exhausted.
	ErrBackendFailure = errors.New("analysis backend request failed")

	// ErrUnauthorized is returned when a request lacks a bearer token.
	ErrUnauthorized = errors.New("missing or invalid credentials")
)
