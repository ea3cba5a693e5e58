package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// StoreErrorKind classifies a remote list store failure by the HTTP status it returned.
type StoreErrorKind string

const (
	StoreUnauthorized StoreErrorKind = "UNAUTHORIZED"
	StoreForbidden    StoreErrorKind = "FORBIDDEN"
	StoreNotFound     StoreErrorKind = "NOT_FOUND"
	StoreRateLimited  StoreErrorKind = "RATE_LIMITED"
	StoreServerError  StoreErrorKind = "SERVER_ERROR"
)

// StoreError reports a failed call against the remote list store.
// The store has no transactions, so callers must treat a StoreError from a
// multi-step operation as "some steps may have committed".
type StoreError struct {
	Kind       StoreErrorKind
	StatusCode int
	Collection string
	Detail     string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("remote store error (%s, status %d) on collection %s: %s", e.Kind, e.StatusCode, e.Collection, e.Detail)
}

// NewStoreError classifies an HTTP status code from the remote store.
func NewStoreError(statusCode int, collection, detail string) *StoreError {
	kind := StoreServerError
	switch statusCode {
	case http.StatusUnauthorized:
		kind = StoreUnauthorized
	case http.StatusForbidden:
		kind = StoreForbidden
	case http.StatusNotFound:
		kind = StoreNotFound
	case http.StatusTooManyRequests:
		kind = StoreRateLimited
	}
	return &StoreError{
		Kind:       kind,
		StatusCode: statusCode,
		Collection: collection,
		Detail:     detail,
	}
}

// IsStoreError reports whether err wraps a StoreError and returns it if so.
func IsStoreError(err error) (*StoreError, bool) {
	var se *StoreError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
