// Package gateway provides adapters for the job-listing APIs,
// abstracting away the HTTP client and each provider's response shape.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Source defines the behavior of a single job-listing provider.
// P is the provider's decoded page and L a single listing on it.
// Every provider decides on its own when a page marks exhaustion.
type Source[P, L any] interface {
	// Name identifies the provider in logs and errors.
	Name() string
	// FetchPage performs one paginated search request.
	FetchPage(ctx context.Context, keyword string, page int) (P, error)
	// IsLastPage reports whether the walk stops at this page.
	IsLastPage(page P, index int) bool
	// Listings returns the vacancies carried by a page.
	Listings(page P) []L
	// EstimateSalary returns a salary estimate for a listing, if it has one.
	EstimateSalary(listing L) (float64, bool)
}

// ErrDataShape marks a listing that lacks a field its estimator needs.
var ErrDataShape = errors.New("unexpected listing shape")

// TransportError reports a failed request to a provider. It is fatal for the walk.
type TransportError struct {
	Source     string
	Page       int
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: page %d: status %d: %v", e.Source, e.Page, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: page %d: %v", e.Source, e.Page, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsAuth reports whether the provider rejected the request's credentials,
// which is how a missing or wrong API key shows up.
func (e *TransportError) IsAuth() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// DataShapeError reports a listing field that is missing or malformed.
type DataShapeError struct {
	Source string
	Field  string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("%s: listing has no %q", e.Source, e.Field)
}

func (e *DataShapeError) Is(target error) bool { return target == ErrDataShape }
