package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/company-profiler/internal/crawling"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrInvalidProfile indicates a crawl produced a record that does not match the schema
type ErrInvalidProfile struct {
	Cause error
}

func (e *ErrInvalidProfile) Error() string {
	return fmt.Sprintf("profile failed schema validation: %v", e.Cause)
}

func (e *ErrInvalidProfile) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var crawlErr *crawling.CrawlError
	if errors.As(err, &crawlErr) {
		return http.StatusBadRequest
	}

	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
