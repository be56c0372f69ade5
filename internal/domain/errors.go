package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrDesignNotFound      = errors.New("design not found")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrThreadNotFound      = errors.New("message thread not found")
	ErrWizardInactive      = errors.New("customization wizard is not active")
	ErrWizardComplete      = errors.New("customization wizard is already complete")
	ErrAreaUnknown         = errors.New("placement area is not available for this product")
	ErrAreaCapacity        = errors.New("placement area is full")
	ErrItemKindUnsupported = errors.New("customization item kind is not supported")
)

// ValidationError blocks a transition because required input is missing or invalid.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// CatalogLookupError reports a product or design reference that could not be resolved.
type CatalogLookupError struct {
	Kind string
	ID   string
	Err  error
}

func (e *CatalogLookupError) Error() string {
	return fmt.Sprintf("%s %q lookup: %v", e.Kind, e.ID, e.Err)
}

func (e *CatalogLookupError) Unwrap() error { return e.Err }

// SubmissionError wraps a cart store failure. The session is left intact so the user can retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submit design request: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

func (e *SubmissionError) Retryable() bool { return true }
