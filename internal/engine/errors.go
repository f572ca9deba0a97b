package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for the per-entry failure taxonomy. A third kind,
// units.ErrUnsupportedConversion, is raised by the units package and flows
// through unchanged.
var (
	// ErrFactorNotFound means a categorical key has no matching emission
	// factor and the category documents no fallback for it.
	ErrFactorNotFound = errors.New("emission factor not found")

	// ErrMissingDerivationInput means the entry's chosen calculation method
	// lacks a field needed to derive the canonical quantity.
	ErrMissingDerivationInput = errors.New("missing derivation input")
)

// EntryError attributes a calculation failure to one entry. Errors are local
// to the offending entry: they are collected alongside the results and never
// abort processing of the remaining entries.
type EntryError struct {
	EntryID  string   `json:"entry_id"`
	Category Category `json:"category"`
	Err      error    `json:"-"`

	// Message mirrors Err for serialization.
	Message string `json:"message"`
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %s (%s): %v", e.EntryID, e.Category, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

func newEntryError(category Category, entryID string, err error) *EntryError {
	return &EntryError{
		EntryID:  entryID,
		Category: category,
		Err:      err,
		Message:  err.Error(),
	}
}

func factorNotFound(kind, key string) error {
	return fmt.Errorf("%w: %s %q", ErrFactorNotFound, kind, key)
}

func missingInput(method CalcMethod, field string) error {
	return fmt.Errorf("%w: method %q requires %s", ErrMissingDerivationInput, method, field)
}
