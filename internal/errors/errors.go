package errors

import (
	"errors"
	"fmt"
	"time"
)

// Error types for the terminology matching engine
type ErrorType string

const (
	// Lookup errors
	ErrorTypeLookup ErrorType = "lookup"

	// Ingestion errors
	ErrorTypeIngest ErrorType = "ingest"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"

	// Internal errors
	ErrorTypeInternal ErrorType = "internal"
)

// ErrInvalidThreshold is the sentinel for fuzzy-match thresholds outside the
// valid [0.0, 1.0] range. Callers match it with errors.Is.
var ErrInvalidThreshold = errors.New("threshold must be between 0.0 and 1.0")

// LookupError represents a failed lookup operation
type LookupError struct {
	Type       ErrorType
	Operation  string
	Term       string
	Language   string
	Underlying error
	Timestamp  time.Time
}

// NewLookupError creates a new lookup error with context
func NewLookupError(op string, err error) *LookupError {
	return &LookupError{
		Type:       ErrorTypeLookup,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// NewThresholdError reports an out-of-range fuzzy-match threshold
func NewThresholdError(op string, threshold float64) *LookupError {
	return NewLookupError(op, fmt.Errorf("%w: got %.2f", ErrInvalidThreshold, threshold))
}

// WithTerm adds the queried term and language to the error
func (e *LookupError) WithTerm(term, language string) *LookupError {
	e.Term = term
	e.Language = language
	return e
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.Term != "" {
		return fmt.Sprintf("%s %s failed for %q (%s): %v", e.Type, e.Operation, e.Term, e.Language, e.Underlying)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Type, e.Operation, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *LookupError) Unwrap() error {
	return e.Underlying
}

// IngestError represents a terminology ingestion error
type IngestError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewIngestError creates a new ingestion error
func NewIngestError(op string, err error) *IngestError {
	return &IngestError{
		Type:       ErrorTypeIngest,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// WithPath adds the source file path to the error
func (e *IngestError) WithPath(path string) *IngestError {
	e.Path = path
	return e
}

// Error implements the error interface
func (e *IngestError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s failed for %s: %v", e.Type, e.Operation, e.Path, e.Underlying)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Type, e.Operation, e.Underlying)
}

// Unwrap returns the underlying error
func (e *IngestError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error
type ConfigError struct {
	Type       ErrorType
	Path       string
	Field      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field string, err error) *ConfigError {
	return &ConfigError{
		Type:       ErrorTypeConfig,
		Field:      field,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// WithPath adds the config file path to the error
func (e *ConfigError) WithPath(path string) *ConfigError {
	e.Path = path
	return e
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in field %s: %v", e.Field, e.Underlying)
	}
	return fmt.Sprintf("config error: %v", e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}
