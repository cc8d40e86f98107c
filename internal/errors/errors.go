package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrIndexNotFound is returned when an index is not found
	ErrIndexNotFound = errors.New("index not found")

	// ErrIndexAlreadyExists is returned when trying to create an index that already exists
	ErrIndexAlreadyExists = errors.New("index already exists")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrSameName is returned when trying to rename to the same name
	ErrSameName = errors.New("same name provided")

	// ErrUnknownIndex is returned when a query targets an index that does
	// not exist. Equivalent to ErrIndexNotFound, kept as a distinct name
	// matching the query-path vocabulary (UnknownIndex).
	ErrUnknownIndex = ErrIndexNotFound

	// ErrUnknownQualifier marks a query token whose qualifier string does
	// not alias any category of the index. It is never fatal: the
	// affected token simply matches nothing and is reported alongside
	// partial results, never returned as a query error.
	ErrUnknownQualifier = errors.New("unknown qualifier")

	// ErrMalformedQuery is retained for completeness but is not surfaced
	// on an empty-after-tokenization query: that case is empty-result
	// success, not an error (see search.Service.Search).
	ErrMalformedQuery = errors.New("malformed query")

	// ErrSnapshotMissing is returned when loading a named index's
	// on-disk snapshot fails to find the expected files. Fatal at load
	// time.
	ErrSnapshotMissing = errors.New("snapshot missing")

	// ErrTimeout marks a query that hit its deadline before finishing.
	// The query still returns whatever results it accumulated, with
	// search.Result.Truncated set; this sentinel exists for
	// callers that want to detect the condition explicitly.
	ErrTimeout = errors.New("query timeout")
)

// UnknownQualifierError names the qualifier string and query token that
// could not be resolved to any category.
type UnknownQualifierError struct {
	Qualifier string
	Token     string
}

func (e *UnknownQualifierError) Error() string {
	return fmt.Sprintf("qualifier '%s' (token '%s') does not match any category", e.Qualifier, e.Token)
}

func (e *UnknownQualifierError) Is(target error) bool {
	return target == ErrUnknownQualifier
}

// NewUnknownQualifierError creates a new UnknownQualifierError.
func NewUnknownQualifierError(qualifier, token string) *UnknownQualifierError {
	return &UnknownQualifierError{Qualifier: qualifier, Token: token}
}

// SnapshotMissingError names the index and path whose snapshot could not
// be loaded.
type SnapshotMissingError struct {
	IndexName string
	Path      string
}

func (e *SnapshotMissingError) Error() string {
	return fmt.Sprintf("snapshot for index '%s' not found at '%s'", e.IndexName, e.Path)
}

func (e *SnapshotMissingError) Is(target error) bool {
	return target == ErrSnapshotMissing
}

// NewSnapshotMissingError creates a new SnapshotMissingError.
func NewSnapshotMissingError(indexName, path string) *SnapshotMissingError {
	return &SnapshotMissingError{IndexName: indexName, Path: path}
}

// IndexNotFoundError represents an index not found error with context
type IndexNotFoundError struct {
	IndexName string
}

func (e *IndexNotFoundError) Error() string {
	return fmt.Sprintf("index named '%s' not found", e.IndexName)
}

func (e *IndexNotFoundError) Is(target error) bool {
	return target == ErrIndexNotFound
}

// NewIndexNotFoundError creates a new IndexNotFoundError
func NewIndexNotFoundError(indexName string) *IndexNotFoundError {
	return &IndexNotFoundError{IndexName: indexName}
}

// IndexAlreadyExistsError represents an index already exists error with context
type IndexAlreadyExistsError struct {
	IndexName string
}

func (e *IndexAlreadyExistsError) Error() string {
	return fmt.Sprintf("index named '%s' already exists", e.IndexName)
}

func (e *IndexAlreadyExistsError) Is(target error) bool {
	return target == ErrIndexAlreadyExists
}

// NewIndexAlreadyExistsError creates a new IndexAlreadyExistsError
func NewIndexAlreadyExistsError(indexName string) *IndexAlreadyExistsError {
	return &IndexAlreadyExistsError{IndexName: indexName}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// SameNameError represents an error when trying to rename to the same name
type SameNameError struct {
	Name string
}

func (e *SameNameError) Error() string {
	return fmt.Sprintf("new name '%s' is the same as the current name", e.Name)
}

func (e *SameNameError) Is(target error) bool {
	return target == ErrSameName
}

// NewSameNameError creates a new SameNameError
func NewSameNameError(name string) *SameNameError {
	return &SameNameError{Name: name}
}
