// Package errors defines the application error model shared by every layer.
package errors

import (
	"net/http"
	"slices"

	"github.com/pkg/errors"
)

// Category is the coarse classification of a failure. It drives both the
// HTTP status and the client-facing "type" of an error response.
type Category string

const (
	CategoryValidation    Category = "validation"
	CategoryServer        Category = "server"
	CategoryBadRequest    Category = "bad_request"
	CategoryUnauthorized  Category = "unauthorized"
	CategoryForbidden     Category = "forbidden"
	CategoryNotFound      Category = "not_found"
	CategoryConflict      Category = "conflict"
	CategoryUnprocessable Category = "unprocessable"
)

// DefaultStatus returns the HTTP status a category maps to when none is given.
func (c Category) DefaultStatus() int {
	switch c {
	case CategoryValidation, CategoryUnprocessable:
		return http.StatusUnprocessableEntity
	case CategoryBadRequest:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DefaultMessage returns the message used when a constructor is given an empty one.
func (c Category) DefaultMessage() string {
	switch c {
	case CategoryValidation:
		return "Input validation failed"
	case CategoryBadRequest:
		return "Bad Request"
	case CategoryUnauthorized:
		return "Unauthorized"
	case CategoryForbidden:
		return "Forbidden"
	case CategoryNotFound:
		return "Not Found"
	case CategoryConflict:
		return "Conflict"
	case CategoryUnprocessable:
		return "Unprocessable Entity"
	default:
		return "Internal Server Error"
	}
}

// FieldErrors maps a request field name to its ordered validation messages.
type FieldErrors map[string][]string

// AppError defines the interface for errors the HTTP error renderer understands.
type AppError interface {
	error
	HTTPCode() int       // HTTP status code
	Category() Category  // Failure classification
	Message() string     // Client-safe message
	Fields() FieldErrors // Per-field messages, nil when not a validation failure
}

// APIError is the concrete AppError raised by handlers and use cases.
// Values are immutable once constructed; the With* helpers return copies.
type APIError struct {
	category   Category
	message    string
	fields     FieldErrors
	statusCode int
	cause      error
}

// New creates an APIError. An empty message falls back to the category default
// and a status outside 4xx/5xx falls back to the category's default status.
func New(category Category, message string, fields FieldErrors, statusCode int) *APIError {
	if message == "" {
		message = category.DefaultMessage()
	}
	if !isErrorStatus(statusCode) {
		statusCode = category.DefaultStatus()
	}

	return &APIError{
		category:   category,
		message:    message,
		fields:     cloneFields(fields),
		statusCode: statusCode,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

// HTTPCode returns the HTTP status code.
func (e *APIError) HTTPCode() int {
	return e.statusCode
}

// Category returns the failure classification.
func (e *APIError) Category() Category {
	return e.category
}

// Message returns the client-safe message.
func (e *APIError) Message() string {
	return e.message
}

// Fields returns a copy of the per-field messages.
func (e *APIError) Fields() FieldErrors {
	return cloneFields(e.fields)
}

// Unwrap exposes the internal cause for errors.Is/As and logging.
func (e *APIError) Unwrap() error {
	return e.cause
}

// Is reports whether target describes the same failure, ignoring the cause.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}

	return e.category == t.category && e.message == t.message && e.statusCode == t.statusCode
}

// WithStatus returns a copy carrying a different status code.
func (e *APIError) WithStatus(statusCode int) *APIError {
	cp := e.clone()
	if isErrorStatus(statusCode) {
		cp.statusCode = statusCode
	}

	return cp
}

// WithCause returns a copy that records an internal cause. The cause is logged
// by the renderer but never sent to the client.
func (e *APIError) WithCause(cause error) *APIError {
	cp := e.clone()
	cp.cause = cause

	return cp
}

func (e *APIError) clone() *APIError {
	cp := *e
	cp.fields = cloneFields(e.fields)

	return &cp
}

func cloneFields(fields FieldErrors) FieldErrors {
	if fields == nil {
		return nil
	}
	out := make(FieldErrors, len(fields))
	for k, v := range fields {
		out[k] = slices.Clone(v)
	}

	return out
}

func isErrorStatus(code int) bool {
	return code >= http.StatusBadRequest && code <= 599
}

// Internal creates a server error (500).
func Internal(message string) *APIError {
	return New(CategoryServer, message, nil, http.StatusInternalServerError)
}

// BadRequest creates a bad_request error (400).
func BadRequest(message string) *APIError {
	return New(CategoryBadRequest, message, nil, http.StatusBadRequest)
}

// Unauthorized creates an unauthorized error (401).
func Unauthorized(message string) *APIError {
	return New(CategoryUnauthorized, message, nil, http.StatusUnauthorized)
}

// Forbidden creates a forbidden error (403).
func Forbidden(message string) *APIError {
	return New(CategoryForbidden, message, nil, http.StatusForbidden)
}

// NotFound creates a not_found error (404).
func NotFound(message string) *APIError {
	return New(CategoryNotFound, message, nil, http.StatusNotFound)
}

// Conflict creates a conflict error (409).
func Conflict(message string) *APIError {
	return New(CategoryConflict, message, nil, http.StatusConflict)
}

// Unprocessable creates an unprocessable error (422).
func Unprocessable(message string) *APIError {
	return New(CategoryUnprocessable, message, nil, http.StatusUnprocessableEntity)
}

// Predefined error types
var (
	// Account errors
	ErrAdminAlreadyExists   = Conflict("User already exists")
	ErrStudentAlreadyExists = Conflict("Student already exists")
	ErrAdminNotFound        = NotFound("Admin not found")
	ErrStudentNotFound      = NotFound("Student not found")
	ErrInvalidPassword      = Unauthorized("Invalid password")
	ErrAccountMismatch      = Forbidden("You can only change your own password")

	// Authentication errors
	ErrMissingCredentials = Unauthorized("Unauthorised access")
	ErrInvalidToken       = Forbidden("Invalid or expired token")
	ErrAccessDenied       = Forbidden("Access denied")

	// Experience errors
	ErrExperienceIDRequired  = BadRequest("Experience ID is required in the URL parameters.")
	ErrExperienceNotFound    = NotFound("Experience not found with the provided ID.")
	ErrExperienceUpdateOwner = Forbidden("You are not authorized to update this experience.")
	ErrExperienceDeleteOwner = Forbidden("You are not authorized to delete this experience.")

	// Document errors
	ErrDocumentKeyOwnership = Forbidden("The document key does not belong to you.")

	// Listing errors
	ErrPageOutOfRange = BadRequest("page is out of range")

	// General errors
	ErrInternalError = Internal("")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap returns the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// Category returns the server category.
func (e *DatabaseExecuteError) Category() Category {
	return CategoryServer
}

// Message returns a generic message; driver details stay in the logs.
func (e *DatabaseExecuteError) Message() string {
	return CategoryServer.DefaultMessage()
}

// Fields always returns nil.
func (e *DatabaseExecuteError) Fields() FieldErrors {
	return nil
}
