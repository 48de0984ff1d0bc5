// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Code classifies a failed operation. The gateway codes mirror the SQLSTATE
// values the hosted Postgres returns; the rest are produced locally.
type Code string

const (
	// CodeSchemaDrift: the remote store lacks an expected column (42703).
	// Recoverable only by running the out-of-band schema repair procedure.
	CodeSchemaDrift Code = "schema_drift"
	// CodeDuplicate: unique-key violation (23505), e.g. a second gas
	// inventory row for an existing brand+size pair.
	CodeDuplicate Code = "duplicate_key"
	// CodeMissingTable: the collection's table does not exist (42P01).
	CodeMissingTable Code = "missing_table"
	// CodeNotNull: incomplete payload rejected by the store (23502).
	CodeNotNull Code = "not_null_violation"
	// CodePermission: access-policy rejection (42501).
	CodePermission Code = "permission_denied"
	// CodeBusinessRule: validated client-side before any gateway call.
	CodeBusinessRule Code = "business_rule"
	CodeNotFound     Code = "not_found"
	CodeUnknown      Code = "unknown"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Code   Code   `json:"code"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string { return e.Detail }

func New(msg string) *APIError {
	return &APIError{Code: CodeUnknown, Detail: msg}
}

// BusinessRule builds a client-side validation failure that never reached
// the persistence gateway.
func BusinessRule(msg string) *APIError {
	return &APIError{Code: CodeBusinessRule, Detail: msg}
}

func NotFound(msg string) *APIError {
	return &APIError{Code: CodeNotFound, Detail: msg}
}

// FromGateway translates a persistence gateway failure into the taxonomy
// above. Unrecognized errors keep whatever diagnostic text the driver
// returned. Every gateway error is non-fatal to the caller.
func FromGateway(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &APIError{Code: CodeNotFound, Detail: "record not found"}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42703":
			return &APIError{Code: CodeSchemaDrift,
				Detail: "the database schema is out of date (missing column); run the schema repair procedure from the settings page and retry"}
		case "23505":
			return &APIError{Code: CodeDuplicate, Detail: "a record with this key already exists: " + pgErr.Detail}
		case "42P01":
			return &APIError{Code: CodeMissingTable, Detail: "a required table is missing; check the database setup"}
		case "23502":
			return &APIError{Code: CodeNotNull, Detail: "incomplete record: " + pgErr.Message}
		case "42501":
			return &APIError{Code: CodePermission, Detail: "the database rejected the operation: permission denied"}
		}
		return &APIError{Code: CodeUnknown, Detail: pgErr.Message}
	}
	return &APIError{Code: CodeUnknown, Detail: err.Error()}
}

// HTTPStatus maps the taxonomy onto response status codes.
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case CodeBusinessRule, CodeNotNull:
		return http.StatusBadRequest
	case CodeDuplicate, CodeSchemaDrift, CodeMissingTable:
		return http.StatusConflict
	case CodePermission:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}
