package dto

import (
	"net/http"
	"strings"
)

// Error code constants, grouped by category.
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation and input error codes
const (
	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
)

// Authentication error codes
const (
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeForbidden          = "ERR_FORBIDDEN"
	ErrCodeTokenExpired       = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "ERR_TOKEN_INVALID"
	ErrCodeTokenRevoked       = "ERR_TOKEN_REVOKED"
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeAccountDeactivated = "ERR_ACCOUNT_DEACTIVATED"
)

// Resource error codes
const (
	ErrCodeNotFound            = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists       = "ERR_ALREADY_EXISTS"
	ErrCodeConflict            = "ERR_CONFLICT"
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
	ErrCodeReferencedByNotes   = "ERR_REFERENCED_BY_NOTES"
)

// Business rule error codes
const (
	ErrCodeInvalidState     = "ERR_INVALID_STATE"
	ErrCodeInvalidRUT       = "ERR_INVALID_RUT"
	ErrCodeInvalidClient    = "ERR_INVALID_CLIENT"
	ErrCodeSupplierInactive = "ERR_SUPPLIER_INACTIVE"
)

// File and rendering error codes
const (
	ErrCodeFileTooLarge = "ERR_FILE_TOO_LARGE"
	ErrCodeInvalidFile  = "ERR_INVALID_FILE"
	ErrCodePDFDisabled  = "ERR_PDF_DISABLED"
	ErrCodeRenderFailed = "ERR_RENDER_FAILED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeTokenRevoked:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeAccountDeactivated: http.StatusForbidden,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeReferencedByNotes:   http.StatusConflict,

	ErrCodeInvalidState:     http.StatusUnprocessableEntity,
	ErrCodeInvalidRUT:       http.StatusUnprocessableEntity,
	ErrCodeInvalidClient:    http.StatusBadRequest,
	ErrCodeSupplierInactive: http.StatusUnprocessableEntity,

	ErrCodeFileTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeInvalidFile:  http.StatusBadRequest,
	ErrCodePDFDisabled:  http.StatusServiceUnavailable,
	ErrCodeRenderFailed: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to wire-level codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_STATE":        ErrCodeInvalidState,
	"UNAUTHORIZED":         ErrCodeUnauthorized,
	"FORBIDDEN":            ErrCodeForbidden,
	"CONCURRENCY_CONFLICT": ErrCodeConcurrencyConflict,
	"REFERENCED_BY_NOTES":  ErrCodeReferencedByNotes,
	"INVALID_RUT":          ErrCodeInvalidRUT,
	"INVALID_CLIENT":       ErrCodeInvalidClient,
	"SUPPLIER_INACTIVE":    ErrCodeSupplierInactive,
	"INVALID_CREDENTIALS":  ErrCodeInvalidCredentials,
	"ACCOUNT_DEACTIVATED":  ErrCodeAccountDeactivated,
	"USER_NOT_FOUND":       ErrCodeUnauthorized,
	"TOKEN_EXPIRED":        ErrCodeTokenExpired,
	"TOKEN_INVALID":        ErrCodeTokenInvalid,
	"TOKEN_REVOKED":        ErrCodeTokenRevoked,
	"INVALID_DATE":         ErrCodeInvalidInput,
	"INVALID_PASSWORD":     ErrCodeInvalidInput,
	"INVALID_USERNAME":     ErrCodeInvalidInput,
	"FILE_TOO_LARGE":       ErrCodeFileTooLarge,
	"INVALID_FILE":         ErrCodeInvalidFile,
	"PDF_DISABLED":         ErrCodePDFDisabled,
	"RENDER_FAILED":        ErrCodeRenderFailed,
	"INTERNAL_ERROR":       ErrCodeInternal,

	// File upload validation
	"INVALID_CONTENT_TYPE": ErrCodeInvalidFile,
	"INVALID_SIZE":         ErrCodeInvalidFile,
	"INVALID_FILE_NAME":    ErrCodeInvalidFile,
	"INVALID_STORAGE_KEY":  ErrCodeInvalidFile,

	// Lifecycle rules: the entity exists but its current state forbids
	// the requested transition
	"INVALID_STATUS_TRANSITION": ErrCodeInvalidState,
	"ORDER_NOT_EDITABLE":        ErrCodeInvalidState,
	"EMPTY_ORDER":               ErrCodeInvalidState,
	"ALREADY_ACTIVE":            ErrCodeInvalidState,
	"ALREADY_DEACTIVATED":       ErrCodeInvalidState,
	"ALREADY_INACTIVE":          ErrCodeInvalidState,

	"PASSWORD_HASH_ERROR": ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the wire-level format.
// Field-level INVALID_* codes without an explicit entry are validation
// failures; codes that are already wire-level, or unknown, pass through
// unchanged (GetHTTPStatus then answers 500).
func NormalizeErrorCode(code string) string {
	if wireCode, ok := DomainErrorCodeMapping[code]; ok {
		return wireCode
	}
	if strings.HasPrefix(code, "INVALID_") {
		return ErrCodeValidation
	}
	return code
}
