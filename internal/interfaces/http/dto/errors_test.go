package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeReferencedByNotes, http.StatusConflict},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeInvalidRUT, http.StatusUnprocessableEntity},
		{ErrCodeSupplierInactive, http.StatusUnprocessableEntity},
		{ErrCodeFileTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodePDFDisabled, http.StatusServiceUnavailable},
		{ErrCodeInternal, http.StatusInternalServerError},
		{"ERR_NO_EXISTE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeReferencedByNotes, NormalizeErrorCode("REFERENCED_BY_NOTES"))
	assert.Equal(t, ErrCodeInvalidRUT, NormalizeErrorCode("INVALID_RUT"))
	assert.Equal(t, ErrCodePDFDisabled, NormalizeErrorCode("PDF_DISABLED"))

	// wire-level and unknown codes pass through
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode(ErrCodeNotFound))
	assert.Equal(t, "CODIGO_RARO", NormalizeErrorCode("CODIGO_RARO"))
}

// Every code the domain and application layers emit must resolve to the
// intended HTTP class; none of them may fall through to the 500 default.
func TestEmittedDomainCodesResolveToExpectedStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		// validation failures on the request
		{"INVALID_INPUT", http.StatusBadRequest},
		{"INVALID_CLIENT", http.StatusBadRequest},
		{"INVALID_DATE", http.StatusBadRequest},
		{"INVALID_PASSWORD", http.StatusBadRequest},
		{"INVALID_USERNAME", http.StatusBadRequest},
		{"INVALID_NAME", http.StatusBadRequest},
		{"INVALID_EMAIL", http.StatusBadRequest},
		{"INVALID_PHONE", http.StatusBadRequest},
		{"INVALID_ADDRESS", http.StatusBadRequest},
		{"INVALID_COMMUNE", http.StatusBadRequest},
		{"INVALID_ACTIVITY", http.StatusBadRequest},
		{"INVALID_CONTACT_NAME", http.StatusBadRequest},
		{"INVALID_POSITION", http.StatusBadRequest},
		{"INVALID_CODE", http.StatusBadRequest},
		{"INVALID_DESCRIPTION", http.StatusBadRequest},
		{"INVALID_PRICE", http.StatusBadRequest},
		{"INVALID_STOCK", http.StatusBadRequest},
		{"INVALID_STATUS", http.StatusBadRequest},
		{"INVALID_NUMBER", http.StatusBadRequest},
		{"INVALID_NOTE", http.StatusBadRequest},
		{"INVALID_DISPATCH_DATE", http.StatusBadRequest},
		{"INVALID_OBSERVATION", http.StatusBadRequest},
		{"INVALID_DELIVERY", http.StatusBadRequest},
		{"INVALID_SCHEDULE", http.StatusBadRequest},
		{"INVALID_ORDER_NUMBER", http.StatusBadRequest},
		{"INVALID_SUPPLIER", http.StatusBadRequest},
		{"INVALID_PRODUCT", http.StatusBadRequest},
		{"INVALID_QUANTITY", http.StatusBadRequest},
		// file upload validation
		{"INVALID_CONTENT_TYPE", http.StatusBadRequest},
		{"INVALID_SIZE", http.StatusBadRequest},
		{"INVALID_FILE_NAME", http.StatusBadRequest},
		{"INVALID_STORAGE_KEY", http.StatusBadRequest},
		{"FILE_TOO_LARGE", http.StatusRequestEntityTooLarge},
		// domain rules on otherwise valid input
		{"INVALID_RUT", http.StatusUnprocessableEntity},
		{"SUPPLIER_INACTIVE", http.StatusUnprocessableEntity},
		// lifecycle conflicts
		{"INVALID_STATE", http.StatusUnprocessableEntity},
		{"INVALID_STATUS_TRANSITION", http.StatusUnprocessableEntity},
		{"ORDER_NOT_EDITABLE", http.StatusUnprocessableEntity},
		{"EMPTY_ORDER", http.StatusUnprocessableEntity},
		{"ALREADY_ACTIVE", http.StatusUnprocessableEntity},
		{"ALREADY_DEACTIVATED", http.StatusUnprocessableEntity},
		{"ALREADY_INACTIVE", http.StatusUnprocessableEntity},
		// resources
		{"NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"CONCURRENCY_CONFLICT", http.StatusConflict},
		{"REFERENCED_BY_NOTES", http.StatusConflict},
		// auth
		{"UNAUTHORIZED", http.StatusUnauthorized},
		{"FORBIDDEN", http.StatusForbidden},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"ACCOUNT_DEACTIVATED", http.StatusForbidden},
		{"USER_NOT_FOUND", http.StatusUnauthorized},
		{"TOKEN_EXPIRED", http.StatusUnauthorized},
		{"TOKEN_INVALID", http.StatusUnauthorized},
		{"TOKEN_REVOKED", http.StatusUnauthorized},
		// rendering and storage
		{"PDF_DISABLED", http.StatusServiceUnavailable},
		{"RENDER_FAILED", http.StatusInternalServerError},
		{"PASSWORD_HASH_ERROR", http.StatusInternalServerError},
		{"INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(NormalizeErrorCode(tt.code)))
		})
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	response := NewSuccessResponseWithMeta([]string{"a", "b"}, 45, 2, 20)

	assert.True(t, response.Success)
	assert.Equal(t, int64(45), response.Meta.Total)
	assert.Equal(t, 2, response.Meta.Page)
	assert.Equal(t, 3, response.Meta.TotalPages)
}
