package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("PAY_002", "Insufficient balance", http.StatusPaymentRequired),
			expected: "[PAY_002] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestSessionErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"SessionExists", ErrSessionExists(), "SES_001", 409},
		{"InvalidSessionState", ErrInvalidSessionState(), "SES_002", 409},
		{"SessionExpired", ErrSessionExpired(), "SES_003", 410},
		{"SessionNotExpired", ErrSessionNotExpired(), "SES_004", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestMismatchErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code string
	}{
		{"VaultMismatch", ErrVaultMismatch(), "REF_001"},
		{"AssetMismatch", ErrAssetMismatch(), "REF_002"},
		{"TemplateMismatch", ErrTemplateMismatch(), "REF_003"},
		{"RarityMismatch", ErrRarityMismatch(), "REF_004"},
		{"MintMismatch", ErrMintMismatch(), "REF_005"},
		{"CardKeyMismatch", ErrCardKeyMismatch(), "REF_006"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, http.StatusUnprocessableEntity, tt.err.HTTPStatus)
		})
	}
}

func TestCustodyFailure_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("transfer rejected")
	err := ErrCustodyFailure(cause)

	assert.Equal(t, "CST_001", err.Code)
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus)
	assert.True(t, errors.Is(err, cause))
}

func TestNotFound_IncludesEntity(t *testing.T) {
	err := ErrNotFound("Listing")
	assert.Equal(t, "RES_001", err.Code)
	assert.Contains(t, err.Message, "Listing")
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
}
