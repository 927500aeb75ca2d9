package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authorization (AUTH) ----

func ErrUnauthorized() *AppError {
	return New("AUTH_001", "Caller is not authorized for this operation", http.StatusForbidden)
}

func ErrInvalidCredentials() *AppError {
	return New("AUTH_002", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidAccessKey() *AppError {
	return New("AUTH_004", "Invalid access key", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("AUTH_005", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("AUTH_006", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("AUTH_007", "Nonce has already been used", http.StatusForbidden)
}

// ---- Pack sessions (SES) ----

func ErrSessionExists() *AppError {
	return New("SES_001", "An undecided pack session already exists for this user", http.StatusConflict)
}

func ErrInvalidSessionState() *AppError {
	return New("SES_002", "Pack session is not in the required state", http.StatusConflict)
}

func ErrSessionExpired() *AppError {
	return New("SES_003", "Claim window has elapsed", http.StatusGone)
}

func ErrSessionNotExpired() *AppError {
	return New("SES_004", "Claim window has not elapsed yet", http.StatusConflict)
}

// ---- Card records (CRD) ----

func ErrCardNotAvailable() *AppError {
	return New("CRD_001", "Card is not available", http.StatusConflict)
}

func ErrCardNotReserved() *AppError {
	return New("CRD_002", "Card is not reserved", http.StatusConflict)
}

func ErrCardTooCommon() *AppError {
	return New("CRD_003", "Card rarity must be Rare or above", http.StatusUnprocessableEntity)
}

func ErrTooManyRareCards() *AppError {
	return New("CRD_004", "Too many rare card references supplied", http.StatusBadRequest)
}

func ErrInvalidCardCount() *AppError {
	return New("CRD_005", "Wrong number of card references supplied", http.StatusBadRequest)
}

// ---- Cross-reference mismatches (REF) ----

func ErrVaultMismatch() *AppError {
	return New("REF_001", "Record does not belong to this vault", http.StatusUnprocessableEntity)
}

func ErrAssetMismatch() *AppError {
	return New("REF_002", "Asset reference mismatch", http.StatusUnprocessableEntity)
}

func ErrTemplateMismatch() *AppError {
	return New("REF_003", "Card template mismatch", http.StatusUnprocessableEntity)
}

func ErrRarityMismatch() *AppError {
	return New("REF_004", "Card rarity mismatch", http.StatusUnprocessableEntity)
}

func ErrMintMismatch() *AppError {
	return New("REF_005", "Token mint mismatch", http.StatusUnprocessableEntity)
}

func ErrCardKeyMismatch() *AppError {
	return New("REF_006", "Card reference does not match the session slot", http.StatusUnprocessableEntity)
}

// ---- Marketplace (MKT) ----

func ErrInvalidListingState() *AppError {
	return New("MKT_001", "Listing is not in the required state", http.StatusConflict)
}

// ---- Payments (PAY) ----

func ErrInvalidPrice() *AppError {
	return New("PAY_001", "Invalid price", http.StatusUnprocessableEntity)
}

func ErrInsufficientFunds() *AppError {
	return New("PAY_002", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrMissingTokenAccount() *AppError {
	return New("PAY_003", "Missing token account reference", http.StatusBadRequest)
}

func ErrOverflow() *AppError {
	return New("PAY_004", "Arithmetic overflow", http.StatusUnprocessableEntity)
}

// ---- Custody (CST) ----

func ErrCustodyFailure(err error) *AppError {
	return Wrap("CST_001", "Asset custody service failure", http.StatusBadGateway, err)
}

// ---- Resources (RES) ----

func ErrNotFound(entity string) *AppError {
	return New("RES_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrAlreadyExists(entity string) *AppError {
	return New("RES_002", fmt.Sprintf("%s already exists", entity), http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
