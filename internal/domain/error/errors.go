package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeRechargeLimit       = 4003
	CodeGiftBelowMinimum    = 4004
	CodeConstraintViolation = 4005
	CodeInvalidAccountID    = 4006
	CodeInvalidComment      = 4007
	CodeInvalidRequest      = 4008
	CodeInvalidCredentials  = 4010
	CodeSelfPurchase        = 4030
	CodeSelfGift            = 4031
	CodeNotOwner            = 4032
	CodeVideoNotPurchased   = 4033
	CodeAccountNotFound     = 4040
	CodeVideoNotFound       = 4041
	CodeCommentNotFound     = 4042
	CodeDuplicatePurchase   = 4090
	CodeDuplicateEmail      = 4091
	CodeRateLimited         = 4290

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when an account cannot cover a debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when a monetary amount is malformed or non-positive
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when an amount is too large to represent
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrRechargeLimitExceeded is returned when a single recharge exceeds the per-call cap
	ErrRechargeLimitExceeded = errors.New("recharge amount exceeds the per-call limit")

	// ErrGiftBelowMinimum is returned when a gift is below the configured minimum
	ErrGiftBelowMinimum = errors.New("gift amount is below the minimum")

	// ErrSameAccount is returned when a transfer names the same account on both sides
	ErrSameAccount = errors.New("cannot transfer to the same account")

	// ErrInvalidAccountID is returned when the account ID is not a positive integer
	ErrInvalidAccountID = errors.New("account ID must be positive")

	// ErrSelfPurchase is returned when a creator tries to buy their own video
	ErrSelfPurchase = errors.New("cannot purchase your own video")

	// ErrSelfGift is returned when a creator tries to gift their own video
	ErrSelfGift = errors.New("cannot gift your own video")

	// ErrNotCommentOwner is returned when a caller deletes a comment they do not own
	ErrNotCommentOwner = errors.New("comment does not belong to you")

	// ErrNotVideoOwner is returned when a caller modifies a video they do not own
	ErrNotVideoOwner = errors.New("video does not belong to you")

	// ErrVideoNotPurchased is returned when a paid video is viewed without a purchase
	ErrVideoNotPurchased = errors.New("video has not been purchased")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrVideoNotFound is returned when the requested video doesn't exist
	ErrVideoNotFound = errors.New("video not found")

	// ErrCommentNotFound is returned when the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrDuplicatePurchase is returned when a (user, video) purchase already exists
	ErrDuplicatePurchase = errors.New("video has already been purchased")

	// ErrDuplicateEmail is returned when registering with an email already in use
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrEmptyTitle is returned when a video is created without a title
	ErrEmptyTitle = errors.New("video title cannot be empty")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyComment is returned when a comment is empty after trimming
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrCommentTooLong is returned when a comment exceeds the maximum length
	ErrCommentTooLong = errors.New("comment exceeds the maximum length")

	// ErrRateLimited is returned when the comment window is already full
	ErrRateLimited = errors.New("too many comments in the current window")

	// ErrInvalidCredentials is returned when login credentials don't match
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when no valid caller identity is attached
	ErrUnauthorized = errors.New("missing or invalid authentication token")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrAmountOverflow):
		return CodeInvalidAmount
	case errors.Is(err, ErrRechargeLimitExceeded):
		return CodeRechargeLimit
	case errors.Is(err, ErrGiftBelowMinimum):
		return CodeGiftBelowMinimum
	case errors.Is(err, ErrSameAccount), errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrEmptyComment), errors.Is(err, ErrCommentTooLong):
		return CodeInvalidComment
	case errors.Is(err, ErrEmptyTitle), errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return CodeInvalidCredentials
	case errors.Is(err, ErrSelfPurchase):
		return CodeSelfPurchase
	case errors.Is(err, ErrSelfGift):
		return CodeSelfGift
	case errors.Is(err, ErrNotCommentOwner), errors.Is(err, ErrNotVideoOwner):
		return CodeNotOwner
	case errors.Is(err, ErrVideoNotPurchased):
		return CodeVideoNotPurchased
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrVideoNotFound):
		return CodeVideoNotFound
	case errors.Is(err, ErrCommentNotFound):
		return CodeCommentNotFound
	case errors.Is(err, ErrDuplicatePurchase):
		return CodeDuplicatePurchase
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status code exposed outward.
// Validation errors map to 400, ownership/self-action violations to 403,
// missing entities to 404, duplicate purchases to 409, window exhaustion
// to 429 and everything unexpected to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrAmountOverflow),
		errors.Is(err, ErrRechargeLimitExceeded),
		errors.Is(err, ErrGiftBelowMinimum),
		errors.Is(err, ErrSameAccount),
		errors.Is(err, ErrInvalidAccountID),
		errors.Is(err, ErrEmptyComment),
		errors.Is(err, ErrCommentTooLong),
		errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInsufficientBalance):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrSelfPurchase),
		errors.Is(err, ErrSelfGift),
		errors.Is(err, ErrNotCommentOwner),
		errors.Is(err, ErrNotVideoOwner),
		errors.Is(err, ErrVideoNotPurchased):
		return http.StatusForbidden
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrVideoNotFound),
		errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicatePurchase), errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	AccountID   uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for account %d: required %s, available %s",
		e.AccountID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"account_id":      e.AccountID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(accountID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		AccountID:   accountID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// TransferError represents an error raised while moving value between accounts
type TransferError struct {
	FromAccountID uint64
	ToAccountID   uint64
	Amount        string
	Err           error
}

// Error implements the error interface for TransferError
func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %s from account %d to account %d failed: %v",
		e.Amount, e.FromAccountID, e.ToAccountID, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "transfer_error",
		"from_account_id": e.FromAccountID,
		"to_account_id":   e.ToAccountID,
		"amount":          e.Amount,
		"error":           e.Err.Error(),
		"error_code":      ErrorCode(e.Err),
	}
}

// NewTransferError creates a detailed transfer error
func NewTransferError(fromID, toID uint64, amount string, err error) error {
	return &TransferError{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
		Err:           err,
	}
}

// RateLimitError provides detail about a rejected comment admission
type RateLimitError struct {
	AccountID  uint64
	WindowSize string
}

// NewRateLimitError creates a new RateLimitError
func NewRateLimitError(accountID uint64, windowSize string) error {
	return &RateLimitError{
		AccountID:  accountID,
		WindowSize: windowSize,
	}
}

// Error implements the error interface
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("account %d exceeded the comment limit for the %s window", e.AccountID, e.WindowSize)
}

// Is checks if the target error is an ErrRateLimited
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// LogFields returns a map of fields for structured logging
func (e *RateLimitError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "rate_limited",
		"account_id":  e.AccountID,
		"window_size": e.WindowSize,
		"error_code":  CodeRateLimited,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsDuplicatePurchaseError checks if the error is a duplicate purchase error
func IsDuplicatePurchaseError(err error) bool {
	return errors.Is(err, ErrDuplicatePurchase)
}

// IsRateLimitedError checks if the error is a rate limit rejection
func IsRateLimitedError(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrVideoNotFound) ||
		errors.Is(err, ErrCommentNotFound)
}
