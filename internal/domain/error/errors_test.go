package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInsufficientBalance.Error() != "insufficient balance" {
		t.Errorf("ErrInsufficientBalance has unexpected message: %s", ErrInsufficientBalance.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrRateLimited.Error() != "too many comments in the current window" {
		t.Errorf("ErrRateLimited has unexpected message: %s", ErrRateLimited.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"RechargeLimit", ErrRechargeLimitExceeded, 4003},
		{"GiftBelowMinimum", ErrGiftBelowMinimum, 4004},
		{"SelfPurchase", ErrSelfPurchase, 4030},
		{"SelfGift", ErrSelfGift, 4031},
		{"AccountNotFound", ErrAccountNotFound, 4040},
		{"VideoNotFound", ErrVideoNotFound, 4041},
		{"DuplicatePurchase", ErrDuplicatePurchase, 4090},
		{"RateLimited", ErrRateLimited, 4290},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrSelfGift), 4031},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, http.StatusBadRequest},
		{"InsufficientBalance", ErrInsufficientBalance, http.StatusBadRequest},
		{"RechargeLimit", ErrRechargeLimitExceeded, http.StatusBadRequest},
		{"GiftBelowMinimum", ErrGiftBelowMinimum, http.StatusBadRequest},
		{"Unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"SelfPurchase", ErrSelfPurchase, http.StatusForbidden},
		{"SelfGift", ErrSelfGift, http.StatusForbidden},
		{"NotCommentOwner", ErrNotCommentOwner, http.StatusForbidden},
		{"VideoNotFound", ErrVideoNotFound, http.StatusNotFound},
		{"DuplicatePurchase", ErrDuplicatePurchase, http.StatusConflict},
		{"RateLimited", ErrRateLimited, http.StatusTooManyRequests},
		{"Internal", ErrInternalServer, http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
		{"WrappedInsufficient", NewInsufficientBalanceError(7, "10.00", "5.00"), http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if status := HTTPStatus(tc.err); status != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, status, tc.expected)
			}
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(123, "100.50", "50.25")

	expectedMsg := "insufficient balance for account 123: required 100.50, available 50.25"
	if err.Error() != expectedMsg {
		t.Errorf("Error() = %s, want %s", err.Error(), expectedMsg)
	}

	if !errors.Is(err, ErrInsufficientBalance) {
		t.Error("expected errors.Is to match ErrInsufficientBalance")
	}

	var detailed *InsufficientBalanceError
	if !errors.As(err, &detailed) {
		t.Fatal("expected errors.As to extract *InsufficientBalanceError")
	}
	fields := detailed.LogFields()
	if fields["account_id"] != uint64(123) {
		t.Errorf("LogFields account_id = %v, want 123", fields["account_id"])
	}
	if fields["error_code"] != CodeInsufficientBalance {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeInsufficientBalance)
	}
}

func TestTransferError(t *testing.T) {
	base := ErrInsufficientBalance
	err := NewTransferError(1, 2, "25.00", base)

	expectedMsg := "transfer of 25.00 from account 1 to account 2 failed: insufficient balance"
	if err.Error() != expectedMsg {
		t.Errorf("Error() = %s, want %s", err.Error(), expectedMsg)
	}

	if !errors.Is(err, ErrInsufficientBalance) {
		t.Error("expected the wrapped error to unwrap to ErrInsufficientBalance")
	}
	if ErrorCode(err) != CodeInsufficientBalance {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeInsufficientBalance)
	}
}

func TestRateLimitError(t *testing.T) {
	err := &RateLimitError{AccountID: 9, WindowSize: "60s"}

	if !errors.Is(err, ErrRateLimited) {
		t.Error("expected errors.Is to match ErrRateLimited")
	}
	if HTTPStatus(err) != http.StatusTooManyRequests {
		t.Errorf("HTTPStatus = %d, want %d", HTTPStatus(err), http.StatusTooManyRequests)
	}
}
