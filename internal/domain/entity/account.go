package entity

import (
	"strings"
	"time"

	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
)

// Account represents a user of the platform together with their wallet.
// The balance is stored in cents to avoid floating point precision issues
// and is kept private so it can only change through the credit/debit paths.
type Account struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	balance      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAccount creates a new account with the given initial balance
func NewAccount(name, email, passwordHash, initialBalance string, timeProvider coreport.TimeProvider) (*Account, error) {
	balanceInCents, err := ValidateAndConvertAmount(initialBalance)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Account{
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		balance:      balanceInCents,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Balance returns the current balance in cents (for internal use)
func (a *Account) Balance() int64 {
	return a.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (a *Account) GetBalance() string {
	return AmountInCentsToString(a.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (a *Account) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	a.balance = balanceInCents
	a.UpdatedAt = timeProvider.Now()
}

// CanDeduct checks if the account has enough balance for a deduction
func (a *Account) CanDeduct(amountInCents int64) bool {
	return a.balance >= amountInCents
}

// Credit adds the amount to the balance
func (a *Account) Credit(amountInCents int64, timeProvider coreport.TimeProvider) {
	a.balance += amountInCents
	a.UpdatedAt = timeProvider.Now()
}

// Debit subtracts the amount from the balance if sufficient balance exists.
// Returns ErrInsufficientBalance otherwise; the balance is never left negative.
func (a *Account) Debit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if a.balance < amountInCents {
		return errs.ErrInsufficientBalance
	}

	a.balance -= amountInCents
	a.UpdatedAt = timeProvider.Now()
	return nil
}
