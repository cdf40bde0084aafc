package persistence

import (
	"context"

	"boomstream/internal/domain/entity"
)

// AccountRepository defines the persistence operations for accounts. All
// balance mutation goes through AddBalance and Transfer, which the storage
// adapter implements as atomic conditional updates so concurrent requests
// against the same account cannot observe or produce a lost update.
type AccountRepository interface {
	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account with the given ID exists
	// - ErrDatabaseConnection: if the database cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// GetByEmail retrieves an account by its (unique) email address
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account, assigning its ID
	//
	// Possible errors:
	// - ErrDuplicateEmail: if the email is already registered
	Create(ctx context.Context, account *entity.Account) error

	// AddBalance atomically credits the account and returns its new state.
	// amountInCents must be positive; validation happens in the ledger.
	AddBalance(ctx context.Context, id uint64, amountInCents int64) (*entity.Account, error)

	// Transfer atomically debits `fromID` and credits `toID` as a single
	// unit. The debit is conditional on sufficient balance at commit time.
	//
	// Possible errors:
	// - ErrInsufficientBalance: if fromID cannot cover the amount when the
	//   update commits (not merely at an earlier read)
	// - ErrAccountNotFound: if either account does not exist
	Transfer(ctx context.Context, fromID, toID uint64, amountInCents int64) error
}
