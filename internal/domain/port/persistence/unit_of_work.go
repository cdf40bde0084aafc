package persistence

import (
	"context"
)

// UnitOfWork coordinates writes that must share one transactional boundary,
// such as a wallet transfer paired with the purchase record it pays for.
// Begin returns a context carrying the transaction; the Get*Repository
// methods return repositories bound to that transaction when the context
// carries one, and to the base connection otherwise.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetPurchaseRepository returns a purchase repository bound to the current transaction
	GetPurchaseRepository(ctx context.Context) PurchaseRepository

	// GetGiftRepository returns a gift repository bound to the current transaction
	GetGiftRepository(ctx context.Context) GiftRepository
}
