// Package wallet implements the ledger that is the single point of truth
// for balance mutation. Every credit, debit and cross-account transfer in
// the system flows through it.
package wallet

import (
	"context"

	"boomstream/internal/domain/entity"
	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/domain/port/persistence"
)

// Ledger validates monetary operations and delegates the actual mutation to
// the account repository, whose updates are atomic at the storage layer.
// When the context carries a unit-of-work transaction the mutation joins it,
// which is how purchases and gifts pair a transfer with their own record.
type Ledger struct {
	uow                persistence.UnitOfWork
	timeProvider       coreport.TimeProvider
	logger             coreport.Logger
	rechargeCapInCents int64
}

// NewLedger creates a wallet ledger. rechargeCap is the largest amount a
// single recharge call may add, formatted like any other amount string.
func NewLedger(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	rechargeCap string,
) (*Ledger, error) {
	capInCents, err := entity.ValidateAndConvertAmount(rechargeCap)
	if err != nil {
		return nil, err
	}

	return &Ledger{
		uow:                uow,
		timeProvider:       timeProvider,
		logger:             logger,
		rechargeCapInCents: capInCents,
	}, nil
}

// Recharge credits an account with the given amount. The amount must be
// positive and must not exceed the per-call cap; both checks happen before
// any state is touched. Returns the account with its new balance.
func (l *Ledger) Recharge(ctx context.Context, accountID uint64, amount string) (*entity.Account, error) {
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	amountInCents, err := entity.ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}
	if amountInCents == 0 {
		return nil, errs.ErrInvalidAmount
	}
	if amountInCents > l.rechargeCapInCents {
		l.logger.Warn("Recharge rejected, amount above cap", map[string]any{
			"account_id": accountID,
			"amount":     amount,
			"cap":        entity.AmountInCentsToString(l.rechargeCapInCents),
		})
		return nil, errs.ErrRechargeLimitExceeded
	}

	account, err := l.uow.GetAccountRepository(ctx).AddBalance(ctx, accountID, amountInCents)
	if err != nil {
		return nil, err
	}

	l.logger.Info("Wallet recharged", map[string]any{
		"account_id":  accountID,
		"amount":      amount,
		"new_balance": account.GetBalance(),
	})
	return account, nil
}

// Transfer moves amountInCents from one account to another as a single
// atomic unit: either both the debit and the credit commit, or neither
// does. The insufficient-balance check is enforced by the storage layer at
// commit time, so two concurrent transfers cannot both spend the same
// balance. If ctx carries a unit-of-work transaction the transfer joins it.
func (l *Ledger) Transfer(ctx context.Context, fromID, toID uint64, amountInCents int64) error {
	if fromID == 0 || toID == 0 {
		return errs.ErrInvalidAccountID
	}
	if fromID == toID {
		return errs.ErrSameAccount
	}
	if amountInCents <= 0 {
		return errs.ErrInvalidAmount
	}

	if err := l.uow.GetAccountRepository(ctx).Transfer(ctx, fromID, toID, amountInCents); err != nil {
		l.logger.Warn("Transfer failed", map[string]any{
			"from_account_id": fromID,
			"to_account_id":   toID,
			"amount":          entity.AmountInCentsToString(amountInCents),
			"error":           err.Error(),
		})
		return errs.NewTransferError(fromID, toID, entity.AmountInCentsToString(amountInCents), err)
	}

	l.logger.Info("Transfer completed", map[string]any{
		"from_account_id": fromID,
		"to_account_id":   toID,
		"amount":          entity.AmountInCentsToString(amountInCents),
	})
	return nil
}

// GetBalance returns an account's balance formatted with 2 decimal places
func (l *Ledger) GetBalance(ctx context.Context, accountID uint64) (string, error) {
	account, err := l.GetAccount(ctx, accountID)
	if err != nil {
		return "", err
	}
	return account.GetBalance(), nil
}

// GetAccount returns the account with its current balance
func (l *Ledger) GetAccount(ctx context.Context, accountID uint64) (*entity.Account, error) {
	return l.uow.GetAccountRepository(ctx).GetByID(ctx, accountID)
}
