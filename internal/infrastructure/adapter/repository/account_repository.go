package repository

import (
	"context"
	"errors"
	"fmt"

	"boomstream/internal/domain/entity"
	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements the AccountRepository interface using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model to an entity
func (r *AccountRepository) modelToEntity(accountModel *model.Account) *entity.Account {
	account := &entity.Account{
		ID:           accountModel.ID,
		Name:         accountModel.Name,
		Email:        accountModel.Email,
		PasswordHash: accountModel.PasswordHash,
	}
	account.SetBalance(accountModel.Balance, r.timeProvider)

	// Keep the stored timestamps; SetBalance touches UpdatedAt
	account.CreatedAt = accountModel.CreatedAt
	account.UpdatedAt = accountModel.UpdatedAt
	return account
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, accountID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account_id": accountID,
		"error":      err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Account not found", map[string]any{
			"account_id": accountID,
		})
		return errs.ErrAccountNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate account operation", map[string]any{
			"account_id": accountID,
		})
		return errs.ErrDuplicateEmail
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).First(&accountModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, id)
	}

	return r.modelToEntity(&accountModel), nil
}

// GetByEmail retrieves an account by its email address
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&accountModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		r.logger.Error("Database error when getting account by email", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&accountModel), nil
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.Account{
		Name:         account.Name,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Balance:      account.Balance(),
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, account.ID)
	}

	account.ID = accountModel.ID

	r.logger.Info("Account created successfully", map[string]any{
		"account_id": account.ID,
		"balance":    account.GetBalance(),
	})
	return nil
}

// AddBalance atomically credits the account and returns its new state.
// The credit is a single UPDATE with a SQL expression, so concurrent
// recharges cannot lose each other's increments.
func (r *AccountRepository) AddBalance(ctx context.Context, id uint64, amountInCents int64) (*entity.Account, error) {
	r.logger.Debug("Adding balance", map[string]any{
		"account_id": id,
		"amount":     entity.AmountInCentsToString(amountInCents),
	})

	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", amountInCents),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return nil, r.handleDatabaseError("adding balance", result.Error, id)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Account not found during balance credit", map[string]any{
			"account_id": id,
		})
		return nil, errs.ErrAccountNotFound
	}

	account, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Balance credited successfully", map[string]any{
		"account_id":  id,
		"amount":      entity.AmountInCentsToString(amountInCents),
		"new_balance": account.GetBalance(),
	})

	return account, nil
}

// Transfer atomically moves amountInCents from one account to the other.
// Both rows are locked in ascending ID order so concurrent transfers in
// opposite directions cannot deadlock. The debit is conditional on the
// balance covering the amount at commit time; an earlier read of the
// balance is never trusted.
func (r *AccountRepository) Transfer(ctx context.Context, fromID, toID uint64, amountInCents int64) error {
	r.logger.Debug("Processing transfer", map[string]any{
		"from_account": fromID,
		"to_account":   toID,
		"amount":       entity.AmountInCentsToString(amountInCents),
	})

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock both rows in ascending ID order
		lockOrder := []uint64{fromID, toID}
		if toID < fromID {
			lockOrder = []uint64{toID, fromID}
		}

		var locked []model.Account
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", lockOrder).
			Order("id ASC").
			Find(&locked)
		if result.Error != nil {
			return result.Error
		}
		if len(locked) != 2 {
			return errs.ErrAccountNotFound
		}

		now := r.timeProvider.Now()

		// Conditional debit: only succeeds when the balance still covers
		// the amount under the lock
		debit := tx.Model(&model.Account{}).
			Where("id = ? AND balance >= ?", fromID, amountInCents).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance - ?", amountInCents),
				"updated_at": now,
			})
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return errs.ErrInsufficientBalance
		}

		credit := tx.Model(&model.Account{}).
			Where("id = ?", toID).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance + ?", amountInCents),
				"updated_at": now,
			})
		if credit.Error != nil {
			return credit.Error
		}
		if credit.RowsAffected == 0 {
			return errs.ErrAccountNotFound
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrInsufficientBalance) || errors.Is(err, errs.ErrAccountNotFound) {
			r.logger.Warn("Transfer rejected", map[string]any{
				"from_account": fromID,
				"to_account":   toID,
				"amount":       entity.AmountInCentsToString(amountInCents),
				"reason":       err.Error(),
			})
			return err
		}
		r.logger.Error("Database error during transfer", map[string]any{
			"from_account": fromID,
			"to_account":   toID,
			"error":        err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Info("Transfer processed successfully", map[string]any{
		"from_account": fromID,
		"to_account":   toID,
		"amount":       entity.AmountInCentsToString(amountInCents),
	})

	return nil
}
