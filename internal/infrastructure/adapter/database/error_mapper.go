package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "boomstream/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeAccount represents the account entity
	EntityTypeAccount EntityType = "account"
	// EntityTypeVideo represents the video entity
	EntityTypeVideo EntityType = "video"
	// EntityTypePurchase represents the purchase entity
	EntityTypePurchase EntityType = "purchase"
	// EntityTypeGift represents the gift entity
	EntityTypeGift EntityType = "gift"
	// EntityTypeComment represents the comment entity
	EntityTypeComment EntityType = "comment"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Check for common GORM errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	// Check for PostgreSQL specific errors
	errMsg := strings.ToLower(err.Error())

	switch {
	// Duplicate key errors. The purchases unique index carries the
	// (user_id, video_id) pair; accounts are unique on email.
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		if strings.Contains(errMsg, "purchase") {
			return domainErr.ErrDuplicatePurchase
		}
		if strings.Contains(errMsg, "email") || strings.Contains(errMsg, "account") {
			return domainErr.ErrDuplicateEmail
		}
		return domainErr.ErrConstraintViolation

	// Constraint violations
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrConstraintViolation

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	// Default error
	default:
		return domainErr.ErrInternalServer
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeAccount:
			return domainErr.ErrAccountNotFound
		case EntityTypeVideo:
			return domainErr.ErrVideoNotFound
		case EntityTypeComment:
			return domainErr.ErrCommentNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}
