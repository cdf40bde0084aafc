package model

import (
	"time"
)

// Purchase represents the database model for purchases. The composite
// unique index enforces at most one purchase per (user, video) pair and is
// what makes concurrent duplicate attempts fail at insert time.
type Purchase struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_purchases_user_video"`
	VideoID   uint64    `gorm:"not null;uniqueIndex:idx_purchases_user_video"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Purchase
func (Purchase) TableName() string {
	return "purchases"
}
