package model

import (
	"time"
)

// Gift represents the database model for the append-only gift log
type Gift struct {
	ID        uint64    `gorm:"primaryKey"`
	FromID    uint64    `gorm:"not null;index"`
	ToID      uint64    `gorm:"not null;index"`
	VideoID   uint64    `gorm:"not null;index"`
	Amount    int64     `gorm:"not null"` // Amount in cents
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Gift
func (Gift) TableName() string {
	return "gifts"
}
