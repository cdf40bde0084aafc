package model

import (
	"time"
)

// Comment represents the database model for comments. The primary key is a
// caller-assigned UUID shared with the rate limiter's slot tracking.
type Comment struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    uint64    `gorm:"not null;index"`
	VideoID   uint64    `gorm:"not null;index"`
	Text      string    `gorm:"not null;size:200"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
