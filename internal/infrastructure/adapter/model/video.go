package model

import (
	"time"
)

// Video represents the database model for videos
type Video struct {
	ID          uint64    `gorm:"primaryKey"`
	CreatorID   uint64    `gorm:"not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Price       int64     `gorm:"not null"` // Price in cents; 0 means free
	IsDeleted   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Video
func (Video) TableName() string {
	return "videos"
}
