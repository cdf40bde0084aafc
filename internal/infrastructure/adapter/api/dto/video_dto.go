package dto

import "time"

// CreateVideoRequest represents the API request for publishing a video.
// Price is a string with at most two decimal places; "0" means free.
type CreateVideoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
}

// VideoResponse represents a video in API responses
type VideoResponse struct {
	ID          uint64    `json:"id"`
	CreatorID   uint64    `json:"creatorId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PurchaseResponse represents the API response for a completed purchase
type PurchaseResponse struct {
	PurchaseID uint64    `json:"purchaseId"`
	VideoID    uint64    `json:"videoId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// GiftRequest represents the API request for gifting a creator
type GiftRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// GiftResponse represents the API response for a recorded gift
type GiftResponse struct {
	GiftID    uint64    `json:"giftId"`
	VideoID   uint64    `json:"videoId"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}
