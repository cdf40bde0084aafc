package dto

import "time"

// CommentRequest represents the API request for posting a comment
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID        string    `json:"id"`
	UserID    uint64    `json:"userId"`
	VideoID   uint64    `json:"videoId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
