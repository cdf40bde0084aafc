package entity

import (
	"strings"
	"time"

	errs "boomstream/internal/domain/error"
)

// MaxCommentLength is the maximum number of characters a comment may contain
const MaxCommentLength = 200

// Comment is a viewer comment on a video. The ID is assigned by the caller
// before persistence (a UUID) so the rate limiter can track the slot the
// comment occupies by durable identity rather than by creation timestamp.
type Comment struct {
	ID        string
	UserID    uint64
	VideoID   uint64
	Text      string
	CreatedAt time.Time
}

// NewComment validates the text and creates a new comment
func NewComment(id string, userID, videoID uint64, text string, createdAt time.Time) (*Comment, error) {
	if userID == 0 || videoID == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.ErrEmptyComment
	}
	if len([]rune(text)) > MaxCommentLength {
		return nil, errs.ErrCommentTooLong
	}

	return &Comment{
		ID:        id,
		UserID:    userID,
		VideoID:   videoID,
		Text:      text,
		CreatedAt: createdAt,
	}, nil
}

// IsOwnedBy reports whether the given account wrote this comment
func (c *Comment) IsOwnedBy(accountID uint64) bool {
	return c.UserID == accountID
}
