package handler

import (
	"net/http"

	domainerr "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/domain/usecase/comment"
	"boomstream/internal/domain/usecase/gift"
	"boomstream/internal/domain/usecase/purchase"
	"boomstream/internal/domain/usecase/video"
	"boomstream/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// VideoHandler handles video-related HTTP requests
type VideoHandler struct {
	videos    *video.UseCase
	purchases *purchase.UseCase
	gifts     *gift.UseCase
	comments  *comment.UseCase
	logger    coreport.Logger
}

// NewVideoHandler creates a new video handler instance
func NewVideoHandler(
	videos *video.UseCase,
	purchases *purchase.UseCase,
	gifts *gift.UseCase,
	comments *comment.UseCase,
	logger coreport.Logger,
) *VideoHandler {
	return &VideoHandler{
		videos:    videos,
		purchases: purchases,
		gifts:     gifts,
		comments:  comments,
		logger:    logger,
	}
}

// Create handles the POST /api/videos endpoint
func (h *VideoHandler) Create(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid video payload: " + err.Error(),
		})
		return
	}

	created, err := h.videos.Create(c.Request.Context(), accountID, req.Title, req.Description, req.Price)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.VideoResponse{
		ID:          created.ID,
		CreatorID:   created.CreatorID,
		Title:       created.Title,
		Description: created.Description,
		Price:       created.GetPrice(),
		CreatedAt:   created.CreatedAt,
	})
}

// List handles the GET /api/videos endpoint
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.videos.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, videosToResponse(videos))
}

// Details handles the GET /api/videos/:videoId endpoint. The metadata is
// public; watching the video goes through Watch.
func (h *VideoHandler) Details(c *gin.Context) {
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	found, err := h.videos.Details(c.Request.Context(), videoID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.VideoResponse{
		ID:          found.ID,
		CreatorID:   found.CreatorID,
		Title:       found.Title,
		Description: found.Description,
		Price:       found.GetPrice(),
		CreatedAt:   found.CreatedAt,
	})
}

// Watch handles the GET /api/videos/:videoId/watch endpoint. Paid videos
// require the caller to be the creator or a purchaser.
func (h *VideoHandler) Watch(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	found, err := h.videos.Get(c.Request.Context(), accountID, videoID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.VideoResponse{
		ID:          found.ID,
		CreatorID:   found.CreatorID,
		Title:       found.Title,
		Description: found.Description,
		Price:       found.GetPrice(),
		CreatedAt:   found.CreatedAt,
	})
}

// Delete handles the PATCH /api/videos/delete/:videoId endpoint
func (h *VideoHandler) Delete(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	if err := h.videos.Delete(c.Request.Context(), accountID, videoID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Purchase handles the POST /api/videos/:videoId/purchase endpoint
func (h *VideoHandler) Purchase(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	record, err := h.purchases.Purchase(c.Request.Context(), accountID, videoID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PurchaseResponse{
		PurchaseID: record.ID,
		VideoID:    record.VideoID,
		CreatedAt:  record.CreatedAt,
	})
}

// Gift handles the POST /api/videos/:videoId/gift endpoint
func (h *VideoHandler) Gift(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	var req dto.GiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid gift payload: " + err.Error(),
		})
		return
	}

	record, err := h.gifts.Gift(c.Request.Context(), accountID, videoID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.GiftResponse{
		GiftID:    record.ID,
		VideoID:   record.VideoID,
		Amount:    record.GetAmount(),
		CreatedAt: record.CreatedAt,
	})
}

// ListGifts handles the GET /api/videos/:videoId/gifts endpoint
func (h *VideoHandler) ListGifts(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	gifts, err := h.gifts.ListByVideo(c.Request.Context(), videoID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.GiftResponse, 0, len(gifts))
	for _, g := range gifts {
		responses = append(responses, dto.GiftResponse{
			GiftID:    g.ID,
			VideoID:   g.VideoID,
			Amount:    g.GetAmount(),
			CreatedAt: g.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// PostComment handles the POST /api/videos/:videoId/comment endpoint
func (h *VideoHandler) PostComment(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid comment payload: " + err.Error(),
		})
		return
	}

	posted, err := h.comments.Post(c.Request.Context(), accountID, videoID, req.Text)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CommentResponse{
		ID:        posted.ID,
		UserID:    posted.UserID,
		VideoID:   posted.VideoID,
		Text:      posted.Text,
		CreatedAt: posted.CreatedAt,
	})
}

// ListComments handles the GET /api/videos/:videoId/comments endpoint
func (h *VideoHandler) ListComments(c *gin.Context) {
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	comments, err := h.comments.ListByVideo(c.Request.Context(), videoID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		responses = append(responses, dto.CommentResponse{
			ID:        cm.ID,
			UserID:    cm.UserID,
			VideoID:   cm.VideoID,
			Text:      cm.Text,
			CreatedAt: cm.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, responses)
}
