package handler

import (
	"net/http"

	"boomstream/internal/domain/entity"
	domainerr "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/domain/usecase/comment"
	"boomstream/internal/domain/usecase/purchase"
	"boomstream/internal/domain/usecase/video"
	"boomstream/internal/domain/usecase/wallet"
	"boomstream/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles account-scoped HTTP requests
type UserHandler struct {
	ledger    *wallet.Ledger
	videos    *video.UseCase
	purchases *purchase.UseCase
	comments  *comment.UseCase
	logger    coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	ledger *wallet.Ledger,
	videos *video.UseCase,
	purchases *purchase.UseCase,
	comments *comment.UseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		ledger:    ledger,
		videos:    videos,
		purchases: purchases,
		comments:  comments,
		logger:    logger,
	}
}

// RechargeWallet handles the POST /api/users/recharge-wallet endpoint
func (h *UserHandler) RechargeWallet(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid recharge payload: " + err.Error(),
		})
		return
	}

	account, err := h.ledger.Recharge(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.WalletResponse{
		AccountID: account.ID,
		Balance:   account.GetBalance(),
	})
}

// NavDetails handles the GET /api/users/nav-details endpoint
func (h *UserHandler) NavDetails(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	account, err := h.ledger.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NavDetailsResponse{
		Name:    account.Name,
		Balance: account.GetBalance(),
	})
}

// MyVideos handles the GET /api/users/my-videos endpoint
func (h *UserHandler) MyVideos(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	videos, err := h.videos.ListByCreator(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, videosToResponse(videos))
}

// MyPurchases handles the GET /api/users/my-purchases endpoint
func (h *UserHandler) MyPurchases(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	purchases, err := h.purchases.ListByUser(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		responses = append(responses, dto.PurchaseResponse{
			PurchaseID: p.ID,
			VideoID:    p.VideoID,
			CreatedAt:  p.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// DeleteComment handles the DELETE /api/users/comment/:commentId endpoint
func (h *UserHandler) DeleteComment(c *gin.Context) {
	accountID, ok := callerID(c)
	if !ok {
		return
	}

	commentID := c.Param("commentId")
	if commentID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Missing comment ID",
		})
		return
	}

	if err := h.comments.Delete(c.Request.Context(), accountID, commentID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func videosToResponse(videos []*entity.Video) []dto.VideoResponse {
	responses := make([]dto.VideoResponse, 0, len(videos))
	for _, v := range videos {
		responses = append(responses, dto.VideoResponse{
			ID:          v.ID,
			CreatorID:   v.CreatorID,
			Title:       v.Title,
			Description: v.Description,
			Price:       v.GetPrice(),
			CreatedAt:   v.CreatedAt,
		})
	}
	return responses
}
