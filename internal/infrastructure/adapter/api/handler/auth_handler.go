package handler

import (
	"net/http"

	"boomstream/internal/domain/entity"
	domainerr "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/domain/usecase/auth"
	"boomstream/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	authService *auth.Service
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService *auth.Service, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

func accountToResponse(account *entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:      account.ID,
		Name:    account.Name,
		Email:   account.Email,
		Balance: account.GetBalance(),
	}
}

// Register handles the POST /api/users/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid registration payload: " + err.Error(),
		})
		return
	}

	account, token, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token:   token,
		Account: accountToResponse(account),
	})
}

// Login handles the POST /api/users/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid login payload: " + err.Error(),
		})
		return
	}

	account, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:   token,
		Account: accountToResponse(account),
	})
}
