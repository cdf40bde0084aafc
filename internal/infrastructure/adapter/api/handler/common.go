package handler

import (
	"net/http"
	"strconv"

	domainerr "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/infrastructure/adapter/api/dto"
	"boomstream/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// respondError writes the standard error payload for a domain error, using
// the error taxonomy's HTTP mapping. Server-side failures are logged;
// client errors are already logged where they were detected.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := domainerr.HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}

// callerID extracts the authenticated account ID; the auth middleware
// guarantees presence on protected routes
func callerID(c *gin.Context) (uint64, bool) {
	id, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Authentication required",
		})
	}
	return id, ok
}

// pathID parses a numeric path parameter
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid " + name + " format",
		})
		return 0, false
	}
	return id, true
}
