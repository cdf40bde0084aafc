package middleware

import (
	"net/http"
	"strings"

	domainerr "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// accountIDKey is the gin context key carrying the authenticated account ID
const accountIDKey = "accountID"

// TokenVerifier verifies a bearer token and returns the account it belongs to
type TokenVerifier interface {
	VerifyToken(token string) (uint64, error)
}

// Auth middleware requires a valid Bearer token and attaches the caller's
// account ID to the request context
func Auth(verifier TokenVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Missing or malformed authorization header",
			})
			return
		}

		accountID, err := verifier.VerifyToken(token)
		if err != nil {
			logger.Warn("Rejected invalid token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(accountIDKey, accountID)
		c.Next()
	}
}

// AccountID returns the authenticated account ID attached by Auth
func AccountID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(accountIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
