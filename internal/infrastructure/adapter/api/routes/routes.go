package routes

import (
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/infrastructure/adapter/api/handler"
	"boomstream/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	videoHandler *handler.VideoHandler,
	verifier middleware.TokenVerifier,
	logger coreport.Logger,
) {
	api := router.Group("/api")

	// Public routes: browsing the catalog needs no account
	api.POST("/users/register", authHandler.Register)
	api.POST("/users/login", authHandler.Login)
	api.GET("/videos", videoHandler.List)
	api.GET("/videos/:videoId", videoHandler.Details)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.Auth(verifier, logger))
	{
		userRoutes := authed.Group("/users")
		{
			userRoutes.POST("/recharge-wallet", userHandler.RechargeWallet)
			userRoutes.GET("/nav-details", userHandler.NavDetails)
			userRoutes.GET("/my-videos", userHandler.MyVideos)
			userRoutes.GET("/my-purchases", userHandler.MyPurchases)
			userRoutes.DELETE("/comment/:commentId", userHandler.DeleteComment)
		}

		videoRoutes := authed.Group("/videos")
		{
			videoRoutes.POST("", videoHandler.Create)
			videoRoutes.GET("/:videoId/watch", videoHandler.Watch)
			videoRoutes.PATCH("/delete/:videoId", videoHandler.Delete)
			videoRoutes.POST("/:videoId/purchase", videoHandler.Purchase)
			videoRoutes.POST("/:videoId/gift", videoHandler.Gift)
			videoRoutes.GET("/:videoId/gifts", videoHandler.ListGifts)
			videoRoutes.POST("/:videoId/comment", videoHandler.PostComment)
			videoRoutes.GET("/:videoId/comments", videoHandler.ListComments)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
