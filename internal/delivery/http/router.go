package http

import (
	"github.com/gin-gonic/gin"
	"github.com/squadup-app/squadup-backend/internal/delivery/http/handler"
	"github.com/squadup-app/squadup-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler      *handler.AuthHandler
	profileHandler   *handler.ProfileHandler
	discoveryHandler *handler.DiscoveryHandler
	swipeHandler     *handler.SwipeHandler
	ratingHandler    *handler.RatingHandler
	chatHandler      *handler.ChatHandler
	authMiddleware   *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	discoveryHandler *handler.DiscoveryHandler,
	swipeHandler *handler.SwipeHandler,
	ratingHandler *handler.RatingHandler,
	chatHandler *handler.ChatHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:      authHandler,
		profileHandler:   profileHandler,
		discoveryHandler: discoveryHandler,
		swipeHandler:     swipeHandler,
		ratingHandler:    ratingHandler,
		chatHandler:      chatHandler,
		authMiddleware:   authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpsertMyProfile)
				profile.GET("/:user_id", r.profileHandler.GetProfileByUserID)
			}

			// Discovery routes
			discovery := protected.Group("/discovery")
			{
				discovery.POST("/candidates", r.discoveryHandler.GetCandidates)
			}

			// Swipe routes
			swipe := protected.Group("/swipe")
			{
				swipe.POST("", r.swipeHandler.CreateSwipe)
				swipe.GET("/likes-received", r.swipeHandler.GetLikesReceived)
			}

			// Matches
			protected.GET("/matches", r.swipeHandler.GetMatches)

			// Rating routes
			ratings := protected.Group("/ratings")
			{
				ratings.POST("", r.ratingHandler.SubmitRating)
				ratings.GET("/:user_id", r.ratingHandler.GetRatingAverages)
			}

			// Chat routes
			messages := protected.Group("/messages")
			{
				messages.POST("", r.chatHandler.SendMessage)
				messages.GET("/stream", r.chatHandler.StreamMessages)
				messages.GET("/:user_id", r.chatHandler.GetConversation)
			}
		}
	}

	return router
}
