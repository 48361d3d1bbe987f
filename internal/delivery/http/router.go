package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rovyapp/rovy-backend/internal/delivery/http/handler"
	"github.com/rovyapp/rovy-backend/internal/delivery/http/middleware"
)

type Router struct {
	copilotHandler *handler.CoPilotHandler
	eventHandler   *handler.EventHandler
	mapHandler     *handler.MapHandler
	feedHandler    *handler.FeedHandler
	profileHandler *handler.ProfileHandler
	garageHandler  *handler.GarageHandler
	buildHandler   *handler.BuildHandler
	searchHandler  *handler.SearchHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	copilotHandler *handler.CoPilotHandler,
	eventHandler *handler.EventHandler,
	mapHandler *handler.MapHandler,
	feedHandler *handler.FeedHandler,
	profileHandler *handler.ProfileHandler,
	garageHandler *handler.GarageHandler,
	buildHandler *handler.BuildHandler,
	searchHandler *handler.SearchHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		copilotHandler: copilotHandler,
		eventHandler:   eventHandler,
		mapHandler:     mapHandler,
		feedHandler:    feedHandler,
		profileHandler: profileHandler,
		garageHandler:  garageHandler,
		buildHandler:   buildHandler,
		searchHandler:  searchHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidators()

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
		// Public reads
		v1.GET("/garage", r.garageHandler.List)
		v1.GET("/garage/:id", r.garageHandler.GetByID)
		v1.GET("/builds", r.buildHandler.List)
		v1.GET("/builds/:id", r.buildHandler.GetByID)
		v1.GET("/search", r.searchHandler.Search)

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// CoPilot routes
			copilot := protected.Group("/copilot")
			{
				copilot.POST("", r.copilotHandler.UpsertProfile)
				copilot.GET("/me", r.copilotHandler.GetMyProfile)
				copilot.GET("/feed", r.copilotHandler.Feed)
				copilot.POST("/swipe", r.copilotHandler.Swipe)
				copilot.POST("/message", r.copilotHandler.SendMessage)
				copilot.GET("/matches", r.copilotHandler.ListMatches)
				copilot.GET("/inbox", r.copilotHandler.ListInbox)
				copilot.GET("/chats", r.copilotHandler.ListChats)
				copilot.GET("/messages/:userId", r.copilotHandler.ListMessages)
				copilot.GET("/:id", r.copilotHandler.DeepDive)
			}

			// Event routes
			events := protected.Group("/events")
			{
				events.GET("/me", r.eventHandler.ListMine)
				events.GET("/nearby", r.eventHandler.ListNearby)
				events.POST("", r.eventHandler.Create)
				events.DELETE("/:id", r.eventHandler.Delete)
			}

			// Map routes
			mapGroup := protected.Group("/map")
			{
				mapGroup.GET("/nearby", r.mapHandler.Nearby)
				mapGroup.POST("/location", r.mapHandler.UpdateLocation)
			}

			// Dashboard feed routes
			feed := protected.Group("/feed")
			{
				feed.GET("", r.feedHandler.Get)
				feed.POST("/events/:id/pin", r.feedHandler.PinEvent)
				feed.DELETE("/events/:id/pin", r.feedHandler.UnpinEvent)
			}

			// Profile routes
			profiles := protected.Group("/profiles")
			{
				profiles.GET("/me", r.profileHandler.GetMe)
				profiles.POST("/onboarding/complete", r.profileHandler.CompleteOnboarding)
			}

			// Garage routes (writes)
			garage := protected.Group("/garage")
			{
				garage.GET("/me", r.garageHandler.GetMine)
				garage.POST("", r.garageHandler.Create)
				garage.PUT("/:id", r.garageHandler.Update)
				garage.DELETE("/:id", r.garageHandler.Delete)
			}

			// Build routes (writes)
			builds := protected.Group("/builds")
			{
				builds.GET("/me", r.buildHandler.ListMine)
				builds.POST("", r.buildHandler.Create)
				builds.PUT("/:id", r.buildHandler.Update)
				builds.DELETE("/:id", r.buildHandler.Delete)
			}
		}
	}

	return router
}
