package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"soulace/handlers"
	"soulace/middleware"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SoulAce"})
	})
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/bookings", hb.BookHandler)
		api.DELETE("/bookings/:id", hb.CancelBookingHandler)
		api.GET("/bookings", hb.ListBookingsHandler)
		api.GET("/availability", hb.AvailabilityHandler)
	}
}

// RegisterProviderRoutes registers provider reference data and slot setup.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListProvidersHandler)

		// Slot setup modifies inventory and is restricted to staff.
		api.PUT("/:id/slots", middleware.RequireRole("admin"), hb.SetupSlotsHandler)
	}
}

// RegisterWellnessRoutes registers mood tracking and journaling endpoints.
func RegisterWellnessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/moods", hb.LogMoodHandler)
		api.GET("/moods", hb.MoodHistoryHandler)
		api.GET("/moods/summary", hb.MoodSummaryHandler)
		api.POST("/journal", hb.WriteJournalHandler)
		api.GET("/journal", hb.ListJournalHandler)
		api.DELETE("/journal/:id", hb.DeleteJournalHandler)
	}
}

// RegisterForumRoutes registers the peer-support forum endpoints.
func RegisterForumRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/forum")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/posts", hb.PublishPostHandler)
		api.GET("/posts", hb.ForumFeedHandler)

		moderation := api.Group("")
		moderation.Use(middleware.RequireRole("moderator", "admin"))
		moderation.GET("/posts/flagged", hb.FlaggedHandler)
		moderation.POST("/posts/:id/moderate", hb.ModerateHandler)
	}
}

// RegisterAssessmentRoutes registers self-assessment endpoints.
func RegisterAssessmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assessments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.SubmitAssessmentHandler)
		api.GET("", hb.AssessmentHistoryHandler)
	}
}

// RegisterChatRoutes registers the supportive chatbot endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.ChatHandler)
		api.DELETE("/context", hb.ResetChatHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterWellnessRoutes(r, hb)
	RegisterForumRoutes(r, hb)
	RegisterAssessmentRoutes(r, hb)
	RegisterChatRoutes(r, hb)
}
