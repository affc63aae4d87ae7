// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	BookHandler          gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	AvailabilityHandler  gin.HandlerFunc

	// Provider endpoints
	ListProvidersHandler gin.HandlerFunc
	SetupSlotsHandler    gin.HandlerFunc

	// Wellness endpoints
	LogMoodHandler       gin.HandlerFunc
	MoodHistoryHandler   gin.HandlerFunc
	MoodSummaryHandler   gin.HandlerFunc
	WriteJournalHandler  gin.HandlerFunc
	ListJournalHandler   gin.HandlerFunc
	DeleteJournalHandler gin.HandlerFunc

	// Forum endpoints
	PublishPostHandler gin.HandlerFunc
	ForumFeedHandler   gin.HandlerFunc
	FlaggedHandler     gin.HandlerFunc
	ModerateHandler    gin.HandlerFunc

	// Assessment endpoints
	SubmitAssessmentHandler  gin.HandlerFunc
	AssessmentHistoryHandler gin.HandlerFunc

	// Chat endpoints
	ChatHandler      gin.HandlerFunc
	ResetChatHandler gin.HandlerFunc
}
