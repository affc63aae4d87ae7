// File: soulace/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"soulace/config"
	"soulace/cron"
	"soulace/database"
	assessmentRepo "soulace/database/repository/assessment"
	bookingRepo "soulace/database/repository/booking"
	forumRepo "soulace/database/repository/forum"
	journalRepo "soulace/database/repository/journal"
	moodRepo "soulace/database/repository/mood"
	providerRepo "soulace/database/repository/provider"
	slotRepo "soulace/database/repository/slot"
	"soulace/handlers"
	"soulace/middleware"
	"soulace/routes"
	"soulace/services/alert"
	"soulace/services/assessment"
	"soulace/services/booking"
	"soulace/services/chat"
	"soulace/services/forum"
	"soulace/services/wellness"
	"soulace/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitChatContextCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	slots := slotRepo.NewMongoSlotRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	providers := providerRepo.NewMongoProviderRepo()
	moods := moodRepo.NewMongoMoodRepo()
	journals := journalRepo.NewMongoJournalRepo()
	posts := forumRepo.NewMongoForumRepo()
	assessments := assessmentRepo.NewMongoAssessmentRepo()

	// crisis-alert queue.
	alertClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAlertQueueDB,
	})
	defer alertClient.Close()
	alertService := alert.NewAsynqAlertService(alertClient)

	// services.
	bookingEngine := booking.NewDefaultBookingEngine(slots, bookings, providers)
	wellnessService := &wellness.DefaultWellnessService{
		Moods:    moods,
		Journals: journals,
	}
	forumService := forum.NewDefaultForumService(
		posts,
		forum.NewHTTPClassifier(config.AppConfig.ClassifierURL),
		config.AppConfig.ForumFlagThreshold,
		config.AppConfig.ForumBlockThreshold,
	)
	assessmentService := assessment.NewDefaultAssessmentService(assessments, alertService)

	ctxStore := chat.NewRedisContextStore(
		utils.GetChatContextCacheClient(),
		time.Duration(config.AppConfig.ChatContextTTLMin)*time.Minute,
	)
	chatService := chat.NewDefaultChatService(chat.NewHTTPAgent(config.AppConfig.ChatAgentURL), ctxStore)

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingEngine, logger)
	providerHandler := handlers.NewProviderHandler(providers, slots, logger)
	wellnessHandler := handlers.NewWellnessHandler(wellnessService, logger)
	forumHandler := handlers.NewForumHandler(forumService, logger)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, logger)
	chatHandler := handlers.NewChatHandler(chatService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking endpoints.
		BookHandler:          bookingHandler.BookHandler,
		CancelBookingHandler: bookingHandler.CancelBookingHandler,
		ListBookingsHandler:  bookingHandler.ListBookingsHandler,
		AvailabilityHandler:  bookingHandler.AvailabilityHandler,

		// Provider endpoints.
		ListProvidersHandler: providerHandler.ListProvidersHandler,
		SetupSlotsHandler:    providerHandler.SetupSlotsHandler,

		// Wellness endpoints.
		LogMoodHandler:       wellnessHandler.LogMoodHandler,
		MoodHistoryHandler:   wellnessHandler.MoodHistoryHandler,
		MoodSummaryHandler:   wellnessHandler.MoodSummaryHandler,
		WriteJournalHandler:  wellnessHandler.WriteJournalHandler,
		ListJournalHandler:   wellnessHandler.ListJournalHandler,
		DeleteJournalHandler: wellnessHandler.DeleteJournalHandler,

		// Forum endpoints.
		PublishPostHandler: forumHandler.PublishHandler,
		ForumFeedHandler:   forumHandler.FeedHandler,
		FlaggedHandler:     forumHandler.FlaggedHandler,
		ModerateHandler:    forumHandler.ModerateHandler,

		// Assessment endpoints.
		SubmitAssessmentHandler:  assessmentHandler.SubmitHandler,
		AssessmentHistoryHandler: assessmentHandler.HistoryHandler,

		// Chat endpoints.
		ChatHandler:      chatHandler.ConverseHandler,
		ResetChatHandler: chatHandler.ResetChatHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Run the crisis-alert worker alongside the API.
	cron.InitAlertWorker(cron.LogNotifier{})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
