// File: clinicdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicdesk/config"
	"clinicdesk/database"
	memoRepo "clinicdesk/database/repository/memo"
	recurringRepo "clinicdesk/database/repository/recurring"
	specialRepo "clinicdesk/database/repository/special"
	"clinicdesk/handlers"
	"clinicdesk/middleware"
	"clinicdesk/routes"
	"clinicdesk/services/holiday"
	"clinicdesk/services/schedule"
	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	recRepo := recurringRepo.NewMongoRecurringRepo()
	spRepo := specialRepo.NewMongoSpecialRepo()
	mRepo := memoRepo.NewMongoMemoRepo()

	// services.
	oracle := holiday.NewCalendar()
	bulkManager := &schedule.BulkManager{
		Recurring:     recRepo,
		Special:       spRepo,
		Pacing:        time.Duration(config.AppConfig.BulkWritePacingMs) * time.Millisecond,
		EnvelopeStart: config.AppConfig.BulkEnvelopeStart,
		EnvelopeEnd:   config.AppConfig.BulkEnvelopeEnd,
	}
	scheduleService := &schedule.DefaultScheduleService{
		Recurring: recRepo,
		Special:   spRepo,
		Memo:      mRepo,
		Oracle:    oracle,
		Bulk:      bulkManager,
		Cache:     utils.GetCacheClient(),
		MinHour:   config.AppConfig.ScheduleMinHour,
		MaxHour:   config.AppConfig.ScheduleMaxHour,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	bulkHandler := handlers.NewBulkHandler(scheduleService)
	memoHandler := handlers.NewMemoHandler(scheduleService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetDayHandler:          scheduleHandler.GetDayHandler,
		GetMonthHandler:        scheduleHandler.GetMonthHandler,
		ListRecurringHandler:   scheduleHandler.ListRecurringHandler,
		CreateRecurringHandler: scheduleHandler.CreateRecurringHandler,
		UpdateRecurringHandler: scheduleHandler.UpdateRecurringHandler,
		DeleteRecurringHandler: scheduleHandler.DeleteRecurringHandler,

		ApplyWeekdayTemplateHandler: bulkHandler.ApplyWeekdayTemplateHandler,
		CloseWeekdayHandler:         bulkHandler.CloseWeekdayHandler,
		SetSaturdayHandler:          bulkHandler.SetSaturdayHandler,
		ConvertSpecialHandler:       bulkHandler.ConvertSpecialHandler,
		RemoveSpecialHandler:        bulkHandler.RemoveSpecialHandler,

		GetMemoHandler:    memoHandler.GetMemoHandler,
		SaveMemoHandler:   memoHandler.SaveMemoHandler,
		DeleteMemoHandler: memoHandler.DeleteMemoHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
