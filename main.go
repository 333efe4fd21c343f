// File: barberpro/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberpro/config"
	"barberpro/cron"
	"barberpro/database"
	appointmentRepo "barberpro/database/repository/appointment"
	catalogRepo "barberpro/database/repository/catalog"
	clientRepo "barberpro/database/repository/client"
	settingsRepo "barberpro/database/repository/settings"
	transactionRepo "barberpro/database/repository/transaction"
	"barberpro/handlers"
	"barberpro/middleware"
	"barberpro/routes"
	"barberpro/services/assistant"
	"barberpro/services/booking"
	"barberpro/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitChatCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	aptRepo := appointmentRepo.NewMongoAppointmentRepo()
	svcRepo := catalogRepo.NewMongoCatalogRepo()
	cliRepo := clientRepo.NewMongoClientRepo()
	setRepo := settingsRepo.NewMongoSettingsRepo()
	txRepo := transactionRepo.NewMongoTransactionRepo()

	// reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()
	cron.InitReminderWorker(aptRepo)

	// assistant core.
	engine := assistant.NewGeminiEngine(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		time.Duration(config.AppConfig.AITimeoutSeconds)*time.Second,
	)
	convStore := assistant.NewRedisConversationStore(utils.GetChatCacheClient(), 30*time.Minute)
	sessions := &assistant.SessionManager{
		Store:    convStore,
		Resolver: assistant.NewResolver(engine, logger),
		Snapshots: &assistant.StoreSnapshotSource{
			Settings:     setRepo,
			Catalog:      svcRepo,
			Appointments: aptRepo,
			Logger:       logger,
		},
		Logger: logger,
	}

	commits := &booking.CommitService{
		Appointments:        aptRepo,
		Reminders:           booking.NewAsynqReminderScheduler(asynqClient),
		Logger:              logger,
		DefaultServiceName:  config.AppConfig.DefaultServiceName,
		DefaultServicePrice: config.AppConfig.DefaultServicePrice,
	}

	chatHandler := handlers.NewChatHandler(sessions, commits, svcRepo, logger)
	aptHandler := handlers.NewAppointmentHandler(aptRepo, cliRepo, logger)
	catHandler := handlers.NewCatalogHandler(svcRepo)
	setHandler := handlers.NewSettingsHandler(setRepo, logger)
	cliHandler := handlers.NewClientHandler(cliRepo)
	txHandler := handlers.NewTransactionHandler(txRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatMessage: chatHandler.HandleMessage,
		ChatAccept:  chatHandler.Accept,
		ChatReset:   chatHandler.Reset,

		ListAppointments:        aptHandler.List,
		CreateAppointment:       aptHandler.Create,
		UpdateAppointmentStatus: aptHandler.UpdateStatus,

		ListServices:  catHandler.List,
		CreateService: catHandler.Create,
		DeleteService: catHandler.Delete,

		GetSettings:    setHandler.Get,
		UpdateSettings: setHandler.Update,

		ListClients:  cliHandler.List,
		CreateClient: cliHandler.Create,

		ListTransactions:  txHandler.List,
		CreateTransaction: txHandler.Create,
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
