// File: studyplan/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyplan/config"
	"studyplan/cron"
	"studyplan/database"
	capacityRepo "studyplan/database/repository/capacity"
	sessionRepo "studyplan/database/repository/session"
	"studyplan/handlers"
	"studyplan/middleware"
	"studyplan/routes"
	"studyplan/services/planner"
	"studyplan/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	if err := utils.InitCache(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	sessions := sessionRepo.NewMongoSessionRepo()
	if err := sessions.EnsureIndexes(rootCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure session indexes: %v", err)
	}
	capacity := capacityRepo.NewRedisCapacityRepo(utils.GetCacheClient(), config.AppConfig.DefaultDailyCapacity)

	clock := utils.SystemClock{}

	// reminders.
	var reminders planner.ReminderScheduler = cron.NoopReminderScheduler{}
	var worker *asynq.Server
	var queue *asynq.Client
	if config.AppConfig.RemindersEnabled {
		queue = asynq.NewClient(cron.QueueRedisOpt())
		reminders = cron.NewAsynqReminderScheduler(queue, config.ReminderLead(), clock)
		worker = cron.InitReminderWorker(sessions, clock)
	} else {
		logger.Info("Session reminders disabled")
	}

	// services.
	plannerService := planner.NewDefaultPlannerService(sessions, capacity, reminders, clock, config.Location())

	utils.StartHealthMonitor(rootCtx, map[string]utils.Pinger{
		"mongo": utils.PingFunc(database.Ping),
		"redis": utils.PingFunc(func(ctx context.Context) error {
			return utils.GetCacheClient().Ping(ctx).Err()
		}),
	}, 30*time.Second)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlers.NewHandlerBundle(plannerService))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("timezone", config.Location().String()))
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
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		_ = queue.Close()
	}
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}
	_ = utils.GetCacheClient().Close()

	logger.Sugar().Info("main: server stopped gracefully")
}
