package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kiosk/config"
	"kiosk/jobs"
	"kiosk/routes"
	"kiosk/services"
	"kiosk/services/logger"
	"kiosk/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewZapLogger(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store, err := config.InitStorage(cfg, appLogger)
	if err != nil {
		fatal(appLogger, "Failed to initialize storage: %v", err)
	}

	router, m, c, err := config.InitApp(cfg, appLogger)
	if err != nil {
		fatal(appLogger, "Failed to initialize app: %v", err)
	}

	checkinService := services.NewCheckinService(services.CheckinServiceOptions{
		Store:    store,
		Logger:   appLogger,
		Notifier: config.InitFeed(router, cfg, m, appLogger),
	})

	sweeper, _ := store.(storage.OrphanSweeper)
	if err := jobs.InitCronJobs(c, cfg.OrphanSweepSpec, sweeper, cfg.OrphanGrace, appLogger); err != nil {
		fatal(appLogger, "Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, cfg, checkinService, appLogger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running on http://localhost:%s", cfg.Port)
		appLogger.Info("QR Code available at http://localhost:%s/qr", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(appLogger, "Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	<-c.Stop().Done()
	_ = m.Close()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown: %v", err)
	}
}

type syncLogger interface {
	logger.Logger
	Sync()
}

var exit = os.Exit

// fatal thay cho log.Fatalf khi logger đã có: os.Exit bỏ qua defer nên phải Sync trước
func fatal(appLogger syncLogger, format string, v ...interface{}) {
	appLogger.Error(format, v...)
	appLogger.Sync()
	exit(1)
}
