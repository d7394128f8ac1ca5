package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"btec_backend/internals/configs"
	database "btec_backend/internals/databases"
	sessionService "btec_backend/internals/features/admin/sessions/service"
	"btec_backend/internals/helpers/blob"
	appLogger "btec_backend/internals/helpers/logger"
	routes "btec_backend/internals/route"
	"btec_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := appLogger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Admin.Defaulted {
		logger.Warn("ADMIN_USER/ADMIN_PASS not set, using built-in defaults; set them before going live")
	}

	// 🔌 DB connect + pool + schema + seeds
	db, err := database.ConnectDB(cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	database.TunePool(db, cfg.Database.Driver, logger)
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
	if err := seeds.RunAllSeeds(db, logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	database.WarmUpQueries(db, logger)

	blobs, err := blob.NewLocalBlobService(cfg.UploadsDir)
	if err != nil {
		logger.Fatal("uploads dir", zap.Error(err))
	}

	sessions := sessionService.NewRegistry(cfg.Admin.Username, cfg.Admin.Password)

	app := routes.NewApp(routes.Deps{
		DB:       db,
		Sessions: sessions,
		Blob:     blobs,
		Log:      logger,
		Config:   cfg,
	})

	// Start server non-blocking
	go func() {
		logger.Info("BTEC server listening", zap.String("port", cfg.Port), zap.String("db", cfg.Database.Driver))
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown: stop HTTP, forget sessions, close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}

	sessions.Close()
	if err := database.Close(db); err != nil {
		logger.Warn("close db", zap.Error(err))
	}
	logger.Info("bye")
}
