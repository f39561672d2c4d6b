// @title Daily Quiz API
// @version 1.0
// @description Backend server for the daily quiz training platform.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"daily_quiz_backend/internal/app"
	"daily_quiz_backend/internal/config"
	"daily_quiz_backend/pkg/configwatcher"
	"daily_quiz_backend/pkg/logger"
	"flag"
	"log"
	"path/filepath"

	"go.uber.org/zap"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force database migrations on startup (even in release mode)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	watcher, err := configwatcher.Watch(filepath.Join("configs", "config.yaml"), func() {
		fresh, err := config.LoadConfig("configs")
		if err != nil {
			logger.Log.Error("config reload failed", zap.Error(err))
			return
		}
		application.ApplyConfig(fresh)
	})
	if err != nil {
		logger.Log.Warn("config watcher unavailable", zap.Error(err))
	} else {
		defer watcher.Close()
	}

	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	application.Run()
}
