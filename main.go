package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mayaya-dev/3awan-caferesto-api/configs"
	"github.com/mayaya-dev/3awan-caferesto-api/pkg/logger"
	"github.com/mayaya-dev/3awan-caferesto-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New("caferesto-api", cfg.LogLevel)
	slog.SetDefault(log)

	if logger.ParseLevel(cfg.LogLevel) > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	// DB
	db, err := configs.ConnectionDB(cfg)
	if err != nil {
		log.Error("database connection failed", slog.String("driver", cfg.DBDriver), slog.Any("error", err))
		os.Exit(1)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.SeedSampleData {
		if err := configs.SeedSampleMenu(db); err != nil {
			log.Error("seed sample menu failed", slog.Any("error", err))
			os.Exit(1)
		}
	}

	r := routes.SetupRouter(db, cfg, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server starting", slog.String("addr", addr), slog.String("db_driver", cfg.DBDriver))
	if err := r.Run(addr); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
