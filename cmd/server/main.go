package main

import (
	"log"

	"go.uber.org/zap"

	"esteira-web/internal/apiclient"
	"esteira-web/internal/cache"
	"esteira-web/internal/config"
	"esteira-web/internal/database"
	"esteira-web/internal/handlers"
	"esteira-web/internal/server"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	database.Init(cfg.AuditDSN)

	c := cache.New(cfg.RedisAddr, cfg.RedisPassword, logger)
	defer c.Close()

	api := apiclient.New(cfg.APIBaseURL, logger)
	handlers.Init(api, c, logger)

	r := server.NewRouter(cfg)

	logger.Info("servidor no ar",
		zap.String("porta", cfg.ServerPort),
		zap.String("api", cfg.APIBaseURL),
	)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("servidor caiu", zap.Error(err))
	}
}
