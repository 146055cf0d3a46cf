package main

import (
	"log"
	"log/slog"
	"net/http"
	"time"

	"pacifisai/internal/util"
	"pacifisai/pkg/events"
	"pacifisai/pkg/storage"
	"pacifisai/services/agent/internal/app"
	"pacifisai/services/agent/internal/config"
	"pacifisai/services/agent/internal/server"
)

func main() {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.InitLogger(cfg.LogLevel)

	var publisher events.Publisher
	if cfg.RabbitURL != "" {
		rabbit, err := events.NewRabbitPublisher(events.RabbitConfig{
			URL:      cfg.RabbitURL,
			Exchange: cfg.RabbitExchange,
		})
		if err != nil {
			log.Fatalf("failed to init event publisher: %v", err)
		}
		defer rabbit.Close()
		publisher = rabbit
	}

	var archive app.TranscriptArchive
	if cfg.MinioEndpoint != "" {
		objects, err := storage.NewObjectStore(
			cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
			cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatalf("failed to init object store: %v", err)
		}
		archive = objects
	}

	appCore, err := app.New(app.Config{
		DatabaseURL: cfg.DatabaseURL,
		Publisher:   publisher,
		Archive:     archive,
	})
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	httpServer := server.New(server.Config{
		App: appCore,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("agent server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
	}
}
