package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignite/moodletter/internal/api"
	"github.com/ignite/moodletter/internal/config"
	"github.com/ignite/moodletter/internal/render"
	"github.com/ignite/moodletter/internal/repository/kv"
	"github.com/ignite/moodletter/internal/service/campaign"
	"github.com/ignite/moodletter/internal/service/directory"
	"github.com/ignite/moodletter/internal/storage"
	"github.com/ignite/moodletter/internal/tracking"
)

func main() {
	log.Println("MoodLetter server starting")

	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	var gateway storage.Gateway
	switch cfg.Storage.Type {
	case "redis":
		gateway, err = storage.NewRedis(ctx, cfg.Storage.RedisAddr, cfg.Storage.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis at %s: %v", cfg.Storage.RedisAddr, err)
		}
		log.Printf("Storage: redis (%s, db %d)", cfg.Storage.RedisAddr, cfg.Storage.RedisDB)
	default:
		gateway, err = storage.NewLocal(cfg.Storage.LocalPath)
		if err != nil {
			log.Fatalf("Failed to open local storage at %s: %v", cfg.Storage.LocalPath, err)
		}
		log.Printf("Storage: local (%s)", cfg.Storage.LocalPath)
	}
	defer gateway.Close()

	directoryService := directory.NewService(kv.NewDirectoryRepository(gateway))
	campaignService := campaign.NewService(kv.NewCampaignRepository(gateway), directoryService)

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("Failed to parse letter templates: %v", err)
	}

	server := api.NewServer(cfg.Server,
		api.NewHandlers(directoryService, campaignService),
		tracking.NewHandler(campaignService, renderer))

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
