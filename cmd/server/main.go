package main

import (
	"context"
	"log"
	"os"

	"go-konkurs-assistant/internal/config"
	"go-konkurs-assistant/internal/models"
	"go-konkurs-assistant/internal/pipeline"
	"go-konkurs-assistant/internal/server"
)

func main() {
	cfg := config.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := server.New(cfg, func(ctx context.Context, apiKey, phrase string, scrolls int) ([]models.ResultRow, error) {
		return pipeline.RunSearch(ctx, cfg, apiKey, phrase, scrolls)
	})

	log.Printf("Server listening on port %s", port)
	if err := srv.Router().Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
