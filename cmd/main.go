package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"tg_drop_monitor/internal/bot"
	"tg_drop_monitor/internal/pkg/config"
	"tg_drop_monitor/internal/pkg/history"
	"tg_drop_monitor/internal/pkg/session/memory_storage"
	"tg_drop_monitor/internal/pkg/session/usecase"
	"tg_drop_monitor/internal/pkg/transcript"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	store := memory_storage.NewMemoryStorage()
	sessions := usecase.New(store, usecase.OSDirMaker{}, cfg.OutputDir, cfg.GroupWindow())
	buffer := history.NewBuffer(cfg.MessageBufferSize)

	b := bot.New(cfg, sessions, buffer, transcript.NewWriter())
	b.Start()
}
