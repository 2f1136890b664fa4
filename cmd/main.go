package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"meme-bot/config"
	telegram "meme-bot/internal/api"
	"meme-bot/internal/container"
	"meme-bot/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "error", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn("unknown log level, using info", "level", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Сессии живут в памяти процесса
	sessionRepo := storage.NewMemorySessionRepository()

	// Собираем сервисы приложения
	appContainer, err := container.New(cfg, sessionRepo)
	if err != nil {
		log.Fatal("failed to build services", "error", err)
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatal("failed to create bot", "error", err)
	}

	log.Info("bot is running", "canvas", cfg.Canvas())
	if err := bot.Run(ctx); err != nil {
		log.Fatal("bot error", "error", err)
	}
	log.Info("bot stopped")
}
