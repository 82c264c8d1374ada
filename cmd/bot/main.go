package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/periodic-quiz-bot/internal/config"
	"github.com/aliskhannn/periodic-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/periodic-quiz-bot/internal/logger"
	"github.com/aliskhannn/periodic-quiz-bot/internal/repository"
	"github.com/aliskhannn/periodic-quiz-bot/internal/service"
	"github.com/aliskhannn/periodic-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	// The catalog is validated before anything talks to Telegram.
	elementRepo, err := repository.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		lg.Fatal("failed to load element catalog",
			zap.String("path", cfg.CatalogPath),
			zap.Error(err),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := elementRepo.GetAll(ctx)
	if err != nil {
		lg.Fatal("failed to read element catalog", zap.Error(err))
	}

	generator, err := service.NewQuestionGenerator(catalog)
	if err != nil {
		lg.Fatal("failed to create question generator", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Telegram.Debug

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on account",
		zap.String("username", bot.Self.UserName),
		zap.Int("catalog_size", elementRepo.Len()),
	)

	quizService := service.NewQuizService(generator, storage.NewRoundStorage(), lg)
	elementService := service.NewElementService(elementRepo)

	handler := telegram.NewHandler(
		bot,
		lg,
		quizService,
		elementService,
		cfg.Telegram.UpdateTimeout,
	)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler failed", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}
