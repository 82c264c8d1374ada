package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
)

// Bot is the part of the Bot API client the handler uses.
// *tgbotapi.BotAPI satisfies it.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type QuizService interface {
	GenerateNewQuestion(ctx context.Context, chatID int64) (entities.QuizRound, error)
	RecordAnswer(ctx context.Context, chatID int64, roundID uint64, number int) (entities.QuizRound, error)
	CurrentRound(ctx context.Context, chatID int64) (entities.QuizRound, error)
}

type ElementService interface {
	GetByNumber(ctx context.Context, number int) (*entities.Element, error)
	GetBySymbol(ctx context.Context, symbol string) (*entities.Element, error)
	GetAll(ctx context.Context) ([]*entities.Element, error)
}
