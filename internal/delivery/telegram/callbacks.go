package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/periodic-quiz-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock" with an optional toast.
	toast := ""
	defer func() {
		answer := tgbotapi.NewCallback(cb.ID, toast)
		if _, err := h.bot.Request(answer); err != nil {
			h.logger.Error("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil || cb.Message.Chat == nil {
		return
	}

	data := decodeCallback(cb.Data)
	if len(data.Params) == 0 {
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		return
	}

	var (
		text string
		kb   tgbotapi.InlineKeyboardMarkup
		ok   bool
	)

	switch {
	case data.Action == actionElements:
		text, kb, ok = h.handleElementsCallback(ctx, data)
	case data.Action == actionQuiz && data.Params[0] == quizAnswer:
		text, kb, toast, ok = h.handleAnswerCallback(ctx, cb, data)
	case data.Action == actionQuiz && data.Params[0] == quizNext:
		text, kb, toast, ok = h.handleNextCallback(ctx, cb)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		return
	}

	if !ok {
		return
	}

	h.send(newHTMLEdit(cb.Message.Chat.ID, cb.Message.MessageID, text, kb))
}

func (h *Handler) handleAnswerCallback(
	ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData,
) (string, tgbotapi.InlineKeyboardMarkup, string, bool) {
	if len(data.Params) != 3 {
		h.logger.Warn("invalid answer callback", zap.String("data", cb.Data))
		return "", tgbotapi.InlineKeyboardMarkup{}, "", false
	}

	roundID, err1 := strconv.ParseUint(data.Params[1], 10, 64)
	number, err2 := strconv.Atoi(data.Params[2])
	if err1 != nil || err2 != nil {
		h.logger.Warn("invalid answer callback", zap.String("data", cb.Data))
		return "", tgbotapi.InlineKeyboardMarkup{}, "", false
	}

	chatID := cb.Message.Chat.ID

	round, err := h.quizService.RecordAnswer(ctx, chatID, roundID, number)
	switch {
	case errors.Is(err, entities.ErrRoundAnswered):
		return "", tgbotapi.InlineKeyboardMarkup{}, msgAlreadyAnswered, false
	case errors.Is(err, service.ErrStaleRound),
		errors.Is(err, entities.ErrNotAnOption),
		errors.Is(err, service.ErrNoActiveRound):
		return "", tgbotapi.InlineKeyboardMarkup{}, msgQuestionExpired, false
	case err != nil:
		h.logger.Error("failed to record answer",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return "", tgbotapi.InlineKeyboardMarkup{}, msgInternalError, false
	}

	return renderResult(round), buildResultKeyboard(round), "", true
}

func (h *Handler) handleNextCallback(
	ctx context.Context, cb *tgbotapi.CallbackQuery,
) (string, tgbotapi.InlineKeyboardMarkup, string, bool) {
	chatID := cb.Message.Chat.ID
	round, err := h.quizService.GenerateNewQuestion(ctx, chatID)
	if err != nil {
		h.logger.Error("failed to generate question",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return "", tgbotapi.InlineKeyboardMarkup{}, msgInternalError, false
	}

	return renderQuestion(round), buildQuestionKeyboard(round), "", true
}
