package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/periodic-quiz-bot/internal/service"
)

// Commands are registered in the Telegram client menu.
var Commands = []tgbotapi.BotCommand{
	{
		Command:     "start",
		Description: "Lancer le quiz",
	},
	{
		Command:     "quiz",
		Description: "Nouvelle question",
	},
	{
		Command:     "all",
		Description: "Parcourir le tableau périodique",
	},
	{
		Command:     "element",
		Description: "Fiche d'un élément (utilisation : /element Fe ou /element 26)",
	},
	{
		Command:     "help",
		Description: "Aide",
	},
}

type Handler struct {
	bot            Bot
	logger         *zap.Logger
	quizService    QuizService
	elementService ElementService
	matcher        *service.AnswerMatcher
	updateTimeout  int
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	quizService QuizService,
	elementService ElementService,
	updateTimeout int,
) *Handler {
	return &Handler{
		bot:            bot,
		logger:         logger,
		quizService:    quizService,
		elementService: elementService,
		matcher:        service.NewAnswerMatcher(),
		updateTimeout:  updateTimeout,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = h.updateTimeout

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			h.send(newHTMLMessage(chatID, msgWelcome))
			_ = h.withErrorHandling("start", h.handleQuiz())(ctx, chatID)

		case "quiz":
			_ = h.withErrorHandling("quiz", h.handleQuiz())(ctx, chatID)

		case "all":
			_ = h.withErrorHandling("all", h.handleAllCommand())(ctx, chatID)

		case "element":
			_ = h.withErrorHandling("element", h.handleElement(update.Message.CommandArguments()))(ctx, chatID)

		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))

		default:
			h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}

		return
	}

	_ = h.withErrorHandling("text", h.handleText(update.Message.Text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newHTMLMessage(chatID, err)
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
