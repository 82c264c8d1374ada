package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
)

// buildQuestionKeyboard builds one answer button per option.
func buildQuestionKeyboard(round entities.QuizRound) tgbotapi.InlineKeyboardMarkup {
	rows := lo.Map(round.Options, func(o *entities.Element, _ int) []tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(o.Name, buildQuizAnswerCallback(round.ID, o.Number)),
		)
	})
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildResultKeyboard builds the "next question" button coloured by the verdict.
func buildResultKeyboard(round entities.QuizRound) tgbotapi.InlineKeyboardMarkup {
	label := "🟥 Question suivante"
	if round.IsCorrect() {
		label = "🟩 Question suivante"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizNextCallback()),
		),
	)
}
