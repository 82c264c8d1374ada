package telegram

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/periodic-quiz-bot/internal/repository"
)

// handleQuiz starts a new round and sends the question with its answer buttons.
func (h *Handler) handleQuiz() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		round, err := h.quizService.GenerateNewQuestion(ctx, chatID)
		if err != nil {
			return fmt.Errorf("generate question: %w", err)
		}

		msg := newHTMLMessage(chatID, renderQuestion(round))
		msg.ReplyMarkup = buildQuestionKeyboard(round)
		h.send(msg)

		return nil
	}
}

// handleElement sends the card of the element with the given symbol or atomic number.
func (h *Handler) handleElement(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		query := strings.TrimSpace(args)
		if query == "" {
			h.send(newHTMLMessage(chatID, msgUseElement))
			return nil
		}

		element, err := h.lookupElement(ctx, query)
		if err != nil {
			if errors.Is(err, repository.ErrElementNotFound) {
				h.send(newHTMLMessage(chatID, fmt.Sprintf(msgElementNotFound, html.EscapeString(query))))
				return nil
			}
			return fmt.Errorf("get element %q: %w", query, err)
		}

		h.sendCard(ctx, chatID, element)
		return nil
	}
}

// handleText answers the pending question when the text names one of its
// options, and otherwise treats the text as an element lookup.
func (h *Handler) handleText(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		answered, err := h.answerFromText(ctx, chatID, text)
		if err != nil || answered {
			return err
		}

		query := strings.TrimSpace(text)
		if query == "" || len(query) > 3 {
			h.send(newHTMLMessage(chatID, msgUseQuiz))
			return nil
		}

		element, err := h.lookupElement(ctx, query)
		if err != nil {
			if errors.Is(err, repository.ErrElementNotFound) {
				h.send(newHTMLMessage(chatID, msgUseQuiz))
				return nil
			}
			return fmt.Errorf("get element %q: %w", query, err)
		}

		h.logger.Debug("element looked up",
			zap.Int64("chat_id", chatID),
			zap.String("symbol", element.Symbol),
		)

		h.sendCard(ctx, chatID, element)
		return nil
	}
}

func (h *Handler) answerFromText(ctx context.Context, chatID int64, text string) (bool, error) {
	current, err := h.quizService.CurrentRound(ctx, chatID)
	if err != nil || current.IsAnswered() {
		return false, nil
	}

	selected, ok := h.matcher.Match(current, text)
	if !ok {
		return false, nil
	}

	round, err := h.quizService.RecordAnswer(ctx, chatID, current.ID, selected.Number)
	if err != nil {
		return false, fmt.Errorf("record answer: %w", err)
	}

	msg := newHTMLMessage(chatID, renderResult(round))
	msg.ReplyMarkup = buildResultKeyboard(round)
	h.send(msg)

	return true, nil
}

// lookupElement resolves an atomic number or a symbol.
func (h *Handler) lookupElement(ctx context.Context, query string) (*entities.Element, error) {
	if number, err := strconv.Atoi(query); err == nil {
		return h.elementService.GetByNumber(ctx, number)
	}
	return h.elementService.GetBySymbol(ctx, query)
}

// sendCard sends the element card unless the element is the target of the
// chat's unanswered round, whose name must stay hidden until it is answered.
func (h *Handler) sendCard(ctx context.Context, chatID int64, element *entities.Element) {
	current, err := h.quizService.CurrentRound(ctx, chatID)
	if err == nil && !current.IsAnswered() && current.Target.Number == element.Number {
		h.send(newHTMLMessage(chatID, msgAnswerFirst))
		return
	}

	h.send(newHTMLMessage(chatID, renderDetail(element.Detail())))
}
