package telegram

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
)

const elementsPerPage = 15

// handleAllCommand sends the first page of the catalog.
func (h *Handler) handleAllCommand() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		pages, err := h.elementPages(ctx)
		if err != nil {
			return err
		}

		msg := newHTMLMessage(chatID, pages[0])
		if kb := buildPageKeyboard(0, len(pages)); kb != nil {
			msg.ReplyMarkup = *kb
		}
		h.send(msg)

		return nil
	}
}

func (h *Handler) handleElementsCallback(
	ctx context.Context, data callbackData,
) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	if len(data.Params) != 1 {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	page, err := strconv.Atoi(data.Params[0])
	if err != nil || page < 0 {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	pages, err := h.elementPages(ctx)
	if err != nil || page >= len(pages) {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	kb := buildPageKeyboard(page, len(pages))
	if kb == nil {
		return pages[page], tgbotapi.InlineKeyboardMarkup{}, true
	}
	return pages[page], *kb, true
}

func (h *Handler) elementPages(ctx context.Context) ([]string, error) {
	elements, err := h.elementService.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all elements: %w", err)
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("get all elements: empty catalog")
	}

	return buildElementPages(elements), nil
}

// buildElementPages renders the catalog, one element per line.
func buildElementPages(elements []*entities.Element) []string {
	chunks := lo.Chunk(elements, elementsPerPage)
	pages := make([]string, 0, len(chunks))

	for i, chunk := range chunks {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("<b>Tableau périodique (%d/%d)</b>\n", i+1, len(chunks)))
		for _, e := range chunk {
			b.WriteString(fmt.Sprintf("\n%d. <b>%s</b> — %s",
				e.Number, html.EscapeString(e.Symbol), html.EscapeString(e.Name)))
		}
		pages = append(pages, b.String())
	}

	return pages
}

// buildPageKeyboard builds pagination keyboard for the catalog.
func buildPageKeyboard(page, totalPages int) *tgbotapi.InlineKeyboardMarkup {
	if totalPages <= 1 {
		return nil
	}

	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Précédent", buildElementsPageCallback(page-1)))
	}
	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Suivant ▶️", buildElementsPageCallback(page+1)))
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(row)
	return &kb
}
