package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quiz-bot/internal/service"
)

func (h *Handler) handleMessage(ctx context.Context, m *tgbotapi.Message) {
	chatID := m.Chat.ID

	if m.IsCommand() {
		switch m.Command() {
		case "start":
			_ = h.withErrorHandling("start", h.handleShow())(ctx, chatID)

		case "restart":
			_ = h.withErrorHandling("restart", h.handleRestart())(ctx, chatID)

		case "help":
			_ = h.withErrorHandling("help", h.handleHelp())(ctx, chatID)

		default:
			_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
		}

		return
	}

	// Stickers, photos and the like carry no text and are not a name.
	if m.Text == "" {
		return
	}

	_ = h.withErrorHandling("name", h.handleNameInput(m.Text))(ctx, chatID)
}

// handleShow sends the chat's current page as a fresh message.
func (h *Handler) handleShow() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		s := h.sessions.Get(chatID)
		return h.sendPage(chatID, renderPage(s, h.questionService.Categories(), ""))
	}
}

// handleRestart abandons whatever the chat was doing and goes back home.
func (h *Handler) handleRestart() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		_, s, err := h.apply(chatID, service.Restart())
		if err != nil {
			return err
		}
		return h.sendPage(chatID, renderPage(s, h.questionService.Categories(), ""))
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		return h.send(newHTMLMessage(chatID, helpMessage()))
	}
}

// handleNameInput treats free text as the name field of the home page.
func (h *Handler) handleNameInput(text string) HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		_, s, err := h.apply(chatID, service.EnterName(text))
		if errors.Is(err, service.ErrActionNotAllowed) {
			return h.send(newPlainMessage(chatID, msgUseButtons))
		}
		if err != nil {
			return err
		}
		return h.sendPage(chatID, renderPage(s, h.questionService.Categories(), ""))
	}
}
