package telegram

import (
	"context"
	"errors"
	"reflect"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/service"
)

func (h *Handler) handleCallback(_ context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	categories := h.questionService.Categories()

	action, err := parseAction(cb.Data, categories)
	if err != nil {
		h.logger.Warn("invalid callback data",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
		)
		h.answerCallback(cb.ID, msgNotAllowed)
		return
	}

	prev, next, err := h.apply(chatID, action)

	var notice string
	switch {
	case errors.Is(err, service.ErrEmptyName):
		notice = msgEnterName
	case err != nil:
		h.answerCallback(cb.ID, callbackErrorText(err))
		return
	case reflect.DeepEqual(prev, next):
		h.answerCallback(cb.ID, "")
		return
	}

	if err := h.editPage(chatID, cb.Message.MessageID, renderPage(next, categories, notice)); err != nil {
		h.answerCallback(cb.ID, msgInternalError)
		return
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, "")
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}

// callbackErrorText maps a rejected action to the toast shown to the user.
func callbackErrorText(err error) string {
	switch {
	case errors.Is(err, service.ErrNoCategory):
		return msgNoCategory
	case errors.Is(err, service.ErrEmptyCategory):
		return msgEmptyCategory
	case errors.Is(err, service.ErrUnknownCategory):
		return msgUnknownCategory
	case errors.Is(err, service.ErrStaleAction):
		return msgStale
	case errors.Is(err, service.ErrAlreadySubmitted):
		return msgAlreadySubmitted
	case errors.Is(err, service.ErrNotSubmitted):
		return msgNotSubmitted
	default:
		return msgNotAllowed
	}
}
