package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/service"
)

type Handler struct {
	bot             BotAPI
	logger          *zap.Logger
	questionService QuestionService
	machine         QuizMachine
	sessions        SessionStorage
	pages           PageMessageStorage
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	questionService QuestionService,
	machine QuizMachine,
	sessions SessionStorage,
	pages PageMessageStorage,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		questionService: questionService,
		machine:         machine,
		sessions:        sessions,
		pages:           pages,
	}
}

// RegisterCommands publishes the bot command menu.
func (h *Handler) RegisterCommands() error {
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Show the quiz"},
		{Command: "restart", Description: "Start over from the home page"},
		{Command: "help", Description: "Quiz instructions"},
	}

	_, err := h.bot.Request(tgbotapi.NewSetMyCommands(commands...))
	return err
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

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

	h.handleMessage(ctx, update.Message)
}

// apply runs a through the state machine for the chat's session and stores the result.
func (h *Handler) apply(chatID int64, a service.Action) (prev, next entities.Session, err error) {
	next, err = h.sessions.Update(chatID, func(s entities.Session) (entities.Session, error) {
		prev = s
		return h.machine.Apply(s, a)
	})
	if err != nil {
		h.logger.Debug("action rejected",
			zap.Int64("chat_id", chatID),
			zap.Stringer("action", a.Kind),
			zap.Stringer("page", prev.Page),
			zap.Error(err),
		)
		return prev, next, err
	}

	h.logger.Debug("action applied",
		zap.Int64("chat_id", chatID),
		zap.Stringer("action", a.Kind),
		zap.Stringer("from", prev.Page),
		zap.Stringer("to", next.Page),
		zap.Int("score", next.Score),
	)

	if prev.Page != entities.PageScore && next.Page == entities.PageScore {
		h.logger.Info("quiz completed",
			zap.Int64("chat_id", chatID),
			zap.String("category", next.SelectedCategory),
			zap.Int("score", next.Score),
			zap.Int("total", next.Total()),
		)
	}

	return prev, next, nil
}

// sendPage sends p as a new message and takes the keyboard off the previous page message.
func (h *Handler) sendPage(chatID int64, p page) error {
	msg := newHTMLMessage(chatID, p.Text)
	if p.Keyboard != nil {
		msg.ReplyMarkup = *p.Keyboard
	}

	sent, err := h.bot.Send(msg)
	if err != nil {
		return err
	}

	h.trackPage(chatID, sent.MessageID)
	return nil
}

// editPage replaces the content of an existing page message.
func (h *Handler) editPage(chatID int64, msgID int, p page) error {
	if err := h.send(newHTMLEdit(chatID, msgID, p.Text, p.Keyboard)); err != nil {
		return err
	}

	h.trackPage(chatID, msgID)
	return nil
}

func (h *Handler) trackPage(chatID int64, msgID int) {
	prev, hadPrev := h.pages.UpsertAndGetPrev(chatID, msgID)
	if !hadPrev || prev.MessageID == msgID {
		return
	}

	empty := tgbotapi.NewInlineKeyboardMarkup()
	empty.InlineKeyboard = [][]tgbotapi.InlineKeyboardButton{}
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, prev.MessageID, empty)
	if _, err := h.bot.Request(edit); err != nil {
		h.logger.Debug("failed to clear previous page keyboard",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", prev.MessageID),
			zap.Error(err),
		)
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		// Editing a message to identical content is rejected by the API and is harmless.
		if strings.Contains(err.Error(), "message is not modified") {
			return nil
		}
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
