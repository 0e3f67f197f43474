package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/service"
	"github.com/aliskhannn/quiz-bot/internal/storage"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type QuestionService interface {
	Categories() []string
}

type QuizMachine interface {
	Apply(s entities.Session, a service.Action) (entities.Session, error)
}

type SessionStorage interface {
	Get(chatID int64) entities.Session
	Update(chatID int64, fn func(entities.Session) (entities.Session, error)) (entities.Session, error)
}

type PageMessageStorage interface {
	UpsertAndGetPrev(chatID int64, messageID int) (storage.PageMessage, bool)
}
