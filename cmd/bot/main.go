package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/config"
	"github.com/aliskhannn/quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/infra/postgres"
	pgrepository "github.com/aliskhannn/quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/quiz-bot/internal/infra/sqlite"
	sqliterepository "github.com/aliskhannn/quiz-bot/internal/infra/sqlite/repository"
	"github.com/aliskhannn/quiz-bot/internal/logger"
	"github.com/aliskhannn/quiz-bot/internal/repository"
	"github.com/aliskhannn/quiz-bot/internal/service"
	"github.com/aliskhannn/quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource := newCategorySource(ctx, cfg, lg)
	questionService := service.NewQuestionService(ctx, source, lg)
	closeSource()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Debug
	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	machine := service.NewQuizMachine(questionService.Bank(), service.NewRandomShuffler())

	sessions := storage.NewSessionStorage()
	pages := storage.NewPageMessageStorage()

	handler := telegram.NewHandler(
		bot,
		lg,
		questionService,
		machine,
		sessions,
		pages,
	)

	cleaner := service.NewSessionCleaner(sessions, pages, cfg.Sessions.CleanupSchedule, cfg.Sessions.IdleTTL, lg)
	go cleaner.Start(ctx)

	if err := handler.RegisterCommands(); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		lg.Error("telegram handler stopped with error", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}

// newCategorySource picks the configured question source. The returned func
// releases its resources once the bank has been loaded.
func newCategorySource(ctx context.Context, cfg *config.Config, lg *zap.Logger) (service.CategorySource, func()) {
	switch cfg.Questions.Source {
	case config.SourcePostgres:
		return newPostgresSource(ctx, cfg, lg)
	case config.SourceSQLite:
		return newSQLiteSource(ctx, cfg, lg)
	}
	return repository.NewQuestionRepository(cfg.Questions.JSONPath, lg), func() {}
}

func newPostgresSource(ctx context.Context, cfg *config.Config, lg *zap.Logger) (service.CategorySource, func()) {
	dsn, err := cfg.DB.DSN()
	if err != nil {
		lg.Fatal("database url is not configured", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		// Same degradation as a broken JSON file: no categories, no crash.
		lg.Error("failed to connect to database", zap.Error(err))
		return unavailableSource{err: err}, func() {}
	}

	return pgrepository.NewQuestionRepository(pool), pool.Close
}

func newSQLiteSource(ctx context.Context, cfg *config.Config, lg *zap.Logger) (service.CategorySource, func()) {
	db, err := sqlite.Open(ctx, cfg.Questions.SQLitePath)
	if err != nil {
		lg.Error("failed to open sqlite database", zap.Error(err))
		return unavailableSource{err: err}, func() {}
	}

	return sqliterepository.NewQuestionRepository(db, lg), func() { _ = db.Close() }
}

type unavailableSource struct {
	err error
}

func (s unavailableSource) LoadCategories(context.Context) ([]entities.Category, error) {
	return nil, s.err
}
