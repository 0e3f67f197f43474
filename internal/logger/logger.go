package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/config"
)

const envProduction = "production"

// New builds the application logger: JSON at info level in production,
// console output everywhere else. cfg.Debug forces the debug level.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == envProduction {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	lg, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return lg.With(zap.String("env", cfg.Env)), nil
}
