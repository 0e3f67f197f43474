package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/config"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		wantDebug bool
	}{
		{name: "local", cfg: config.Config{Env: "local"}, wantDebug: true},
		{name: "production", cfg: config.Config{Env: "production"}, wantDebug: false},
		{name: "production with debug", cfg: config.Config{Env: "production", Debug: true}, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, err := New(&tt.cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDebug, lg.Core().Enabled(zap.DebugLevel))
			assert.True(t, lg.Core().Enabled(zap.InfoLevel))
		})
	}
}
