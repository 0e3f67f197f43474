package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownQuestionSource       = errors.New("unknown questions source")
	ErrInvalidSessionTTL           = errors.New("session idle ttl must be positive")
	ErrInvalidCleanupSchedule      = errors.New("invalid session cleanup schedule")
)

// Question sources.
const (
	SourceJSON     = "json"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"`       // current application environment (local, dev, production etc)
	Debug            bool      `mapstructure:"debug"`     // log raw Bot API traffic
	TelegramAPIToken string    `mapstructure:"-"`         // Telegram API token loaded from environment
	Questions        Questions `mapstructure:"questions"` // question bank source
	DB               DB        `mapstructure:"database"`  // database configuration section
	Sessions         Sessions  `mapstructure:"sessions"`  // in-memory session eviction
}

// Questions selects where the question bank is read from.
type Questions struct {
	Source     string `mapstructure:"source"`      // json, postgres or sqlite
	JSONPath   string `mapstructure:"json_path"`   // path to the JSON question file
	SQLitePath string `mapstructure:"sqlite_path"` // path to the SQLite database file
}

// Sessions controls eviction of idle in-memory quiz sessions.
type Sessions struct {
	IdleTTL         time.Duration `mapstructure:"idle_ttl"`         // a chat idle for longer is forgotten
	CleanupSchedule string        `mapstructure:"cleanup_schedule"` // cron spec for the eviction job
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Values already present in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("debug", false)
	v.SetDefault("questions.source", SourceJSON)
	v.SetDefault("questions.json_path", "assets/data/quiz_questions.json")
	v.SetDefault("questions.sqlite_path", "data/quiz.db")
	v.SetDefault("database.max_connections", 4)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("sessions.idle_ttl", "24h")
	v.SetDefault("sessions.cleanup_schedule", "*/15 * * * *")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}

	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Sessions.IdleTTL <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSessionTTL, c.Sessions.IdleTTL)
	}

	if _, err := cron.ParseStandard(c.Sessions.CleanupSchedule); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidCleanupSchedule, c.Sessions.CleanupSchedule, err)
	}

	c.Questions.Source = strings.ToLower(strings.TrimSpace(c.Questions.Source))

	switch c.Questions.Source {
	case SourceJSON, SourceSQLite:
		return nil
	case SourcePostgres:
		if c.DB.URL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required for the %s source",
				ErrMissingEnvironmentVariables, SourcePostgres)
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownQuestionSource, c.Questions.Source)
}
