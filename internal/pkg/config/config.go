package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	DataDir   string `env:"DATA_DIR,  default=./data"`

	Auth  AuthConfig
	Timer TimerConfig
}

// AuthConfig holds the single accepted credential pair. The defaults mirror
// the shipped demo account.
type AuthConfig struct {
	AdminEmail    string        `env:"ADMIN_EMAIL,    default=admin@admin.com"`
	AdminPassword string        `env:"ADMIN_PASSWORD, default=123456"`
	TokenTTL      time.Duration `env:"TOKEN_TTL,      default=24h"`
}

type TimerConfig struct {
	// TickInterval is the live elapsed-time refresh period while a session
	// runs; presentation-only.
	TickInterval time.Duration `env:"TIMER_TICK_INTERVAL, default=100ms"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
