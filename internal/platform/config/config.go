package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when the environment leaves a key unset.
const (
	DefaultAddr          = ":8080"
	DefaultAPIBaseURL    = "https://masjiderpapi-production.up.railway.app"
	DefaultAPIPath       = "/api/PersonalDetails"
	DefaultSubmitTimeout = 30 * time.Second
	DefaultDraftsPerMin  = 30
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr string
	// DraftsPerMinute caps draft creation per client IP; zero disables it.
	DraftsPerMinute int
}

// Registration describes the remote endpoint submissions are posted to.
type Registration struct {
	BaseURL       string
	Path          string
	SubmitTimeout time.Duration
}

// Logging selects the slog level and handler.
type Logging struct {
	Level  slog.Level
	Format string
}

type Config struct {
	Server       Server
	Registration Registration
	Logging      Logging
}

// Load reads an optional .env file and then builds the config from the
// environment. Variables already set in the environment win over the file.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	cfg := Config{
		Server: Server{
			Addr:            getenv("REGISTRATION_ADDR", DefaultAddr),
			DraftsPerMinute: DefaultDraftsPerMin,
		},
		Registration: Registration{
			BaseURL:       strings.TrimRight(getenv("REGISTRATION_API_BASE_URL", DefaultAPIBaseURL), "/"),
			Path:          getenv("REGISTRATION_API_PATH", DefaultAPIPath),
			SubmitTimeout: DefaultSubmitTimeout,
		},
		Logging: Logging{Level: slog.LevelInfo, Format: "json"},
	}

	if raw := os.Getenv("REGISTRATION_SUBMIT_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid REGISTRATION_SUBMIT_TIMEOUT %q", raw)
		}
		cfg.Registration.SubmitTimeout = d
	}

	if raw := os.Getenv("REGISTRATION_DRAFTS_PER_MINUTE"); raw != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid REGISTRATION_DRAFTS_PER_MINUTE %q", raw)
		}
		cfg.Server.DraftsPerMinute = n
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := cfg.Logging.Level.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
		}
	}

	if raw := os.Getenv("LOG_FORMAT"); raw != "" {
		format := strings.ToLower(strings.TrimSpace(raw))
		if format != "json" && format != "text" {
			return Config{}, fmt.Errorf("invalid LOG_FORMAT %q: want json or text", raw)
		}
		cfg.Logging.Format = format
	}

	if !strings.HasPrefix(cfg.Registration.Path, "/") {
		cfg.Registration.Path = "/" + cfg.Registration.Path
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
