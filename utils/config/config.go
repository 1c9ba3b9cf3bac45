package config

import (
	"errors"
	"io/fs"
	"time"

	"imperator/api/iapi"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	API_KEY   = "IMPERATOR_API_KEY"
	BASE_URL  = "IMPERATOR_BASE_URL"
	TIMEOUT   = "IMPERATOR_TIMEOUT"
	LOG_LEVEL = "IMPERATOR_LOG_LEVEL"
	BOT_TOKEN = "BOT_TOKEN"
	DB_DIR    = "DB_DIR"
	METRICS   = "METRICS_ADDR"
)

const DEFAULT_TIMEOUT = 8 * time.Second

type Config struct {
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	LogLevel    log.Level
	BotToken    string // Only needed by the bot, so it is never validated here.
	DBDir       string
	MetricsAddr string
}

// Loads variables from the .env file at envPath (if there is one) into the process environment
// and reads the config from it. Variables already set in the environment take precedence.
//
// Every invalid variable is reported, not just the first.
func Load(envPath string) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	cfg := &Config{}

	var err error
	cfg.APIKey, err = GetEnviroVar(API_KEY)
	collect(err)

	cfg.BaseURL, err = OptionalEnviroVar(BASE_URL, iapi.DEFAULT_BASE_URL)
	collect(err)

	cfg.Timeout, err = OptionalEnviroVar(TIMEOUT, DEFAULT_TIMEOUT)
	collect(err)
	if cfg.Timeout < 0 {
		collect(errors.New("IMPERATOR_TIMEOUT must not be negative"))
	}

	level, err := OptionalEnviroVar(LOG_LEVEL, "info")
	collect(err)
	cfg.LogLevel, err = log.ParseLevel(level)
	collect(err)

	cfg.BotToken, _ = OptionalEnviroVar(BOT_TOKEN, "")
	cfg.DBDir, _ = OptionalEnviroVar(DB_DIR, "./db")
	cfg.MetricsAddr, _ = OptionalEnviroVar(METRICS, "")

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return cfg, nil
}
