package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings configures the requester itself (not the host list it checks).
// Values come from the environment (optionally a .env file) and can be
// overridden by flags.
type Settings struct {
	ConfigPath string        `env:"REQUESTER_CONFIG" envDefault:"./config.yaml"`
	FailFast   bool          `env:"REQUESTER_FAIL_FAST"`
	Probe      bool          `env:"REQUESTER_PROBE"`
	Once       bool          `env:"REQUESTER_ONCE"`
	JSON       bool          `env:"REQUESTER_JSON"`
	Timeout    time.Duration `env:"REQUESTER_TIMEOUT" envDefault:"5s"`
	Lang       string        `env:"REQUESTER_LANG" envDefault:"en"`
	LogLevel   string        `env:"REQUESTER_LOG_LEVEL" envDefault:"info"`
	LogFormat  string        `env:"REQUESTER_LOG_FORMAT" envDefault:"text"`
}

var errParsingSettings = errors.New("failed to parse requester settings")

// loadSettings reads the environment and then applies command line flags.
func loadSettings(args []string) (Settings, error) {
	// The .env file is optional, but a present one must be well formed.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, errors.Join(errParsingSettings, err)
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.Join(errParsingSettings, err)
	}

	fs := flag.NewFlagSet("requester", flag.ContinueOnError)
	fs.StringVar(&s.ConfigPath, "config", s.ConfigPath, "path to the YAML or JSON config file")
	fs.BoolVar(&s.FailFast, "fail-fast", s.FailFast, "stop at the first config error instead of accumulating all of them")
	fs.BoolVar(&s.Probe, "probe", s.Probe, "check that every configured URL is reachable while validating")
	fs.BoolVar(&s.Once, "once", s.Once, "request every host once and exit")
	fs.BoolVar(&s.JSON, "json", s.JSON, "print config errors as JSON")
	fs.DurationVar(&s.Timeout, "timeout", s.Timeout, "timeout of a single request")
	fs.StringVar(&s.Lang, "lang", s.Lang, "message language (en, ja)")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&s.LogFormat, "log-format", s.LogFormat, "log format (text, json)")
	if err := fs.Parse(args); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", errParsingSettings, err)
	}
	return s, nil
}
