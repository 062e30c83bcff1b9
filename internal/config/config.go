// Package config loads settings for the krc command from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Environment variable names.
const (
	EnvLogLevel    = "KRC_LOG_LEVEL"
	EnvCharset     = "KRC_CHARSET"
	EnvConvert     = "KRC_CONVERT"
	EnvWorkers     = "KRC_WORKERS"
	EnvWatchSettle = "KRC_WATCH_SETTLE"
)

const (
	defaultCharset     = "utf-8"
	defaultWatchSettle = 500 * time.Millisecond
)

// Config holds the command settings. Flags override the loaded values.
type Config struct {
	LogLevel    slog.Level
	Charset     string        // WHATWG label, e.g. "utf-8", "gbk"
	Convert     string        // OpenCC config name, "" = off
	Workers     int           // OpenMany concurrency
	WatchSettle time.Duration // quiet time before a changed file is decoded
}

// Load reads an optional .env file from the working directory, then the
// KRC_* environment variables. Missing values get defaults; malformed
// values are an error.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		LogLevel:    slog.LevelInfo,
		Charset:     defaultCharset,
		Convert:     strings.TrimSpace(getenv(EnvConvert)),
		Workers:     runtime.NumCPU(),
		WatchSettle: defaultWatchSettle,
	}

	if s := strings.TrimSpace(getenv(EnvLogLevel)); s != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	if s := strings.TrimSpace(getenv(EnvCharset)); s != "" {
		if _, err := LookupCharset(s); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvCharset, err)
		}
		cfg.Charset = s
	}

	if s := strings.TrimSpace(getenv(EnvWorkers)); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%s: want a positive integer, got %q", EnvWorkers, s)
		}
		cfg.Workers = n
	}

	if s := strings.TrimSpace(getenv(EnvWatchSettle)); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvWatchSettle, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("%s: negative duration %s", EnvWatchSettle, d)
		}
		cfg.WatchSettle = d
	}

	return cfg, nil
}

// Encoding returns the text encoding named by Charset. UTF-8 maps to nil,
// which the decoder treats as UTF-8 with BOM stripping.
func (c *Config) Encoding() (encoding.Encoding, error) {
	return LookupCharset(c.Charset)
}

// LookupCharset resolves a WHATWG encoding label such as "gbk" or
// "big5". UTF-8 labels return nil.
func LookupCharset(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q", label)
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return nil, nil
	}
	return enc, nil
}
