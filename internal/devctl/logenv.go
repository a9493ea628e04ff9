package devctl

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"pricememory/internal/logging"
)

var (
	logOut io.Writer = os.Stdout
	logger           = logging.New(logOut, envStr("DEVCTL_LOG_LEVEL", "info"))
)

// SetLogLevel reconfigures the package logger.
func SetLogLevel(level string) {
	logger = logger.Level(logging.ParseLevel(level))
}

// SetLogOutput redirects log lines, keeping the current level.
func SetLogOutput(w io.Writer) {
	lvl := logger.GetLevel()
	logOut = w
	logger = logging.New(w, "info").Level(lvl)
}

// Logger returns the package logger.
func Logger() zerolog.Logger { return logger }

func debug(format string, a ...any) { logger.Debug().Msgf(format, a...) }
func info(format string, a ...any)  { logger.Info().Msgf(format, a...) }
func warn(format string, a ...any)  { logger.Warn().Msgf(format, a...) }
func errl(format string, a ...any)  { logger.Error().Msgf(format, a...) }

// Env helpers
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	s := strings.ToLower(v)
	return s == "1" || s == "true" || s == "yes"
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, err := fmt.Sscanf(v, "%d", &n)
		if err == nil {
			return n
		}
	}
	return def
}

// envDuration accepts Go duration strings ("3s", "500ms").
func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return def
}
