package dbinit

import (
	"io"
	"os"

	"pricememory/internal/logging"
)

var logger = logging.New(os.Stderr, envStr("DBINIT_LOG_LEVEL", "info"))

// SetLogOutput redirects log lines at the given level.
func SetLogOutput(w io.Writer, level string) { logger = logging.New(w, level) }

func debug(format string, a ...any) { logger.Debug().Msgf(format, a...) }
func info(format string, a ...any)  { logger.Info().Msgf(format, a...) }
func warn(format string, a ...any)  { logger.Warn().Msgf(format, a...) }
func errl(format string, a ...any)  { logger.Error().Msgf(format, a...) }

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
