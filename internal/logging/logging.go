package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelinom/vidgate/internal/config"
)

// Setup configures the global zerolog logger. With a file configured the
// output rotates daily and old segments expire after a week; otherwise
// everything goes to stderr.
func Setup(cfg config.LoggingConfig) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var w io.Writer = os.Stderr
	if cfg.File != "" {
		rl, err := rotatelogs.New(
			cfg.File+".%Y%m%d",
			rotatelogs.WithLinkName(cfg.File),
			rotatelogs.WithRotationTime(24*time.Hour),
			rotatelogs.WithMaxAge(7*24*time.Hour),
		)
		if err != nil {
			return fmt.Errorf("failed to open rotating log file: %w", err)
		}
		w = rl
	}

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}
