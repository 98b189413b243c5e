package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	reqctx "github.com/baechuer/grandveggie/internal/pkg/context"
)

const serviceName = "grandveggie"

var Logger zerolog.Logger

func Init() {
	InitWithWriter(os.Stdout)
}

// InitWithWriter configures Logger from LOG_LEVEL (default info) and
// LOG_FORMAT ("json" or "console", default console).
func InitWithWriter(w io.Writer) {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if os.Getenv("LOG_FORMAT") != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	Logger = zerolog.New(out).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger().
		Level(level)

	zlog.Logger = Logger
}

// WithCtx returns Logger tagged with the request id carried by ctx, if any.
// The result is a pointer so level methods can be chained on the call.
func WithCtx(ctx context.Context) *zerolog.Logger {
	rid := reqctx.GetRequestID(ctx)
	if rid == "" {
		lg := Logger
		return &lg
	}
	lg := Logger.With().Str("request_id", rid).Logger()
	return &lg
}
