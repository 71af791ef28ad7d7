package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gonzen2310/singlylinkedlist/internal/config"
	"github.com/gonzen2310/singlylinkedlist/internal/shell"
	"github.com/gonzen2310/singlylinkedlist/list"
	"github.com/gonzen2310/singlylinkedlist/log"
)

// sessionLogger tags every record with the session id.
type sessionLogger struct {
	log.Logger
	id string
}

func (l sessionLogger) Log(ctx context.Context, msg string, fields ...log.Field) {
	l.Logger.Log(ctx, msg, append(append(make([]log.Field, 0, len(fields)+1), fields...),
		log.String("session", l.id),
	)...)
}

func newLogger(cfg *config.Config, session uuid.UUID, w io.Writer) (log.Logger, func()) {
	if !cfg.Zap {
		opts := []log.Option{log.WithMinLevel(cfg.LogLevel)}
		if cfg.Coloring {
			opts = append(opts, log.WithColoring())
		}

		return sessionLogger{Logger: log.Default(w, opts...), id: session.String()}, func() {}
	}

	ec := zap.NewProductionEncoderConfig()
	ec.CallerKey = zapcore.OmitKey
	zl := zap.New(
		zapcore.NewCore(zapcore.NewJSONEncoder(ec), zapcore.AddSync(w), zapcore.DebugLevel),
	).With(zap.Stringer("session", session))

	return log.Zap(zl, log.WithZapMinLevel(cfg.LogLevel)), func() { _ = zl.Sync() }
}

func main() {
	cfg, err := config.New(os.Args[1:], os.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "create config failed: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	session := uuid.New()
	logger, flush := newLogger(cfg, session, os.Stderr)
	defer flush()

	logger.Log(log.WithLevel(ctx, log.INFO), "session started",
		log.Stringer("mode", cfg.Mode),
	)

	l := list.New[int](list.WithTrace(log.List(logger, cfg.Details)))

	switch cfg.Mode {
	case config.InteractiveMode:
		err = shell.Interactive(ctx, os.Stdin, os.Stdout, l)
	default:
		err = shell.Demo(os.Stdout, l)
	}
	if err != nil {
		logger.Log(log.WithLevel(ctx, log.ERROR), "session failed", log.Error(err))
		fmt.Fprintln(os.Stderr, err)
		flush()
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}
