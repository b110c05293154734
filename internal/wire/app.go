package wire

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mithrel/lovelog/internal/config"
	"github.com/mithrel/lovelog/internal/db"
	"github.com/mithrel/lovelog/internal/logbook"
	"github.com/mithrel/lovelog/internal/notify"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg   *viper.Viper
	Log   *zap.Logger
	Store db.Store
	Book  *logbook.Book
}

// BuildApp wires dependencies with the provided config and loads the
// entry collection. A load failure is logged, not fatal: the app comes
// up with whatever state it has (empty on first run).
func BuildApp(ctx context.Context, v *viper.Viper, sink notify.Sink) (*App, error) {
	logger := newLogger()

	store, err := db.Open(ctx, "sqlite://"+config.ResolveDBPath(v))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if sink == nil {
		sink = notify.Discard
	}
	book := logbook.New(store, logbook.Options{
		Logger:      logger,
		Sink:        sink,
		DefaultTags: v.GetStringSlice("default_tags"),
	})
	_ = book.Load(ctx)

	return &App{Cfg: v, Log: logger, Store: store, Book: book}, nil
}

// newLogger builds a console zap logger on stderr so command output on
// stdout stays clean for piping.
func newLogger() *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stderr), zapcore.WarnLevel)
	return zap.New(core)
}
