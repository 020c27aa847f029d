package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sethvargo/go-githubactions"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Totarae/akamai-purge/internal/client"
	"github.com/Totarae/akamai-purge/internal/config"
	"github.com/Totarae/akamai-purge/internal/model"
	"github.com/Totarae/akamai-purge/internal/reporter"
	"github.com/Totarae/akamai-purge/internal/service"
)

type purger interface {
	Run(ctx context.Context, cfg *config.Config) (*model.PurgeResult, error)
}

type resultReporter interface {
	Succeeded(res *model.PurgeResult)
	Failed(err error)
}

func main() {
	action := githubactions.New()

	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		action.Fatalf("%s", reporter.FailureMessage(err))
	}
	cfg.Mask(action.AddMask)

	logger, err := newLogger(cfg.LogLevel, os.Getenv("RUNNER_DEBUG") == "1")
	if err != nil {
		action.Fatalf("%s", reporter.FailureMessage(err))
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	logger.Info("configuration loaded", cfg.Fields()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	svc := service.NewPurgeService(client.NewAkamaiClient(cfg, logger), logger)
	err = execute(ctx, svc, reporter.New(action), cfg)
	stop()
	if err != nil {
		logger.Fatal("purge failed", zap.Error(err))
	}
	_ = logger.Sync()
}

// execute выполняет один запуск и сообщает результат. Все ошибки, включая
// панику, перехватываются здесь.
func execute(ctx context.Context, svc purger, rep resultReporter, cfg *config.Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("unexpected failure: %v", r)
			}
			rep.Failed(err)
		}
	}()

	res, err := svc.Run(ctx, cfg)
	if err != nil {
		rep.Failed(err)
		return err
	}
	rep.Succeeded(res)
	return nil
}

// newLogger собирает production-логгер zap с уровнем из LOG_LEVEL.
// В режиме отладки раннера уровень всегда debug.
func newLogger(level string, debug bool) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	if debug {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
