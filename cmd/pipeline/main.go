package main

import (
	"context"
	"flag"
	"fmt"
	gohttp "net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/brokeratlas/broker-compare/internal/app/pipeline"
	"github.com/brokeratlas/broker-compare/internal/pkg/config"
	"github.com/brokeratlas/broker-compare/internal/pkg/http"
	"github.com/brokeratlas/broker-compare/internal/pkg/store"
)

const httpTimeout = 30 * time.Second

func main() {
	// A missing .env file is fine; the environment may be set externally.
	_ = godotenv.Load()

	configPath := flag.String("config", "pipeline.yaml", "path to the pipeline config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	noErr(err)

	logger, err := buildLogger(cfg)
	noErr(err)
	defer func() { _ = logger.Sync() }()

	// Initialize shared HTTP client singleton.
	baseHTTPClient := &gohttp.Client{
		Timeout: httpTimeout,
		CheckRedirect: func(_ *gohttp.Request, _ []*gohttp.Request) error {
			return gohttp.ErrUseLastResponse
		},
	}
	httpClient := http.NewClient(baseHTTPClient, httpTimeout)

	ctx := context.Background()

	var st store.Store
	if cfg.Load.DryRun {
		st = store.NewMemoryStore(logger.Named("Store"))
	} else {
		pool, err := pgxpool.Connect(ctx, cfg.DatabaseURL)
		noErr(err)
		defer pool.Close()

		pgStore := store.NewPostgres(pool, logger.Named("Store"))
		noErr(pgStore.EnsureSchema(ctx))
		st = pgStore
	}

	svc := pipeline.NewService(cfg, httpClient, st, logger.Named("Pipeline Svc"))

	// An optional single positional argument overrides the input directory
	// with one review page file.
	ok, err := svc.Run(ctx, flag.Arg(0))
	if err != nil {
		logger.Error("pipeline run failed", zap.Error(err))
		os.Exit(1)
	}
	if !ok {
		logger.Warn("validation rate below threshold")
		os.Exit(1)
	}
}

// buildLogger mirrors the development console logger, with the level taken
// from LOG_LEVEL and optional file rotation when LOG_FILE is set.
func buildLogger(cfg config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		level = parsed
	}

	if cfg.LogFile == "" {
		loggerConfig := zap.NewDevelopmentConfig()
		loggerConfig.Level = zap.NewAtomicLevelAt(level)
		loggerConfig.DisableStacktrace = true
		return loggerConfig.Build()
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    50, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rotator),
		level,
	)
	return zap.New(core), nil
}

func noErr(err error) {
	if err != nil {
		fmt.Printf("failed to initialize something important: %v\n", err)
		panic(err)
	}
}
