package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/moving-manager/internal/application"
	"github.com/eugenenazirov/moving-manager/internal/config"
	"github.com/eugenenazirov/moving-manager/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("mover", "Moving Manager - packs items into bags, boxes and moving trucks from a manifest")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	manifestPath := kingpinApp.Flag("manifest", "Path to the moving manifest").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()
	var failFastSet bool
	failFast := kingpinApp.Flag("fail-fast", "Abort the run on the first rejected pack").IsSetByUser(&failFastSet).Bool()
	treeLevel := kingpinApp.Flag("tree-level", "Indentation level of the rendered trees").Default("-1").Int()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *manifestPath != "" {
		overrides.ManifestPath = manifestPath
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if failFastSet {
		overrides.FailFast = failFast
	}

	if *treeLevel >= 0 {
		overrides.TreeLevel = treeLevel
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	ctx, stop := interruptible(context.Background(), logger)
	defer stop()

	if _, err := app.Run(ctx, os.Stdout); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

// interruptible returns a context that is cancelled on the first
// interrupt or termination signal.
func interruptible(parent context.Context, logger *zap.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-quit:
			logger.Info("stopping run", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(quit)
		cancel()
	}
}
