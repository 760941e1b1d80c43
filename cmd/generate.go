package main

import (
	"context"
	"os/signal"
	"spritegen/internal/config"
	"spritegen/internal/sprite"
	"spritegen/pkg/logger"
	"spritegen/pkg/metrics"
	"spritegen/pkg/storage/fsstore"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// metricsTimeout bounds publishing metrics after a run.
const metricsTimeout = 10 * time.Second

// iconFlags binds the icon path flags to cfg so they override file and env values.
func iconFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.Icons.InputDir, "input", cfg.Icons.InputDir, "Directory scanned for svg icons")
	cmd.Flags().StringVar(&cfg.Icons.SpritePath, "sprite", cfg.Icons.SpritePath, "Sprite output file")
	cmd.Flags().StringVar(&cfg.Icons.ManifestPath, "manifest", cfg.Icons.ManifestPath, "Type declaration output file")
	cmd.Flags().StringVar(&cfg.Icons.FingerprintPath, "fingerprint", cfg.Icons.FingerprintPath, "Source digest file, empty to disable")
}

// verboseFlags registers --log=verbose and -v; applyVerbose reconfigures the logger when either is set.
func verboseFlags(cmd *cobra.Command) (applyVerbose func(cfg *config.Config)) {
	logMode := cmd.Flags().String("log", "", "Log mode, \"verbose\" logs every processed icon")
	verbose := cmd.Flags().BoolP("verbose", "v", false, "Same as --log=verbose")

	return func(cfg *config.Config) {
		if *verbose || *logMode == "verbose" {
			cfg.Log.Verbose = true
			logger.Setup(cfg.Environment, true)
		}
	}
}

// runContext returns a context canceled on interrupt, carrying a run ID for log correlation.
func runContext() (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	return logger.WithFields(ctx, zap.String("runID", uuid.NewString())), cancel
}

// publishMetrics pushes the run metrics to the Pushgateway and writes the
// textfile when configured. Failures are only logged.
func publishMetrics(ctx context.Context, cfg *config.Config, recorder *metrics.Recorder) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), metricsTimeout)
	defer cancel()

	if cfg.Metrics.PushgatewayURL != "" {
		if err := recorder.Push(ctx, cfg.Metrics.PushgatewayURL, cfg.Metrics.JobName); err != nil {
			logger.Warn(ctx, "could not push metrics", zap.String("url", cfg.Metrics.PushgatewayURL), zap.Error(err))
		}
	}

	if cfg.Metrics.TextfilePath != "" {
		if err := recorder.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			logger.Warn(ctx, "could not write metrics textfile", zap.String("path", cfg.Metrics.TextfilePath), zap.Error(err))
		}
	}

	if err := recorder.Shutdown(ctx); err != nil {
		logger.Warn(ctx, "could not shut down metrics provider", zap.Error(err))
	}
}

// generateCommand constructs the 'generate' subcommand that regenerates the
// sprite and the type declaration when the icons changed.
func generateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates the svg sprite and the IconName type declaration",
	}
	iconFlags(cmd, cfg)
	applyVerbose := verboseFlags(cmd)

	cmd.Run = func(cmd *cobra.Command, args []string) {
		applyVerbose(cfg)

		ctx, cancel := runContext()
		defer cancel()

		recorder, err := metrics.New()
		if err != nil {
			logger.Fatal(ctx, "could not create metrics recorder", zap.Error(err))
		}

		opts := sprite.NewOptions(cfg)
		opts.Recorder = recorder

		res, err := sprite.New(fsstore.NewOS(), opts).Sync(ctx)
		publishMetrics(ctx, cfg, recorder)
		if err != nil {
			logger.Fatal(ctx, "could not generate icons", zap.Error(err))
		}

		logger.Debug(ctx, "generate finished",
			zap.Int("icons", res.Icons),
			zap.Bool("upToDate", res.UpToDate),
			zap.Bool("spriteChanged", res.SpriteChanged),
			zap.Bool("manifestChanged", res.ManifestChanged),
			zap.Bool("fingerprintChanged", res.FingerprintChanged),
		)
	}

	return cmd
}
