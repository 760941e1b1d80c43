package main

import (
	"spritegen/internal/config"
	"spritegen/internal/sprite"
	"spritegen/pkg/logger"
	"spritegen/pkg/storage/fsstore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCommand constructs the 'check' subcommand that fails when the outputs
// do not match the icons. Nothing is written.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Exits with a non-zero status when the sprite or type declaration is stale",
	}
	iconFlags(cmd, cfg)
	applyVerbose := verboseFlags(cmd)

	cmd.Run = func(cmd *cobra.Command, args []string) {
		applyVerbose(cfg)

		ctx, cancel := runContext()
		defer cancel()

		upToDate, err := sprite.New(fsstore.NewOS(), sprite.NewOptions(cfg)).Check(ctx)
		if err != nil {
			logger.Fatal(ctx, "could not check icons", zap.Error(err))
		}
		if !upToDate {
			logger.Fatal(ctx, "icons are out of date, run generate",
				zap.String("sprite", cfg.Icons.SpritePath),
				zap.String("manifest", cfg.Icons.ManifestPath),
			)
		}

		logger.Info(ctx, "icons are up to date")
	}

	return cmd
}
