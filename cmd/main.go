// Package main provides the contracts CLI: payload checks, the resolved OTP
// configuration and the contract docs server.
package main

import (
	"context"
	"os"

	"contracts/internal/config"
	"contracts/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by subcommands once the root command has loaded it.
type app struct {
	configPath string
	cfg        *config.Config
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "contracts",
		Short:         "OTP and specialty API contracts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
				return err
			}
			a.cfg = cfg

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		checkCommand(a),
		configCommand(a),
		docsCommand(a),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := newRootCommand().Execute()
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
	}
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
