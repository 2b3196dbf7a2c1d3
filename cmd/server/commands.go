package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/api"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/platform/logger"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Running the binary without a
// subcommand serves HTTP, like `serve`.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "pokeapi-gateway",
		Short:         "HTTP gateway returning simplified Pokemon information from PokeAPI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to a YAML config file (default: ./config.yaml if present)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServe(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "lookup NAME",
			Short: "Look up one Pokemon and print the simplified JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runLookup(cmd, configPath, args[0])
			},
		},
	)

	return root
}

// runServe loads configuration, wires the application and serves until
// SIGINT or SIGTERM.
func runServe(ctx context.Context, configPath string) error {
	cfg, err := loadAppConfig(configPath)
	if err != nil {
		return err
	}

	log, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}

// runLookup runs the lookup pipeline once. The projected JSON goes to
// stdout; logs go to stderr so the output stays machine readable.
func runLookup(cmd *cobra.Command, configPath, name string) error {
	cfg, err := loadAppConfig(configPath)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Server.LogLevel, cmd.ErrOrStderr())

	app, err := newApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	info, err := app.lookupService.Lookup(logger.WithLogger(cmd.Context(), log), name)
	if err != nil {
		log.Debug("lookup failed", "error", err)
		return errors.New(api.GetSafeErrorMessage(err))
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}
