package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/proposal"
	"github.com/aretw0/proposal/internal/platform"
	"github.com/aretw0/proposal/pkg/core"
)

var (
	verbose    bool
	configPath string
	dataset    string

	cfg proposal.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Generate workshop proposals from a tool catalogue",
	Long: `proposal reads a CSV catalogue of tools and assembles a plain-text
talk, course or activity proposal from the tools you pick.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		if dataset != "" {
			cfg.Dataset = dataset
		}

		level := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: proposal.yaml found upwards from the working directory)")
	rootCmd.PersistentFlags().StringVarP(&dataset, "dataset", "d", "", "Dataset file path or http(s) URL")
}

// loadConfig reads --config, or the nearest proposal.yaml, or the defaults.
func loadConfig() (proposal.Config, error) {
	path := configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return proposal.Config{}, err
		}
		found, err := proposal.FindConfig(wd)
		switch {
		case errors.Is(err, platform.ErrConfigNotFound):
		case err != nil:
			return proposal.Config{}, err
		default:
			path = found
		}
	}
	return proposal.LoadConfig(path)
}

// openService builds the service and loads the dataset once. A retrieval
// failure ends the command. An empty dataset is only reported, so proposals
// can still be drafted without tools.
func openService(ctx context.Context, opts ...proposal.Option) (*core.Service, error) {
	base := append(platform.FromConfig(cfg), proposal.WithLogger(slog.Default()))
	opts = append(base, opts...)

	svc, err := proposal.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	st, err := svc.Reload(ctx)
	if err != nil {
		return nil, errors.New(st.Message())
	}
	if st.Kind == core.StatusEmpty {
		slog.Warn(st.Message())
	}
	return svc, nil
}

// openRecords is openService for commands that have nothing to do without
// records. An empty dataset ends the command with its own message.
func openRecords(ctx context.Context, opts ...proposal.Option) (*core.Service, error) {
	svc, err := openService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if st := svc.Status(); st.Kind == core.StatusEmpty {
		return nil, errors.New(st.Message())
	}
	return svc, nil
}
