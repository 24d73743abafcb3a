package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/emzola/scribe/config"
	"github.com/emzola/scribe/internal/jsonlog"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scribe <command>",
		Short: "Blogging backend with posts and threaded comments",
		Example: heredoc.Doc(`
			$ scribe serve --config ./config.yaml
			$ scribe migrate up
		`),
		SilenceUsage: true,
	}

	cmd.AddCommand(
		serveCmd(),
		migrateCmd(),
	)

	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")

	return cmd
}

// loadConfig reads the configuration named by the --config flag and builds a
// logger at the configured level.
func loadConfig(cmd *cobra.Command) (config.Config, *jsonlog.Logger, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("getting config flag value: %w", err)
	}
	cfg, err := config.Decode(configFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("loading config: %w", err)
	}
	level, err := jsonlog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, jsonlog.New(os.Stdout, level), nil
}
