package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/deusflow/trenddigest/internal/config"
	"github.com/deusflow/trenddigest/internal/logger"
)

func main() {
	root := &cobra.Command{
		Use:           "trenddigest",
		Short:         "Qiita trend digest generator",
		Long:          "Builds a daily text digest of Qiita's popular items for NotebookLM, note and YouTube.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "YAML config file (env vars override it)")

	root.AddCommand(
		serveCmd(),
		generateCmd(),
	)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads --config and brings up the global logger on w.
func loadConfig(cmd *cobra.Command, w io.Writer) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if cfg.Debug {
		level = "debug"
	}
	logger.InitWithWriter(w, level, cfg.LogFormat)
	return cfg, nil
}
