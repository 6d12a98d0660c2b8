package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deusflow/trenddigest/internal/app"
	"github.com/deusflow/trenddigest/internal/logger"
	"github.com/deusflow/trenddigest/internal/metrics"
)

func generateCmd() *cobra.Command {
	var outDir string
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate today's trend document once",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout may carry the document, so logs go to stderr.
			cfg, err := loadConfig(cmd, os.Stderr)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if cfg.RequestTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
				defer cancel()
			}

			doc, err := app.NewFromConfig(cfg, logger.Logger, metrics.Global).Generate(ctx)
			if err != nil {
				return err
			}

			if toStdout {
				_, err := io.WriteString(cmd.OutOrStdout(), doc.Content)
				return err
			}

			path, err := writeDocument(outDir, doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "Directory to write the document into")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the document instead of writing a file")
	cmd.MarkFlagsMutuallyExclusive("out", "stdout")
	return cmd
}

func writeDocument(dir string, doc app.Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, doc.FileName)
	if err := os.WriteFile(path, []byte(doc.Content), 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return path, nil
}
