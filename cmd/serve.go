package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/longxinyang/bio/internal/content"
	"github.com/longxinyang/bio/internal/logging"
	"github.com/longxinyang/bio/internal/server"
	"github.com/longxinyang/bio/internal/view"
)

var servePort int

// validateContent is replaced in tests.
var validateContent = content.Validate

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		logger, err := logging.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()

		if err := validateContent(); err != nil {
			logger.Error("Content validation failed", zap.Error(err))
			return fmt.Errorf("content: %w", err)
		}

		renderer, err := view.New(view.Options{})
		if err != nil {
			return fmt.Errorf("preparing templates: %w", err)
		}

		srv, err := server.New(cfg, logger, renderer)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Portfolio starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Server.Port),
			zap.String("theme_default", string(cfg.Theme.Default)),
		)
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
