package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"calcpad/internal/app"
	"calcpad/internal/config"
	"calcpad/internal/logging"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:          "calcd",
		Short:        "Calculator widget backend",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = config.DefaultPath()
			}
			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				settings.Server.Addr = addr
			}

			logger, err := logging.New(settings.Logging, verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			w, err := app.NewWire(app.Config{Settings: settings, Logger: logger})
			if err != nil {
				return fmt.Errorf("config %s: %w", configPath, err)
			}
			srv, err := w.NewServer()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			hs := &http.Server{
				Addr:         settings.Server.Addr,
				ReadTimeout:  settings.GetReadTimeout(),
				WriteTimeout: settings.GetWriteTimeout(),
			}
			logger.Info("calcd starting",
				zap.String("addr", hs.Addr),
				zap.Duration("session_ttl", settings.GetSessionTTL()),
			)
			if err := srv.Run(ctx, hs); err != nil {
				logger.Error("calcd stopped", zap.Error(err))
				return err
			}
			logger.Info("calcd stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}
