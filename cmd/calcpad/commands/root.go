package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"calcpad/internal/app"
	"calcpad/internal/config"
	"calcpad/internal/logging"
)

// skipWire marks commands that run without loading config or wiring the app.
const skipWire = "calcpad/skip-wire"

var (
	configPath string
	verbose    bool
	serverURL  string

	settings *config.Config
	logger   *zap.Logger
	appCtx   *app.App
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	configPath, verbose, serverURL = "", false, ""
	settings, logger, appCtx = nil, nil, nil

	root := &cobra.Command{
		Use:           "calcpad",
		Short:         "Keypad calculator with history",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipWire] != "" {
				return nil
			}
			if configPath == "" {
				configPath = config.DefaultPath()
			}
			var err error
			settings, err = config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err = logging.New(settings.Logging, verbose)
			if err != nil {
				return err
			}
			w, err := app.NewWire(app.Config{
				Settings:  settings,
				Logger:    logger,
				ServerURL: serverURL,
			})
			if err != nil {
				return fmt.Errorf("config %s: %w", configPath, err)
			}
			appCtx = app.New(w)
			logger.Debug("wired", zap.String("config", configPath), zap.String("server", serverURL))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "calcd base URL for eval (e.g. http://127.0.0.1:8080)")

	root.AddCommand(evalCmd(), normalizeCmd(), replCmd(), tuiCmd(), configCmd())
	return root
}
