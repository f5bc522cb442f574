package cmd

import (
	"fmt"
	"os"

	"github.com/ThatOtherAndrew/unistroke/internal/config"
	"github.com/ThatOtherAndrew/unistroke/internal/gesture"
	"github.com/ThatOtherAndrew/unistroke/internal/logging"
	"github.com/ThatOtherAndrew/unistroke/internal/models"
	"github.com/ThatOtherAndrew/unistroke/pkg/unistroke"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	logger   = zap.NewNop()
	settings = config.Default()
)

var rootCmd = &cobra.Command{
	Use:           "unistroke",
	Short:         "Recognise single-stroke gestures with the $1 algorithm",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(logLevel, logFormat)
		if err != nil {
			return err
		}
		logger = l

		s, err := config.LoadSettings(cfgFile, logger)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settings = s
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default ~/.config/unistroke/settings.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format: console or json")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadRecognizer builds a recognizer from the settings and fills it from a
// templates file.
func loadRecognizer(path string, minDistance float64) (*unistroke.Recognizer, []models.GestureConfig, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("no templates file given (use --templates)")
	}
	gestures, err := gesture.LoadTemplates(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load templates: %w", err)
	}

	opts := settings.Options(logger)
	r := unistroke.New(&opts)
	added, err := gesture.AddTemplates(r, gestures, minDistance, logger)
	if added == 0 && err != nil {
		return nil, nil, err
	}
	logger.Info(fmt.Sprintf("Loaded %d gesture(s)", added), zap.String("path", path))
	return r, gestures, nil
}
