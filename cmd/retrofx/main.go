// Command retrofx renders a voice recording in retro playback styles.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tphakala/go-retro-voice/internal/config"
)

var version = "0.1.0"

var (
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "retrofx",
	Short: "Render a voice recording through retro playback styles",
	Long: `retrofx degrades a dry voice recording the way an old device would:
telephone line, vintage radio, gramophone, vinyl record or cassette tape.

Each style writes one mono WAV file at the style's own sample rate.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file with render defaults and custom presets")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(renderCmd, stylesCmd, analyzeCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the config file and applies the global log flags.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		loaded.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		loaded.Log.Format = logFormat
	}
	if err := loaded.ConfigureLogger(logger); err != nil {
		return err
	}
	logger.SetOutput(cmd.ErrOrStderr())

	cfg = loaded
	logger.WithFields(logrus.Fields{
		"config": configPath,
		"level":  loaded.Log.Level,
	}).Debug("configuration loaded")
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
