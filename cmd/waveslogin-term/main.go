package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"waveslogin/internal/core/session"
	"waveslogin/internal/storage"
	"waveslogin/internal/term"
	"waveslogin/internal/ui/animation"
	"waveslogin/internal/ui/preferences"
	"waveslogin/resources"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const appName = "WavesLogin"

type options struct {
	waveMillis  int
	delayMillis int
	logPath     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "waveslogin-term",
		Short: "Wave-animated login screen for the terminal",
		Long: `waveslogin-term runs the login screen in a terminal.

Settings are read from the same settings.yaml the desktop app uses;
flags override the file for this run only.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.waveMillis, "wave-duration", 0, "Wave countdown duration in milliseconds")
	cmd.Flags().IntVar(&opts.delayMillis, "check-delay", 0, "Delay before credentials are checked, in milliseconds")
	cmd.Flags().StringVar(&opts.logPath, "log", "", "Write logs to this file")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	logger, closeLog, err := newLogger(opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := resources.LoadTranslations(); err != nil {
		logger.Warn("load translations", "error", err)
	}

	settings := preferences.DefaultSettings()
	if store, err := storage.DefaultStore(appName); err != nil {
		logger.Warn("settings store unavailable", "error", err)
	} else if settings, err = store.Load(); err != nil {
		logger.Warn("load settings", "path", store.Path(), "error", err)
	}
	settings = applyFlags(cmd, settings, opts)

	machine := session.New(settings.LoginConfig())
	machine.SetLogger(logger.With("component", "session"))
	defer machine.Close()

	program := tea.NewProgram(term.New(machine, animation.DefaultFrameInterval), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// applyFlags layers explicitly set flags over the loaded settings.
func applyFlags(cmd *cobra.Command, settings preferences.Settings, opts *options) preferences.Settings {
	if cmd.Flags().Changed("wave-duration") {
		settings.WaveDuration = time.Duration(opts.waveMillis) * time.Millisecond
	}
	if cmd.Flags().Changed("check-delay") {
		settings.CheckDelay = time.Duration(opts.delayMillis) * time.Millisecond
	}
	return settings.Normalize()
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = file.Close() }, nil
}
