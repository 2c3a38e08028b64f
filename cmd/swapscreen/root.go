package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/csheth/swapscreen/internal/config"
	"github.com/csheth/swapscreen/internal/swap"
	"github.com/csheth/swapscreen/internal/tui"
)

type rootOptions struct {
	configPath  string
	noAltScreen bool
	logFile     string
	debug       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "swapscreen",
		Short: "A terminal token swap screen with illustrative figures",
		Long: `swapscreen renders a token swap card in the terminal. Pick two tokens,
type an amount and watch the estimate update, or switch to the limit layout to
nudge a limit price and choose an expiry. Nothing is ever submitted.

Examples:
  swapscreen
  swapscreen --config ./swapscreen.yaml --log-file swap.log --debug
  swapscreen tokens --json
  swapscreen quote 2 ETH to USDC`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen(opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default .swapscreen.yaml in $HOME or .)")
	cmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file (overrides log_file)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log every screen transition")

	cmd.AddCommand(newTokensCmd(opts), newQuoteCmd(opts))
	return cmd
}

// loadMachine reads configuration and builds the transition machine from it.
func (o *rootOptions) loadMachine() (*config.Config, swap.Machine, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, swap.Machine{}, err
	}
	machine, err := swap.NewMachine(cfg.Settings)
	if err != nil {
		return nil, swap.Machine{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, machine, nil
}

func runScreen(opts *rootOptions) error {
	cfg, machine, err := opts.loadMachine()
	if err != nil {
		return err
	}

	path := cfg.LogFile
	if opts.logFile != "" {
		path = opts.logFile
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if opts.debug {
		level = log.DebugLevel
	}
	logger, closeLog, err := openLogger(path, level)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	programOpts := []tea.ProgramOption{}
	if !opts.noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(tui.New(tui.Config{Machine: machine, Logger: logger}), programOpts...)

	logger.Info("screen started", "tokens", machine.Settings().Catalog.Len(), "mode", machine.Settings().Defaults.Mode)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	logger.Info("screen closed")
	return nil
}

// openLogger logs to path, or nowhere when path is empty. The terminal itself
// belongs to the screen.
func openLogger(path string, level log.Level) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(file, log.Options{
		Level:           level,
		Prefix:          "swapscreen",
		ReportTimestamp: true,
	})
	return logger, file.Close, nil
}
