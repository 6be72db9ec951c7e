package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/platform/term"
)

// runPlay plays one game on the controlling terminal.
func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closer.Close()

	console, err := term.Open()
	if err != nil {
		return fmt.Errorf("snake needs an interactive terminal: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := engine.New(console, cfg.Runtime(flagSeed), logger).Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("final length", "length", res.Length)
	return nil
}
