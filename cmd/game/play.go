package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tomz197/polyroids/internal/loop/client"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal. Scores are recorded in the
ledger configured by ledger.backend and ledger.path.

Examples:
  polyroids play
  polyroids play --seed 42
  polyroids play --log /tmp/polyroids.log`,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, logger, ledger, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(os.Stdin, os.Stdout, client.Options{
		Settings: cfg,
		Ledger:   ledger,
		Player:   cfg.Ledger.Player,
		Logger:   logger,
		Rand:     newRand(),
	})
	logger.Info("session started", "player", cfg.Ledger.Player, "seed", flagSeed)
	if err := c.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	logger.Info("session ended", "score", c.Game().Score())
	return nil
}
