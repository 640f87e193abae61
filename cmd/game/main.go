// polyroids is an asteroids game for the terminal.
//
// Usage:
//
//	polyroids [play]     - Play in this terminal (default)
//	polyroids scores     - Show the score ledger
//
// Global flags:
//
//	--config <path>  - Settings file (default: search ~/.polyroids, ./configs)
//	--seed <value>   - RNG seed for reproducible asteroid fields (0 = time)
//	--log <path>     - Write logs to this file (default: discard)
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/scores"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagLog    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "polyroids",
	Short: "Asteroids in your terminal",
	Long: `polyroids is a terminal asteroids game: steer the ship, shoot the
asteroids, and get on the score ledger.

Controls:
  Left/Right  - Rotate
  Up          - Thrust
  Down        - Hyperspace
  Space       - Fire
  Enter       - Start / acknowledge
  Q           - Quit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Log file (logs are discarded when empty)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads the settings and opens the logger and the ledger shared by
// every command.
func setup() (config.Settings, *log.Logger, *scores.Ledger, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, nil, nil, err
	}

	var (
		out     io.Writer = io.Discard
		closers []func() error
	)
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return cfg, nil, nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closers = append(closers, f.Close)
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "polyroids",
		Level:           log.DebugLevel,
	})

	ledger, closeLedger, err := scores.Open(cfg.Ledger.Backend, cfg.Ledger.Path, cfg.Ledger.Capacity, logger)
	if ledger == nil {
		for _, c := range closers {
			_ = c()
		}
		return cfg, nil, nil, nil, err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger.Warn("ledger not loaded", "error", err)
	}
	closers = append(closers, closeLedger)

	cleanup := func() {
		for _, c := range closers {
			_ = c()
		}
	}
	return cfg, logger, ledger, cleanup, nil
}

func newRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
