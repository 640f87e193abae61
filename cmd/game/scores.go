package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score ledger",
	Long: `Display the recorded scores, best first.

Examples:
  polyroids scores
  POLYROIDS_LEDGER_BACKEND=sqlite POLYROIDS_LEDGER_PATH=~/.polyroids/scores.db polyroids scores`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func runScores(cmd *cobra.Command, _ []string) error {
	_, _, ledger, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	records := ledger.Records()
	if len(records) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'polyroids play' to set the first one!")
		return nil
	}

	fmt.Fprintln(out, "High Scores")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-4s  %-16s  %s\n", "Rank", "Name", "Score")
	fmt.Fprintf(out, "  %-4s  %-16s  %s\n", "----", "----", "-----")
	for i, r := range records {
		fmt.Fprintf(out, "  %-4d  %-16s  %d\n", i+1, r.Name, r.Score)
	}
	return nil
}
