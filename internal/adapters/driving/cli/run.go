package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/evship/internal/core/domain"
	"github.com/custodia-labs/evship/internal/core/ports/driving"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Ship every configured source once",
	Long: `Reads the source list, then for each source whose event log exists
resolves the configured record range and upserts the records into the index.

A failing source does not stop the others. The command exits non-zero if any
source failed; non-2xx index responses are appended to the error log.`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if err := requireBatch(cmd); err != nil {
		return err
	}
	return shipOnce(cmd)
}

// shipOnce runs one batch, then prints the processed sources and the summary.
func shipOnce(cmd *cobra.Command) error {
	summary, err := batchRunner.Run(cmd.Context())
	if summary != nil {
		printSources(cmd, summary.SourceList())
		printSummary(cmd, summary)
	}
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	return nil
}

// printSources lists sources one per line.
func printSources(cmd *cobra.Command, sources []domain.Source) {
	for _, s := range sources {
		cmd.Println(s.String())
	}
}

// printSummary writes per-source outcomes and totals.
func printSummary(cmd *cobra.Command, summary *driving.RunSummary) {
	cmd.Println()
	cmd.Printf("Run %s\n", summary.RunID)
	for _, s := range summary.Sources {
		switch {
		case s.Skipped:
			cmd.Printf("  %-20s skipped (database not found)\n", s.Source.Name)
		case s.Err != nil:
			cmd.Printf("  %-20s fetched %d, delivered %d, failed %d, error: %v\n",
				s.Source.Name, s.Fetched, s.Delivered, s.Failed, s.Err)
		default:
			cmd.Printf("  %-20s fetched %d, delivered %d, failed %d\n",
				s.Source.Name, s.Fetched, s.Delivered, s.Failed)
		}
	}
	delivered, failed := summary.Totals()
	cmd.Printf("Total: delivered %d, failed %d\n", delivered, failed)
}
