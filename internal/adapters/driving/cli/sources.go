package cli

import (
	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Print the parsed source list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireBatch(cmd); err != nil {
			return err
		}

		sources, err := batchRunner.Sources(cmd.Context())
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			cmd.Println("No sources configured.")
			return nil
		}
		printSources(cmd, sources)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
