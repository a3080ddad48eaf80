package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/evship/internal/core/domain"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <record-id>...",
	Short: "Convert event log record ids to UTC timestamps",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: record id %q", domain.ErrInvalidInput, arg)
			}
			t, err := domain.DecodeRecordID(id)
			if err != nil {
				return err
			}
			cmd.Printf("%d\t%s\n", id, domain.FormatReportDate(t))
		}
		return nil
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode <RFC3339 time>...",
	Short: "Convert timestamps to the smallest matching record id",
	Long: `Converts RFC3339 timestamps (e.g. 2022-08-01T00:00:00Z) to record ids,
useful for choosing the start and end bounds in the source list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			t, err := time.Parse(time.RFC3339Nano, arg)
			if err != nil {
				return fmt.Errorf("%w: time %q: %w", domain.ErrInvalidInput, arg, err)
			}
			cmd.Printf("%s\t%d\n", t.UTC().Format(time.RFC3339Nano), domain.EncodeTime(t))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
}
