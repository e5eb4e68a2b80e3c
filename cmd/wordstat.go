package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	wordstatGeoIDs []int64
	wordstatKeep   bool
)

// wordstatCmd represents the wordstat command
var wordstatCmd = &cobra.Command{
	Use:   "wordstat PHRASE...",
	Short: "Run a Wordstat keyword report (v4 API)",
	Long: `Create a Wordstat report for the given phrases, wait for the server to
process it, print the "searched with" statistics and delete the report.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWordstat,
}

func init() {
	wordstatCmd.Flags().Int64SliceVar(&wordstatGeoIDs, "geo", nil, "region ids (default Russia)")
	wordstatCmd.Flags().BoolVar(&wordstatKeep, "keep", false, "keep the report on the server")
}

func runWordstat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	reportID, err := clientV4.CreateWordstatReport(ctx, args, wordstatGeoIDs)
	if err != nil {
		return err
	}

	entries, err := clientV4.WordstatReport(ctx, reportID)
	if err != nil {
		return err
	}

	if !wordstatKeep {
		if err := clientV4.DeleteWordstatReport(ctx, reportID); err != nil {
			logger.Warn().Err(err).Int64("report_id", reportID).Msg("Failed to delete wordstat report")
		}
	}

	if len(entries) == 0 {
		fmt.Println("No statistics found.")
		return nil
	}

	fmt.Printf("\n%-50s %s\n", "PHRASE", "SHOWS")
	fmt.Println(strings.Repeat("-", 60))
	for _, entry := range entries {
		fmt.Printf("%-50s %d\n", entry.Phrase, entry.Shows)
	}

	return nil
}
