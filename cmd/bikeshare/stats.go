package main

import (
	"encoding/json"
	"go-bikeshare/internal/render"

	"github.com/spf13/cobra"
)

var statsFilter filterFlags

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute trip statistics for a city",
	Long: `Compute the most frequent travel times, popular stations and trips,
trip durations and user statistics for one city.

Examples:
  bikeshare stats --city chicago
  bikeshare stats --city "new york city" --month june --day all
  bikeshare stats --city washington --json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsFilter.register(statsCmd)
	statsCmd.Flags().Bool("json", false, "output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	spec, err := statsFilter.spec()
	if err != nil {
		return err
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	report, err := svc.Run(cmd.Context(), spec)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return render.Report(cmd.OutOrStdout(), report)
}
