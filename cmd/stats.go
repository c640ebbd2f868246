package cmd

import (
	"github.com/spf13/cobra"
	"github.com/usagelab/telesnap/core"
	"github.com/usagelab/telesnap/internal"
	"github.com/usagelab/telesnap/internal/contract"
)

// statsCmd summarizes the export without writing the snapshot.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize accepted records by platform, backend and database.",
	Long: `Fetch and normalize the telemetry export, then print per-dimension
record counts without writing the snapshot.

Useful for a quick look at what the next snapshot would contain, or for
piping counts into other tooling with --output csv or --output json.

Examples:
  # Table summary of the top values per dimension
  telesnap stats --source-url https://telemetry.example.com/export.csv

  # All values, machine readable
  telesnap stats --source-url https://telemetry.example.com/export.csv --output json --limit 100`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		breakdown, err := core.ExecuteStats(rootCtx, cfg, internal.NewHTTPFetcher())
		if err != nil {
			contract.LogFatal("Cannot compute stats", err)
		}
		internal.PrintBreakdown(breakdown, cfg)
	},
}
