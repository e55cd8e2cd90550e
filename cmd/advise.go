package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getaroundlab/pricing/config"
	"github.com/getaroundlab/pricing/core/scenario"
	"github.com/getaroundlab/pricing/infra/scenariostore"
)

var (
	adviseScope  string
	adviseBuffer int
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Print per-scope buffer recommendations from the scenario table",
	RunE:  advise,
}

func init() {
	adviseCmd.Flags().StringVar(&adviseScope, "scope", "", "classify a specific scope instead of listing all recommendations")
	adviseCmd.Flags().IntVar(&adviseBuffer, "buffer", -1, "buffer hours to classify, requires --scope")
	rootCmd.AddCommand(adviseCmd)
}

func advise(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	table, path, err := scenariostore.Load(cfg.Scenario.Dir, cfg.Scenario.File)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario table: %s (%d rows)\n\n", path, table.Len())

	if adviseScope != "" && adviseBuffer >= 0 {
		row, err := table.Lookup(adviseScope, adviseBuffer)
		if err != nil {
			return err
		}
		status := scenario.Classify(row.BlockedRatio, row.ConflictsResolvedRatio)
		fmt.Fprintf(out, "scope %s, buffer %dh: %s\n", row.Scope, row.BufferHours, status)
		fmt.Fprintf(out, "  conflicts resolved: %.1f%%\n", row.ConflictsResolvedRatio*100)
		fmt.Fprintf(out, "  rentals blocked:    %.1f%%\n", row.BlockedRatio*100)
		fmt.Fprintf(out, "  baseline conflicts: %.1f%% of %d rentals\n", row.ConflictRatio*100, row.NRentals)
		return nil
	}

	recs, err := scenario.RecommendAll(table)
	if err != nil {
		return err
	}
	for _, scope := range table.Scopes() {
		rec := recs[scope]
		status := scenario.Classify(rec.BlockedRatio, rec.ConflictsResolvedRatio)
		fmt.Fprintf(out, "scope %-16s recommended buffer %dh (%s): %.1f%% conflicts resolved, %.1f%% rentals blocked\n",
			scope, rec.BufferHours, status, rec.ConflictsResolvedRatio*100, rec.BlockedRatio*100)
	}
	return nil
}
