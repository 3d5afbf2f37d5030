package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/lynis-dash/pkg/config"
	"github.com/user/lynis-dash/pkg/console"
	"github.com/user/lynis-dash/pkg/engine"
	"github.com/user/lynis-dash/pkg/report"
	"github.com/user/lynis-dash/pkg/wrappers"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save report findings as a baseline or compare against one",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save [report-file|-]",
	Short: "Save the findings of a report as the baseline",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, graph, err := loadGraph(args)
		if err != nil {
			return err
		}
		summary, err := wrappers.SaveSnapshot(graph, snapshotPath(cmd, cfg))
		if err != nil {
			return err
		}
		console.Successf("%s", summary)
		return nil
	},
}

var snapshotDiffCmd = &cobra.Command{
	Use:   "diff [report-file|-]",
	Short: "Compare a report's findings with the saved baseline",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, graph, err := loadGraph(args)
		if err != nil {
			return err
		}
		_, summary, err := wrappers.DiffSnapshot(graph, snapshotPath(cmd, cfg))
		if err != nil {
			return err
		}
		fmt.Print(summary)
		return nil
	},
}

// loadGraph parses the report named in args (or the configured one) into a
// fresh finding graph
func loadGraph(args []string) (*config.Config, *engine.UnifiedGraph, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	path := cfg.ReportPath
	if len(args) == 1 {
		path = args[0]
	}

	r, err := wrappers.ReadReport(path)
	if err != nil {
		return nil, nil, err
	}

	graph := engine.NewUnifiedGraph()
	host := r.Hostname("localhost")
	if r.Tier() == report.TierWeak {
		graph.MarkWeak(host)
	}
	findings := r.Findings()
	graph.AddFindings(findings)
	console.Debugf("Added %d findings for %s (%s)", len(findings), host, r.Tier())
	return cfg, graph, nil
}

func snapshotPath(cmd *cobra.Command, cfg *config.Config) string {
	if p, _ := cmd.Flags().GetString("snapshot"); p != "" {
		return p
	}
	return cfg.SnapshotPath
}

func init() {
	snapshotCmd.PersistentFlags().StringP("snapshot", "s", "", "Snapshot file (default from config)")
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotDiffCmd)
	rootCmd.AddCommand(snapshotCmd)
}
