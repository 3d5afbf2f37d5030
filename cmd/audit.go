package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/user/lynis-dash/pkg/console"
	"github.com/user/lynis-dash/pkg/report"
	"github.com/user/lynis-dash/pkg/wrappers"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run a local Lynis audit and show the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tab, _ := cmd.Flags().GetString("tab")
		reportFile, _ := cmd.Flags().GetString("report-file")
		quiet, _ := cmd.Flags().GetBool("quiet")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		runner := &wrappers.LynisRunner{Binary: cfg.LynisBinary, ReportFile: reportFile}

		// Lynis output and the spinner would fight over the terminal.
		var r report.Report
		if quiet {
			spinner, _ := pterm.DefaultSpinner.Start("Running lynis audit system...")
			r, err = runner.Run(ctx)
			if err != nil {
				spinner.Fail(err.Error())
				return err
			}
			spinner.Success("Audit complete")
		} else {
			runner.Stdout = os.Stdout
			console.Infof("Starting system audit. Lynis output will stream below:")
			if r, err = runner.Run(ctx); err != nil {
				return err
			}
		}

		return present(r, tab, cfg.OutputFormat)
	},
}

func init() {
	auditCmd.Flags().StringP("tab", "t", tabOverview, "Tab to show after the audit")
	auditCmd.Flags().String("report-file", wrappers.DefaultReportFile, "Where Lynis writes its report")
	auditCmd.Flags().BoolP("quiet", "q", false, "Hide Lynis output while it runs")
	rootCmd.AddCommand(auditCmd)
}
