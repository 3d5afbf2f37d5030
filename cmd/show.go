package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/user/lynis-dash/pkg/console"
	"github.com/user/lynis-dash/pkg/report"
	"github.com/user/lynis-dash/pkg/wrappers"
)

var showCmd = &cobra.Command{
	Use:   "show [report-file|-]",
	Short: "Show a Lynis report",
	Long: `Parses a Lynis report file (default from config, usually
/var/log/lynis-report.dat) and shows one tab of the dashboard.
Use "-" to read the report from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tab, _ := cmd.Flags().GetString("tab")
		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = cfg.OutputFormat
		}

		path := cfg.ReportPath
		if len(args) == 1 {
			path = args[0]
		}

		r, err := wrappers.ReadReport(path)
		if err != nil {
			return err
		}
		console.Debugf("Parsed %s: %d warnings, %d suggestions, %d tests", path, len(r.Warnings), len(r.Suggestions), r.Hardening.TestsPerformed)
		return present(r, tab, format)
	},
}

func present(r report.Report, tab, format string) error {
	switch format {
	case "json":
		return writeJSON(os.Stdout, r)
	case "table":
		if !validTab(tab) {
			return fmt.Errorf("invalid tab %q (want one of %s)", tab, strings.Join(tabs, ", "))
		}
		render(r, tab)
		return nil
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
}

func init() {
	showCmd.Flags().StringP("tab", "t", tabOverview, "Tab to show: "+strings.Join(tabs, ", "))
	showCmd.Flags().StringP("format", "f", "", "Output format: table or json (default from config)")
	rootCmd.AddCommand(showCmd)
}
