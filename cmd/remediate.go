package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/user/lynis-dash/pkg/config"
	"github.com/user/lynis-dash/pkg/console"
	"github.com/user/lynis-dash/pkg/engine"
	"github.com/user/lynis-dash/pkg/report"
	"github.com/user/lynis-dash/pkg/wrappers"
)

var remediateCmd = &cobra.Command{
	Use:   "remediate [report-file|-]",
	Short: "Print fix plans for report warnings that have a remediation template",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng, err := loadTemplates(cfg)
		if err != nil {
			return err
		}

		path := cfg.ReportPath
		if len(args) == 1 {
			path = args[0]
		}
		r, err := wrappers.ReadReport(path)
		if err != nil {
			return err
		}

		vars := map[string]string{"hostname": r.Hostname("localhost")}
		planned := 0
		for _, w := range r.Warnings {
			e := report.ParseEntry(w)
			if _, ok := eng.Lookup(e.TestID); !ok {
				console.Debugf("No template for %q", e.TestID)
				continue
			}
			plan, err := eng.GeneratePlan(e.TestID, vars)
			if err != nil {
				console.Warnf("%s: %v", e.TestID, err)
				continue
			}
			pterm.DefaultBox.WithTitle(e.Label()).Println(plan.String())
			planned++
		}

		console.Infof("%d of %d warnings have a remediation plan.", planned, len(r.Warnings))
		return nil
	},
}

var remediateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available remediation templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng, err := loadTemplates(cfg)
		if err != nil {
			return err
		}
		list := eng.ListTemplates()
		if len(list) == 0 {
			console.Infof("No remediation templates found in %s.", cfg.TemplatesDir)
			return nil
		}
		for _, t := range list {
			fmt.Println(t)
		}
		return nil
	},
}

// loadTemplates treats a missing templates directory as an empty one
func loadTemplates(cfg *config.Config) (*engine.RemediationEngine, error) {
	eng := engine.NewRemediationEngine()
	if err := eng.LoadTemplates(cfg.TemplatesDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			console.Debugf("Templates dir %s not found", cfg.TemplatesDir)
			return eng, nil
		}
		return nil, err
	}
	return eng, nil
}

func init() {
	remediateCmd.AddCommand(remediateListCmd)
	rootCmd.AddCommand(remediateCmd)
}
