package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/user/lynis-dash/pkg/report"
)

// Dashboard tabs
const (
	tabOverview    = "overview"
	tabWarnings    = "warnings"
	tabSuggestions = "suggestions"
	tabSystem      = "system"
	tabAll         = "all"
)

var tabs = []string{tabOverview, tabWarnings, tabSuggestions, tabSystem, tabAll}

func validTab(tab string) bool {
	for _, t := range tabs {
		if t == tab {
			return true
		}
	}
	return false
}

func tierStyle(t report.Tier) *pterm.Style {
	switch t {
	case report.TierExcellent:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case report.TierGood:
		return pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	case report.TierModerate:
		return pterm.NewStyle(pterm.FgLightRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	}
}

func render(r report.Report, tab string) {
	switch tab {
	case tabOverview:
		renderOverview(r)
	case tabWarnings:
		renderEntries("Warnings", r.Warnings, pterm.FgRed)
	case tabSuggestions:
		renderEntries("Suggestions", r.Suggestions, pterm.FgYellow)
	case tabSystem:
		renderSystem(r)
	case tabAll:
		renderOverview(r)
		renderEntries("Warnings", r.Warnings, pterm.FgRed)
		renderEntries("Suggestions", r.Suggestions, pterm.FgYellow)
		renderSystem(r)
	}
}

func renderOverview(r report.Report) {
	tier := r.Tier()
	body := fmt.Sprintf("Host:             %s\nReport date:      %s\nHardening index:  %s (%s)\nTests performed:  %d\nWarnings:         %s\nSuggestions:      %s",
		r.Hostname("unknown"),
		report.Value(r.ReportDate, "unknown"),
		tierStyle(tier).Sprintf("%d/100", r.Hardening.Index),
		tierStyle(tier).Sprint(tier.String()),
		r.Hardening.TestsPerformed,
		pterm.FgRed.Sprint(len(r.Warnings)),
		pterm.FgYellow.Sprint(len(r.Suggestions)),
	)
	pterm.DefaultBox.WithTitle("Overview").Println(body)
	pterm.Println()
}

func renderEntries(title string, values []string, color pterm.Color) {
	pterm.DefaultSection.Println(fmt.Sprintf("%s (%d)", title, len(values)))
	if len(values) == 0 {
		pterm.Success.Printfln("No %s in this report.", title)
		return
	}

	data := [][]string{{"#", "Test", "Finding", "Details", "Solution"}}
	for i, v := range values {
		e := report.ParseEntry(v)
		data = append(data, []string{
			strconv.Itoa(i + 1),
			color.Sprint(e.TestID),
			e.Text,
			e.Details,
			e.Solution,
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Println()
}

func renderSystem(r report.Report) {
	pterm.DefaultSection.Println("System")
	si := r.SystemInfo
	data := [][]string{
		{"Field", "Value"},
		{"Hostname", report.Value(si.Hostname, "-")},
		{"OS", report.Value(si.OS, "-")},
		{"OS name", report.Value(si.OSFullname, "-")},
		{"OS version", report.Value(si.OSVersion, "-")},
		{"Kernel", report.Value(si.KernelVersion, "-")},
		{"Linux version", report.Value(si.LinuxVersion, "-")},
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Println()
}

type jsonReport struct {
	report.Report
	Tier report.Tier `json:"tier"`
}

func writeJSON(w io.Writer, r report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{Report: r, Tier: r.Tier()})
}
