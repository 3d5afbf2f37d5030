package wrappers

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/user/lynis-dash/pkg/console"
	"github.com/user/lynis-dash/pkg/report"
)

const DefaultReportFile = "/tmp/lynis-report.dat"

// LynisRunner runs a local Lynis audit and parses the report it writes
type LynisRunner struct {
	Binary     string
	ReportFile string
	Stdout     io.Writer // audit progress; discarded when nil
}

// Args returns the command line arguments passed to the Lynis binary
func (l *LynisRunner) Args() []string {
	return []string{"audit", "system", "--quick", "--no-colors", "--report-file", l.reportFile()}
}

func (l *LynisRunner) reportFile() string {
	if l.ReportFile == "" {
		return DefaultReportFile
	}
	return l.ReportFile
}

// Run executes the audit. Lynis exits non-zero whenever it has warnings, so
// the exit status is only logged; a missing or unreadable report is the
// actual failure.
func (l *LynisRunner) Run(ctx context.Context) (report.Report, error) {
	binary := l.Binary
	if binary == "" {
		binary = "lynis"
	}
	reportFile := l.reportFile()
	os.Remove(reportFile) // Clean up old report

	cmd := exec.CommandContext(ctx, binary, l.Args()...)
	if l.Stdout != nil {
		cmd.Stdout = l.Stdout
		cmd.Stderr = l.Stdout
	}

	console.Debugf("Running %s %v", binary, l.Args())
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return report.Report{}, fmt.Errorf("lynis audit interrupted: %w", ctx.Err())
		}
		console.Debugf("Lynis finished with: %v (normal when warnings are found)", err)
	}

	return ReadReport(reportFile)
}

// ReadReport parses a report file from disk. "-" reads stdin.
func ReadReport(path string) (report.Report, error) {
	if path == "-" {
		return report.ParseReader(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to open report file: %w", err)
	}
	defer f.Close()
	return report.ParseReader(f)
}
