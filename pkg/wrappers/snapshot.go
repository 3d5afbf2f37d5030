package wrappers

import (
	"fmt"
	"strings"

	"github.com/user/lynis-dash/pkg/engine"
)

// SaveSnapshot saves the graph's findings to path and returns a summary
func SaveSnapshot(graph *engine.UnifiedGraph, path string) (string, error) {
	if graph == nil {
		return "", fmt.Errorf("unified graph not initialized")
	}
	if err := graph.SaveSnapshot(path); err != nil {
		return "", err
	}
	return fmt.Sprintf("Saved %d findings to snapshot '%s'.", len(graph.Snapshot()), path), nil
}

// DiffSnapshot compares the graph against the baseline saved at path and
// returns the diff along with a printable summary
func DiffSnapshot(graph *engine.UnifiedGraph, path string) (engine.SnapshotDiff, string, error) {
	if graph == nil {
		return engine.SnapshotDiff{}, "", fmt.Errorf("unified graph not initialized")
	}

	baseline := engine.NewUnifiedGraph()
	if err := baseline.LoadSnapshot(path); err != nil {
		return engine.SnapshotDiff{}, "", fmt.Errorf("loading baseline '%s' (has a snapshot been saved?): %w", path, err)
	}

	diff := graph.CompareSnapshot(baseline)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Snapshot Comparison (vs %s):\n", path))
	sb.WriteString("--------------------------------------------------\n")

	sb.WriteString(fmt.Sprintf("NEW RISKS: %d\n", len(diff.New)))
	writeFindings(&sb, "+", diff.New, 0)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("FIXED RISKS: %d\n", len(diff.Fixed)))
	writeFindings(&sb, "-", diff.Fixed, 0)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("UNCHANGED RISKS: %d\n", len(diff.Unchanged)))
	writeFindings(&sb, "=", diff.Unchanged, 10)

	return diff, sb.String(), nil
}

// writeFindings lists findings, stopping after limit entries when limit > 0
func writeFindings(sb *strings.Builder, mark string, findings []engine.Finding, limit int) {
	for i, f := range findings {
		if limit > 0 && i == limit {
			sb.WriteString(fmt.Sprintf("  ... and %d more.\n", len(findings)-limit))
			return
		}
		sb.WriteString(fmt.Sprintf("  [%s] [%d/10] %s (%s) - %s\n", mark, f.Severity, f.Asset, f.SourceTool, f.Evidence))
	}
}
