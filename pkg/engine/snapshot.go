package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// SnapshotDiff is the result of comparing current findings with a baseline
type SnapshotDiff struct {
	New       []Finding
	Fixed     []Finding
	Unchanged []Finding
}

type snapshotFile struct {
	Findings []Finding `json:"findings"`
}

// SaveSnapshot writes the current findings to path as JSON
func (g *UnifiedGraph) SaveSnapshot(path string) error {
	data, err := json.MarshalIndent(snapshotFile{Findings: g.Snapshot()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot replaces the graph's findings with the ones stored at path
func (g *UnifiedGraph) LoadSnapshot(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap snapshotFile
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	if snap.Findings == nil {
		snap.Findings = make([]Finding, 0)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.Findings = snap.Findings
	return nil
}

// CompareSnapshot classifies findings as new (only in g), fixed (only in
// baseline) or unchanged (in both)
func (g *UnifiedGraph) CompareSnapshot(baseline *UnifiedGraph) SnapshotDiff {
	current := g.Snapshot()
	base := baseline.Snapshot()

	inBase := make(map[string]bool, len(base))
	for _, f := range base {
		inBase[f.key()] = true
	}
	inCurrent := make(map[string]bool, len(current))
	for _, f := range current {
		inCurrent[f.key()] = true
	}

	var diff SnapshotDiff
	for _, f := range current {
		if inBase[f.key()] {
			diff.Unchanged = append(diff.Unchanged, f)
		} else {
			diff.New = append(diff.New, f)
		}
	}
	for _, f := range base {
		if !inCurrent[f.key()] {
			diff.Fixed = append(diff.Fixed, f)
		}
	}
	return diff
}
