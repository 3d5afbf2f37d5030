package wrappers

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/lynis-dash/pkg/engine"
	"github.com/user/lynis-dash/pkg/report"
)

func graphOf(text string) *engine.UnifiedGraph {
	g := engine.NewUnifiedGraph()
	g.AddFindings(report.Parse(text).Findings())
	return g
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")

	summary, err := SaveSnapshot(graphOf("hostname=web01\nwarning[]=old issue\nwarning[]=kept issue"), path)
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if !strings.Contains(summary, "Saved 2 findings") {
		t.Errorf("summary = %q", summary)
	}

	diff, out, err := DiffSnapshot(graphOf("hostname=web01\nwarning[]=kept issue\nsuggestion[]=new idea"), path)
	if err != nil {
		t.Fatalf("DiffSnapshot: %v", err)
	}
	if len(diff.New) != 1 || len(diff.Fixed) != 1 || len(diff.Unchanged) != 1 {
		t.Errorf("unexpected diff: %+v", diff)
	}
	for _, want := range []string{"NEW RISKS: 1", "FIXED RISKS: 1", "UNCHANGED RISKS: 1", "[-] [6/10] web01 (Lynis) - old issue"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestDiffSnapshot_NoBaseline(t *testing.T) {
	if _, _, err := DiffSnapshot(engine.NewUnifiedGraph(), filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Error("expected error without a baseline")
	}
	if _, err := SaveSnapshot(nil, "x"); err == nil {
		t.Error("expected error for nil graph")
	}
}
