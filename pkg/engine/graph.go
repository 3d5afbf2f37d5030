package engine

import (
	"fmt"
	"strings"
	"sync"
)

const escalationTag = " [ESCALATED: weak hardening posture]"

// UnifiedGraph holds the normalized findings of one or more hosts
type UnifiedGraph struct {
	Findings []Finding
	weak     map[string]bool
	mu       sync.RWMutex
}

// NewUnifiedGraph creates a new graph instance
func NewUnifiedGraph() *UnifiedGraph {
	return &UnifiedGraph{
		Findings: make([]Finding, 0),
		weak:     make(map[string]bool),
	}
}

// MarkWeak records that asset has a weak hardening posture. Its warnings
// are escalated on the next ingest.
func (g *UnifiedGraph) MarkWeak(asset string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.weak[asset] = true
	g.escalateWeakAssets()
}

// AddFindings ingests new findings, normalizes them, deduplicates, and escalates
func (g *UnifiedGraph) AddFindings(newFindings []Finding) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, f := range newFindings {
		if f.Severity < 1 {
			f.Severity = 1
		}
		if f.Severity > 10 {
			f.Severity = 10
		}

		// Same asset, category, tool and evidence is the same finding.
		exists := false
		for i, existing := range g.Findings {
			if existing.key() == f.key() {
				g.Findings[i] = f // Overwrite with latest
				exists = true
				break
			}
		}

		if !exists {
			g.Findings = append(g.Findings, f)
		}
	}

	g.escalateWeakAssets()
}

// escalateWeakAssets boosts warnings on weak hosts. Already tagged findings
// are left alone so repeated ingests don't keep raising them.
func (g *UnifiedGraph) escalateWeakAssets() {
	for i := range g.Findings {
		f := &g.Findings[i]
		if !g.weak[f.Asset] || !f.IsWarning() || strings.HasSuffix(f.RemediationHint, escalationTag) {
			continue
		}
		f.Severity += 2
		if f.Severity > 10 {
			f.Severity = 10
		}
		f.RemediationHint += escalationTag
	}
}

// Snapshot returns a copy of the current findings
func (g *UnifiedGraph) Snapshot() []Finding {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Finding, len(g.Findings))
	copy(out, g.Findings)
	return out
}

// GetReport returns a text summary of the graph
func (g *UnifiedGraph) GetReport() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Unified Finding Graph (%d findings):\n", len(g.Findings)))
	sb.WriteString("--------------------------------------------------\n")

	for _, f := range g.Findings {
		sb.WriteString(fmt.Sprintf("[%d/10] %s (%s)\n", f.Severity, f.Category, f.SourceTool))
		sb.WriteString(fmt.Sprintf("  Asset: %s\n", f.Asset))
		sb.WriteString(fmt.Sprintf("  Evidence: %s\n", f.Evidence))
		if f.RemediationHint != "" {
			sb.WriteString(fmt.Sprintf("  Fix: %s\n", f.RemediationHint))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
