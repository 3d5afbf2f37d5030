package report

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/user/lynis-dash/pkg/engine"
)

const (
	SourceTool = "Lynis"

	warningSeverity    = engine.WarningSeverity
	suggestionSeverity = 3
)

// Findings normalizes the report's warnings and suggestions into engine
// findings, warnings first, each in encounter order. The asset is the
// reported hostname, or "localhost" when the report carries none.
func (r Report) Findings() []engine.Finding {
	asset := r.Hostname("localhost")
	findings := make([]engine.Finding, 0, len(r.Warnings)+len(r.Suggestions))

	for _, w := range r.Warnings {
		findings = append(findings, newFinding("lynis-warn-", w, asset, warningSeverity, "High",
			"Check the Lynis log for this test's remediation steps."))
	}
	for _, s := range r.Suggestions {
		findings = append(findings, newFinding("lynis-sugg-", s, asset, suggestionSeverity, "Medium",
			"Consider implementing this suggestion for better hardening."))
	}
	return findings
}

func newFinding(prefix, value, asset string, severity int, confidence, hint string) engine.Finding {
	hash := md5.Sum([]byte(value))
	id := hex.EncodeToString(hash[:])

	e := ParseEntry(value)
	if e.Solution != "" {
		hint = e.Solution
	}

	return engine.Finding{
		ID:              prefix + id[:8],
		SourceTool:      SourceTool,
		TestID:          e.TestID,
		Category:        "compliance",
		Severity:        severity,
		Confidence:      confidence,
		Asset:           asset,
		Evidence:        value,
		RemediationHint: hint,
	}
}
