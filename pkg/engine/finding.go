package engine

// Finding represents a normalized security finding from an audit report
type Finding struct {
	ID              string   `json:"id"`
	SourceTool      string   `json:"source_tool"`
	TestID          string   `json:"test_id,omitempty"` // e.g. AUTH-9328
	Category        string   `json:"category"`
	Severity        int      `json:"severity"` // normalized 1-10
	Confidence      string   `json:"confidence"`
	Asset           string   `json:"asset"` // hostname
	Evidence        string   `json:"evidence"`
	RemediationHint string   `json:"remediation_hint"`
	ComplianceList  []string `json:"compliance_mapping,omitempty"` // CIS, ISO27001, NIST, etc
}

// IsWarning reports whether the finding came from a warning rather than a
// suggestion.
func (f Finding) IsWarning() bool {
	return f.Severity >= WarningSeverity
}

// WarningSeverity is the lowest severity given to report warnings.
const WarningSeverity = 6

func (f Finding) key() string {
	return f.Asset + "\x00" + f.Category + "\x00" + f.SourceTool + "\x00" + f.Evidence
}
