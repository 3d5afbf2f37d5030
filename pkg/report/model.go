package report

// SystemInfo describes the audited host. A nil field was never present in
// the report, which is not the same as a field reported with an empty value.
type SystemInfo struct {
	Hostname      *string `json:"hostname,omitempty"`
	OS            *string `json:"os,omitempty"`
	OSFullname    *string `json:"os_fullname,omitempty"`
	OSVersion     *string `json:"os_version,omitempty"`
	KernelVersion *string `json:"kernel_version,omitempty"`
	LinuxVersion  *string `json:"linux_version,omitempty"`
}

// Hardening summarizes the scanner's score and how many checks it ran.
type Hardening struct {
	Index          int `json:"index"` // nominally 0-100, not clamped
	TestsPerformed int `json:"tests_performed"`
}

// Report is the structured form of a single lynis-report.dat file.
type Report struct {
	SystemInfo  SystemInfo `json:"system_info"`
	Hardening   Hardening  `json:"hardening"`
	Warnings    []string   `json:"warnings"`
	Suggestions []string   `json:"suggestions"`
	ReportDate  *string    `json:"report_date,omitempty"`

	// Categories is reserved for grouping findings by test category. It is
	// always empty.
	Categories map[string][]string `json:"categories"`
}

func newReport() Report {
	return Report{
		Warnings:    []string{},
		Suggestions: []string{},
		Categories:  map[string][]string{},
	}
}

// Tier classifies the report's hardening index.
func (r Report) Tier() Tier {
	return Classify(r.Hardening.Index)
}

// Hostname returns the reported hostname, or fallback when none was seen.
func (r Report) Hostname(fallback string) string {
	return Value(r.SystemInfo.Hostname, fallback)
}

// Value dereferences an optional field, returning fallback when it is unset.
func Value(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
