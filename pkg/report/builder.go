package report

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode"
)

// Build folds pairs into a new Report. Scalar fields keep the last value
// seen, warnings and suggestions keep every value in order, and every
// "test[...]" key counts as one performed test. Unknown keys are ignored.
func Build(pairs iter.Seq[KeyValuePair]) Report {
	r := newReport()
	for p := range pairs {
		r = apply(r, p)
	}
	return r
}

// Parse builds a Report from the raw text of a report file.
func Parse(text string) Report {
	return Build(Pairs(text))
}

// ParseReader reads all of rd and parses it. Only read errors are returned.
func ParseReader(rd io.Reader) (Report, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read report: %w", err)
	}
	return Parse(string(data)), nil
}

func apply(r Report, p KeyValuePair) Report {
	switch kindOf(p.Key) {
	case keyHardeningIndex:
		r.Hardening.Index = parseIndex(p.Value)
	case keyReportDate:
		r.ReportDate = ptr(p.Value)
	case keyHostname:
		r.SystemInfo.Hostname = ptr(p.Value)
	case keyOS:
		r.SystemInfo.OS = ptr(p.Value)
	case keyOSFullname:
		r.SystemInfo.OSFullname = ptr(p.Value)
	case keyOSVersion:
		r.SystemInfo.OSVersion = ptr(p.Value)
	case keyKernelVersion:
		r.SystemInfo.KernelVersion = ptr(p.Value)
	case keyLinuxVersion:
		r.SystemInfo.LinuxVersion = ptr(p.Value)
	case keyWarning:
		r.Warnings = append(r.Warnings, p.Value)
	case keySuggestion:
		r.Suggestions = append(r.Suggestions, p.Value)
	case keyTest:
		r.Hardening.TestsPerformed++
	case keyIgnored:
	}
	return r
}

// parseIndex reads a leading, optionally signed, decimal integer and ignores
// whatever follows it. Anything without digits, or out of int range, is 0.
func parseIndex(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func ptr(s string) *string {
	return &s
}
