package report

import "strings"

// keyKind is the closed set of report keys the builder understands.
type keyKind int

const (
	keyIgnored keyKind = iota
	keyHardeningIndex
	keyReportDate
	keyHostname
	keyOS
	keyOSFullname
	keyOSVersion
	keyKernelVersion
	keyLinuxVersion
	keyWarning
	keySuggestion
	keyTest
)

const testKeyPrefix = "test["

var exactKeys = map[string]keyKind{
	"hardening_index":     keyHardeningIndex,
	"report_datetime_end": keyReportDate,
	"hostname":            keyHostname,
	"os":                  keyOS,
	"os_fullname":         keyOSFullname,
	"os_version":          keyOSVersion,
	"kernel_version":      keyKernelVersion,
	"linux_version":       keyLinuxVersion,
	"warning[]":           keyWarning,
	"suggestion[]":        keySuggestion,
}

func kindOf(key string) keyKind {
	if k, ok := exactKeys[key]; ok {
		return k
	}
	if strings.HasPrefix(key, testKeyPrefix) {
		return keyTest
	}
	return keyIgnored
}
