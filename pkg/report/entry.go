package report

import "strings"

// Entry is a warning or suggestion value split into the fields Lynis packs
// into it: "TEST-ID|text|details|solution|".
type Entry struct {
	TestID   string `json:"test_id,omitempty"`
	Text     string `json:"text"`
	Details  string `json:"details,omitempty"`
	Solution string `json:"solution,omitempty"`
}

// ParseEntry splits a raw warning or suggestion value. A value without any
// "|" is returned as plain text. Fields set to "-" are treated as empty.
func ParseEntry(value string) Entry {
	if !strings.Contains(value, "|") {
		return Entry{Text: value}
	}

	fields := strings.Split(value, "|")
	field := func(i int) string {
		if i >= len(fields) {
			return ""
		}
		f := strings.TrimSpace(fields[i])
		if f == "-" {
			return ""
		}
		return f
	}

	return Entry{
		TestID:   field(0),
		Text:     field(1),
		Details:  field(2),
		Solution: field(3),
	}
}

// Label is the display form of the entry: "[TEST-ID] text".
func (e Entry) Label() string {
	if e.TestID == "" {
		return e.Text
	}
	return "[" + e.TestID + "] " + e.Text
}
