package report

import (
	"reflect"
	"slices"
	"strings"
	"testing"
)

const scenario = `hostname=web01
os=Linux
hardening_index=72
test[AUTH-9328]=skipped
test[FILE-6310]=done
warning[]=Root login enabled
suggestion[]=Disable unused services
report_datetime_end=2024-05-01 10:00:00
`

func TestParse_EndToEnd(t *testing.T) {
	r := Parse(scenario)

	if got := Value(r.SystemInfo.Hostname, "<nil>"); got != "web01" {
		t.Errorf("hostname = %q", got)
	}
	if got := Value(r.SystemInfo.OS, "<nil>"); got != "Linux" {
		t.Errorf("os = %q", got)
	}
	if r.Hardening.Index != 72 {
		t.Errorf("index = %d, want 72", r.Hardening.Index)
	}
	if r.Hardening.TestsPerformed != 2 {
		t.Errorf("tests = %d, want 2", r.Hardening.TestsPerformed)
	}
	if !slices.Equal(r.Warnings, []string{"Root login enabled"}) {
		t.Errorf("warnings = %q", r.Warnings)
	}
	if !slices.Equal(r.Suggestions, []string{"Disable unused services"}) {
		t.Errorf("suggestions = %q", r.Suggestions)
	}
	if got := Value(r.ReportDate, "<nil>"); got != "2024-05-01 10:00:00" {
		t.Errorf("report date = %q", got)
	}
	if r.Tier() != TierGood {
		t.Errorf("tier = %s, want GOOD", r.Tier())
	}
	if r.SystemInfo.OSFullname != nil || r.SystemInfo.KernelVersion != nil {
		t.Error("expected unseen system fields to stay nil")
	}
}

func TestParse_Empty(t *testing.T) {
	r := Parse("")
	if r.Hardening.Index != 0 || r.Hardening.TestsPerformed != 0 {
		t.Errorf("unexpected hardening: %+v", r.Hardening)
	}
	if r.Warnings == nil || len(r.Warnings) != 0 {
		t.Errorf("expected empty non-nil warnings, got %#v", r.Warnings)
	}
	if r.Suggestions == nil || len(r.Suggestions) != 0 {
		t.Errorf("expected empty non-nil suggestions, got %#v", r.Suggestions)
	}
	if r.ReportDate != nil {
		t.Error("expected report date to be absent")
	}
	if !reflect.DeepEqual(r.SystemInfo, SystemInfo{}) {
		t.Errorf("expected no system info, got %+v", r.SystemInfo)
	}
	if len(r.Categories) != 0 {
		t.Errorf("expected empty categories, got %v", r.Categories)
	}
}

func TestParse_Deterministic(t *testing.T) {
	inputs := []string{"", scenario, "hardening_index=abc\nwarning[]=x\nwarning[]=x"}
	for _, in := range inputs {
		if a, b := Parse(in), Parse(in); !reflect.DeepEqual(a, b) {
			t.Errorf("two parses of %q differ:\n%+v\n%+v", in, a, b)
		}
	}
}

func TestParse_AccumulatesInOrderWithDuplicates(t *testing.T) {
	r := Parse("warning[]=b\nsuggestion[]=s1\nwarning[]=a\nwarning[]=b\nsuggestion[]=s1")
	if !slices.Equal(r.Warnings, []string{"b", "a", "b"}) {
		t.Errorf("warnings = %q", r.Warnings)
	}
	if !slices.Equal(r.Suggestions, []string{"s1", "s1"}) {
		t.Errorf("suggestions = %q", r.Suggestions)
	}
}

func TestParse_ValueIntegrity(t *testing.T) {
	r := Parse("warning[]=Found weak cipher: a=b")
	if len(r.Warnings) != 1 || r.Warnings[0] != "Found weak cipher: a=b" {
		t.Errorf("warnings = %q", r.Warnings)
	}
}

func TestParse_LastWriteWins(t *testing.T) {
	r := Parse("hostname=old\nhardening_index=40\nreport_datetime_end=a\nhostname=new\nhardening_index=92\nreport_datetime_end=b")
	if r.Hardening.Index != 92 {
		t.Errorf("index = %d, want 92", r.Hardening.Index)
	}
	if *r.SystemInfo.Hostname != "new" {
		t.Errorf("hostname = %q", *r.SystemInfo.Hostname)
	}
	if *r.ReportDate != "b" {
		t.Errorf("report date = %q", *r.ReportDate)
	}
}

func TestParse_FailedIndexResetsPreviousValue(t *testing.T) {
	r := Parse("hardening_index=85\nhardening_index=n/a")
	if r.Hardening.Index != 0 {
		t.Errorf("index = %d, want 0", r.Hardening.Index)
	}
}

func TestParse_CountsEveryTestLine(t *testing.T) {
	text := strings.Join([]string{
		"test[AUTH-9328]=done",
		"test[AUTH-9328]=done",
		"test[FILE-6310]=",
		"test[=weird",
		"tests_executed=AUTH-9328|FILE-6310",
		"test=nope",
	}, "\n")
	r := Parse(text)
	if r.Hardening.TestsPerformed != 4 {
		t.Errorf("tests = %d, want 4", r.Hardening.TestsPerformed)
	}
}

func TestParse_SystemInfoFields(t *testing.T) {
	r := Parse(strings.Join([]string{
		"hostname=db02",
		"os=Linux",
		"os_fullname=Debian GNU/Linux 12",
		"os_version=12",
		"kernel_version=6.1.0",
		"linux_version=Debian",
		"os_name=ignored",
	}, "\n"))

	want := map[string]*string{
		"db02":                r.SystemInfo.Hostname,
		"Linux":               r.SystemInfo.OS,
		"Debian GNU/Linux 12": r.SystemInfo.OSFullname,
		"12":                  r.SystemInfo.OSVersion,
		"6.1.0":               r.SystemInfo.KernelVersion,
		"Debian":              r.SystemInfo.LinuxVersion,
	}
	for w, got := range want {
		if got == nil || *got != w {
			t.Errorf("expected %q, got %v", w, got)
		}
	}
}

func TestParse_EmptyValueIsPresent(t *testing.T) {
	r := Parse("hostname=")
	if r.SystemInfo.Hostname == nil {
		t.Fatal("expected hostname to be set")
	}
	if *r.SystemInfo.Hostname != "" {
		t.Errorf("hostname = %q, want empty", *r.SystemInfo.Hostname)
	}
}

func TestParse_UnknownKeysIgnored(t *testing.T) {
	r := Parse("lynis_version=3.0.9\nWarning[]=case matters\nwarning=no brackets\nsuggestion[] =space")
	if !reflect.DeepEqual(r, Parse("")) {
		t.Errorf("expected empty report, got %+v", r)
	}
}

func TestParse_IndependentResults(t *testing.T) {
	a := Parse("warning[]=one")
	b := Parse("warning[]=one")
	a.Warnings[0] = "changed"
	if b.Warnings[0] != "one" {
		t.Error("reports share warning storage")
	}
}

func TestParseReader(t *testing.T) {
	r, err := ParseReader(strings.NewReader(scenario))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(r, Parse(scenario)) {
		t.Error("ParseReader and Parse disagree")
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"72", 72},
		{"0", 0},
		{"100", 100},
		{"-5", -5},
		{"+7", 7},
		{"  64", 64},
		{"72abc", 72},
		{"12.5", 12},
		{"", 0},
		{"abc", 0},
		{"-", 0},
		{" ", 0},
		{"99999999999999999999999", 0},
	}
	for _, tt := range tests {
		if got := parseIndex(tt.in); got != tt.want {
			t.Errorf("parseIndex(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
