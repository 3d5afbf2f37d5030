package report

import (
	"encoding/json"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		index int
		want  Tier
	}{
		{100, TierExcellent},
		{80, TierExcellent},
		{79, TierGood},
		{60, TierGood},
		{59, TierModerate},
		{40, TierModerate},
		{39, TierWeak},
		{0, TierWeak},
		{-10, TierWeak},
		{250, TierExcellent},
	}
	for _, tt := range tests {
		if got := Classify(tt.index); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.index, got, tt.want)
		}
	}
}

func TestTier_Ordering(t *testing.T) {
	if !(TierWeak < TierModerate && TierModerate < TierGood && TierGood < TierExcellent) {
		t.Error("tiers are not ordered worst to best")
	}
}

func TestTier_TextRoundTrip(t *testing.T) {
	data, err := json.Marshal(map[string]Tier{"tier": TierModerate})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"tier":"MODERATE"}` {
		t.Errorf("unexpected json: %s", data)
	}

	var out map[string]Tier
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out["tier"] != TierModerate {
		t.Errorf("got %s", out["tier"])
	}
}

func TestParseTier_Unknown(t *testing.T) {
	if _, err := ParseTier("BON"); err == nil {
		t.Error("expected error for unknown tier")
	}
}
