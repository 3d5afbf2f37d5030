package report

import "fmt"

// Tier is the hardening posture derived from the hardening index, ordered
// from worst to best.
type Tier int

const (
	TierWeak Tier = iota
	TierModerate
	TierGood
	TierExcellent
)

const (
	excellentThreshold = 80
	goodThreshold      = 60
	moderateThreshold  = 40
)

// Classify maps a hardening index to its tier. Lower bounds are inclusive
// and out-of-range scores fall into the nearest tier.
func Classify(index int) Tier {
	switch {
	case index >= excellentThreshold:
		return TierExcellent
	case index >= goodThreshold:
		return TierGood
	case index >= moderateThreshold:
		return TierModerate
	default:
		return TierWeak
	}
}

func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "EXCELLENT"
	case TierGood:
		return "GOOD"
	case TierModerate:
		return "MODERATE"
	case TierWeak:
		return "WEAK"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseTier is the inverse of Tier.String.
func ParseTier(s string) (Tier, error) {
	for t := TierWeak; t <= TierExcellent; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tier: %s", s)
}

func (t *Tier) UnmarshalText(b []byte) error {
	v, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
