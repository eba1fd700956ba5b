package readiness

type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

const (
	HighThreshold   = 80
	MediumThreshold = 50
)

// Classify maps a percentage onto a tier. Boundaries belong to the higher tier.
func Classify(pct int) Tier {
	switch {
	case pct >= HighThreshold:
		return TierHigh
	case pct >= MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

func (t Tier) Message() string {
	switch t {
	case TierHigh:
		return "Excellent! You're almost ready!"
	case TierMedium:
		return "Good progress! Keep learning!"
	default:
		return "Let's bridge that gap together!"
	}
}
