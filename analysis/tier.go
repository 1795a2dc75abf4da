package analysis

// Tier is the risk classification derived from the negative-record share.
type Tier string

const (
	TierHigh   Tier = "HIGH"
	TierMedium Tier = "MEDIUM"
	TierLow    Tier = "LOW"
)

// Classify maps a negative percentage to a tier. Boundary values belong
// to the higher tier.
func Classify(negativePercent float64) Tier {
	switch {
	case negativePercent >= 30:
		return TierHigh
	case negativePercent >= 15:
		return TierMedium
	default:
		return TierLow
	}
}
