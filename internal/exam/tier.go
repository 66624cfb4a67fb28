package exam

// Tier is the expertise tier derived from cumulative points and mastered
// count. The numeric values give tiers a total rank order.
type Tier int

const (
	TierNovice Tier = iota
	TierAdvanced
	TierExpert
	TierMaster
	TierLegend
)

// Label returns the display label for a tier.
func (t Tier) Label() string {
	switch t {
	case TierNovice:
		return "Novice"
	case TierAdvanced:
		return "Advanced"
	case TierExpert:
		return "Expert"
	case TierMaster:
		return "Master"
	case TierLegend:
		return "Legend"
	default:
		return "Unknown"
	}
}

// ComputeTier maps cumulative points and mastered count to an expertise
// tier. Pure function; thresholds are evaluated highest to lowest and the
// first satisfied rule wins.
func ComputeTier(points float64, masteredCount int) Tier {
	switch {
	case points >= 900 && masteredCount >= 4:
		return TierLegend
	case points >= 700 && masteredCount >= 3:
		return TierMaster
	case points >= 500 && masteredCount >= 2:
		return TierExpert
	case points >= 300 && masteredCount >= 1:
		return TierAdvanced
	default:
		return TierNovice
	}
}
