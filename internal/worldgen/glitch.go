package worldgen

// Tier is the glitch severity derived from the UI slider, ordered from least
// to most severe.
type Tier string

const (
	TierMinor    Tier = "minor"
	TierUnstable Tier = "unstable"
	TierChaotic  Tier = "chaotic"
)

// TierFromSlider maps a slider value in [0,100] to a glitch tier. The bands
// are [0,34) minor, [34,67) unstable and [67,100] chaotic. The caller is
// responsible for rejecting non-finite input.
func TierFromSlider(v float64) Tier {
	switch {
	case v < 34:
		return TierMinor
	case v < 67:
		return TierUnstable
	default:
		return TierChaotic
	}
}
