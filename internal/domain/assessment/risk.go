package assessment

import "strings"

// ComplicationConfig holds the reinterpretation tuning for patients with a
// recorded diabetes diagnosis: the raw model score is scaled by Multiplier
// (capped at 100) and recategorized on the complication-risk scale instead
// of the plain diabetes-risk scale. The constants are product-tuned and
// pending clinical review, so they are injected rather than hard-coded.
type ComplicationConfig struct {
	Multiplier    float64
	LowBelow      float64
	ModerateBelow float64
	HighBelow     float64
}

// DefaultComplicationConfig returns the tuning currently shipped with the
// product.
func DefaultComplicationConfig() ComplicationConfig {
	return ComplicationConfig{
		Multiplier:    1.15,
		LowBelow:      30,
		ModerateBelow: 70,
		HighBelow:     90,
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// CategorizeComplicationRisk buckets a (already scaled) score on the
// complication-risk scale used for diagnosed patients.
func (c ComplicationConfig) CategorizeComplicationRisk(score float64) string {
	switch {
	case score < c.LowBelow:
		return CategoryLow
	case score < c.ModerateBelow:
		return CategoryModerate
	case score < c.HighBelow:
		return CategoryHigh
	default:
		return CategoryVeryHigh
	}
}

// Reinterpret converts a raw model score into the displayed score and
// category. For diagnosed patients the score is scaled and recategorized;
// for everyone else the raw score and the model's own category (normalized)
// pass through unchanged. The second return reports whether
// reinterpretation was applied.
func (c ComplicationConfig) Reinterpret(rawScore float64, modelCategory, diabetesStatus string) (float64, string, bool) {
	if !Diagnosed(diabetesStatus) {
		return clampScore(rawScore), NormalizeCategory(modelCategory), false
	}
	score := clampScore(rawScore * c.Multiplier)
	return score, c.CategorizeComplicationRisk(score), true
}

// NormalizeCategory maps the model service's display labels ("Low",
// "Very High") onto the stored category values. Unknown labels fall back
// to moderate so a contract drift surfaces as a visible mid-scale value
// rather than a crash.
func NormalizeCategory(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "low":
		return CategoryLow
	case "moderate", "medium":
		return CategoryModerate
	case "high":
		return CategoryHigh
	case "very high", "very_high", "veryhigh":
		return CategoryVeryHigh
	default:
		return CategoryModerate
	}
}
