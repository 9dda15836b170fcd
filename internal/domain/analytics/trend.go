package analytics

// trendThreshold is the minimum absolute movement between the two most
// recent scores before a trend is called out instead of "stable".
const trendThreshold = 5.0

// ClassifyTrend examines a chronologically ordered score series and
// classifies the movement between the two most recent values. Fewer than
// two points yields the insufficient-data state with a zero delta.
func ClassifyTrend(scores []float64) (direction string, delta float64) {
	if len(scores) < 2 {
		return TrendInsufficientData, 0
	}
	delta = scores[len(scores)-1] - scores[len(scores)-2]
	switch {
	case delta > trendThreshold:
		return TrendIncreasing, delta
	case delta < -trendThreshold:
		return TrendDecreasing, delta
	default:
		return TrendStable, delta
	}
}
