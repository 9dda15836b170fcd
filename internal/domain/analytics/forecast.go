package analytics

import "sort"

// NormalizeScore maps a forecast value onto the 0-100 display scale.
// External trend services sometimes emit raw probabilities, so anything in
// [0,1] is read as a probability and scaled; everything else is clamped
// into [0,100] as-is.
func NormalizeScore(v float64) float64 {
	if v >= 0 && v <= 1 {
		v *= 100
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// MergeTimeline concatenates the historical series with a forecast series
// into one chronological chart timeline. Historical scores are already on
// the 0-100 scale and are only clamped; forecast values additionally pass
// through NormalizeScore since external trend services sometimes emit raw
// probabilities.
func MergeTimeline(history []TrendPoint, forecast []ForecastPoint) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(history)+len(forecast))
	for _, p := range history {
		out = append(out, SeriesPoint{Date: p.Date, Score: clamp(p.Score)})
	}
	for _, p := range forecast {
		out = append(out, SeriesPoint{Date: p.Date, Score: NormalizeScore(p.Score), Forecast: true})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
