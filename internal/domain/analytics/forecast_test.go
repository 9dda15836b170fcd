package analytics

import (
	"testing"
	"time"
)

func TestNormalizeScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.73, 73},
		{82, 82},
		{0, 0},
		{1, 100},
		{-5, 0},
		{140, 100},
		{0.5, 50},
	}
	for _, tt := range tests {
		if got := NormalizeScore(tt.in); got != tt.want {
			t.Errorf("NormalizeScore(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestMergeTimeline(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
	}
	history := []TrendPoint{
		{Date: day(1), Score: 40},
		{Date: day(5), Score: 120}, // bad upstream value, must clamp
	}
	forecast := []ForecastPoint{
		{Date: day(10), Score: 0.73},
		{Date: day(15), Score: 82},
	}

	series := MergeTimeline(history, forecast)
	if len(series) != 4 {
		t.Fatalf("len = %d, want 4", len(series))
	}
	for i := 1; i < len(series); i++ {
		if series[i].Date.Before(series[i-1].Date) {
			t.Fatal("series not chronological")
		}
	}
	if series[1].Score != 100 {
		t.Errorf("historical 120 clamped to %f, want 100", series[1].Score)
	}
	if series[2].Score != 73 || !series[2].Forecast {
		t.Errorf("forecast 0.73 -> %f forecast=%v, want 73 true", series[2].Score, series[2].Forecast)
	}
	if series[3].Score != 82 {
		t.Errorf("forecast 82 -> %f, want passthrough", series[3].Score)
	}
	if series[0].Forecast {
		t.Error("historical point flagged as forecast")
	}
}

func TestMergeTimeline_InterleavedDates(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
	}
	history := []TrendPoint{{Date: day(10), Score: 40}}
	forecast := []ForecastPoint{{Date: day(5), Score: 30}}

	series := MergeTimeline(history, forecast)
	if !series[0].Forecast || series[1].Forecast {
		t.Errorf("expected forecast point sorted first: %+v", series)
	}
}
