package assessment

import (
	"math"
	"testing"
)

func TestReinterpret_UndiagnosedPassesThrough(t *testing.T) {
	cfg := DefaultComplicationConfig()
	score, category, reinterpreted := cfg.Reinterpret(60, "Moderate", StatusNone)
	if reinterpreted {
		t.Error("undiagnosed must not be reinterpreted")
	}
	if score != 60 {
		t.Errorf("score = %f, want 60", score)
	}
	if category != CategoryModerate {
		t.Errorf("category = %q, want moderate", category)
	}
}

func TestReinterpret_PrediabeticPassesThrough(t *testing.T) {
	cfg := DefaultComplicationConfig()
	_, _, reinterpreted := cfg.Reinterpret(60, "Moderate", StatusPrediabetic)
	if reinterpreted {
		t.Error("prediabetic is at-risk, not diagnosed")
	}
}

func TestReinterpret_DiagnosedScaling(t *testing.T) {
	cfg := DefaultComplicationConfig()

	tests := []struct {
		raw          float64
		wantScore    float64
		wantCategory string
	}{
		{60, 69, CategoryModerate},
		{65.2, 74.98, CategoryHigh},
		{20, 23, CategoryLow},
		{80, 92, CategoryVeryHigh},
		{95, 100, CategoryVeryHigh}, // capped
	}
	for _, tt := range tests {
		score, category, reinterpreted := cfg.Reinterpret(tt.raw, "High", StatusType2)
		if !reinterpreted {
			t.Errorf("raw %f: expected reinterpretation", tt.raw)
		}
		if math.Abs(score-tt.wantScore) > 1e-9 {
			t.Errorf("raw %f: score = %f, want %f", tt.raw, score, tt.wantScore)
		}
		if category != tt.wantCategory {
			t.Errorf("raw %f: category = %q, want %q", tt.raw, category, tt.wantCategory)
		}
	}
}

func TestReinterpret_AllDiagnosedStatuses(t *testing.T) {
	cfg := DefaultComplicationConfig()
	for _, status := range []string{StatusType1, StatusType2, StatusGestational, StatusOther} {
		if _, _, reinterpreted := cfg.Reinterpret(50, "Moderate", status); !reinterpreted {
			t.Errorf("status %q: expected reinterpretation", status)
		}
	}
}

func TestCategorizeComplicationRisk_Boundaries(t *testing.T) {
	cfg := DefaultComplicationConfig()
	tests := []struct {
		score float64
		want  string
	}{
		{0, CategoryLow},
		{29.99, CategoryLow},
		{30, CategoryModerate},
		{69.99, CategoryModerate},
		{70, CategoryHigh},
		{89.99, CategoryHigh},
		{90, CategoryVeryHigh},
		{100, CategoryVeryHigh},
	}
	for _, tt := range tests {
		if got := cfg.CategorizeComplicationRisk(tt.score); got != tt.want {
			t.Errorf("score %f: got %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Low", CategoryLow},
		{"Moderate", CategoryModerate},
		{"High", CategoryHigh},
		{"Very High", CategoryVeryHigh},
		{" very high ", CategoryVeryHigh},
		{"bogus", CategoryModerate},
	}
	for _, tt := range tests {
		if got := NormalizeCategory(tt.label); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.label, got, tt.want)
		}
	}
}
