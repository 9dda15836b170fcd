package analytics

import (
	"testing"

	"github.com/glucoview/api/internal/domain/assessment"
)

func intPtr(v int) *int          { return &v }
func strPtr(v string) *string    { return &v }

func testBaselines() []*CohortBaseline {
	return []*CohortBaseline{
		{AvgRiskScore: 30, AvgGlucose: 100, AvgBMI: 26, AvgSystolicBP: 122}, // global
		{Gender: strPtr("male"), AvgRiskScore: 32},
		{AgeMin: intPtr(40), AgeMax: intPtr(49), AvgRiskScore: 35},
		{AgeMin: intPtr(40), AgeMax: intPtr(49), Gender: strPtr("male"), AvgRiskScore: 38},
	}
}

func TestSelectBaseline_Specificity(t *testing.T) {
	baselines := testBaselines()

	tests := []struct {
		name   string
		age    int
		gender string
		want   float64
	}{
		{"age band and gender", 45, "male", 38},
		{"age band only", 45, "female", 35},
		{"gender only", 70, "male", 32},
		{"global fallback", 70, "female", 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := SelectBaseline(baselines, tt.age, tt.gender)
			if b == nil {
				t.Fatal("no baseline selected")
			}
			if b.AvgRiskScore != tt.want {
				t.Errorf("selected baseline with score %f, want %f", b.AvgRiskScore, tt.want)
			}
		})
	}
}

func TestSelectBaseline_NoMatch(t *testing.T) {
	baselines := []*CohortBaseline{{Gender: strPtr("female")}}
	if b := SelectBaseline(baselines, 30, "male"); b != nil {
		t.Errorf("expected nil, got %+v", b)
	}
}

func TestCompare(t *testing.T) {
	record := &assessment.MedicalRecord{
		Age: 45, Gender: "male",
		Glucose: 110, BMI: 26, SystolicBP: 118,
	}
	baseline := &CohortBaseline{
		AgeMin: intPtr(40), AgeMax: intPtr(49), Gender: strPtr("male"),
		AvgRiskScore: 30, AvgGlucose: 100, AvgBMI: 26, AvgSystolicBP: 122,
	}

	cmp := Compare(record, 42.5, baseline)
	if cmp.Cohort != "ages 40-49, male" {
		t.Errorf("cohort = %q", cmp.Cohort)
	}
	if len(cmp.Items) != 4 {
		t.Fatalf("items = %d, want 4", len(cmp.Items))
	}

	byMetric := map[string]ComparisonItem{}
	for _, item := range cmp.Items {
		byMetric[item.Metric] = item
	}
	if item := byMetric["riskScore"]; item.Relation != RelationAbove || item.Delta != 12.5 {
		t.Errorf("riskScore = %+v", item)
	}
	if item := byMetric["glucose"]; item.Relation != RelationAbove {
		t.Errorf("glucose = %+v", item)
	}
	if item := byMetric["bmi"]; item.Relation != RelationEqual || item.Delta != 0 {
		t.Errorf("bmi = %+v", item)
	}
	if item := byMetric["systolicBP"]; item.Relation != RelationBelow || item.Delta != -4 {
		t.Errorf("systolicBP = %+v", item)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		b    CohortBaseline
		want string
	}{
		{CohortBaseline{}, "population average"},
		{CohortBaseline{Gender: strPtr("female")}, "female"},
		{CohortBaseline{AgeMin: intPtr(40), AgeMax: intPtr(49)}, "ages 40-49"},
		{CohortBaseline{AgeMin: intPtr(65)}, "ages 65+"},
	}
	for _, tt := range tests {
		if got := tt.b.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}
