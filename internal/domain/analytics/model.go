package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/glucoview/api/internal/domain/assessment"
)

// Trend directions. InsufficientData is a first-class state so the client
// can distinguish "nothing moved" from "not enough history to say".
const (
	TrendIncreasing       = "increasing"
	TrendDecreasing       = "decreasing"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// Relations of a patient value to its cohort baseline.
const (
	RelationAbove = "above"
	RelationBelow = "below"
	RelationEqual = "equal"
)

// TrendPoint is one historical risk score on the patient's timeline.
type TrendPoint struct {
	RecordID uuid.UUID `json:"record_id"`
	Date     time.Time `json:"date"`
	Score    float64   `json:"score"`
	Category string    `json:"category"`
}

// TrendSummary is the classified movement between the two most recent
// scores plus the full historical series.
type TrendSummary struct {
	Direction string       `json:"direction"`
	Delta     float64      `json:"delta"`
	Points    []TrendPoint `json:"points"`
}

// SeriesPoint is one entry on the merged history+forecast chart timeline.
type SeriesPoint struct {
	Date     time.Time `json:"date"`
	Score    float64   `json:"score"`
	Forecast bool      `json:"forecast"`
}

// ForecastPoint is a projected score supplied by an external trend
// service. Score may arrive as a 0-1 probability or a 0-100 percentage.
type ForecastPoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

// RankedFactor is one display-ready risk factor.
type RankedFactor struct {
	Key     string                    `json:"key"`
	Label   string                    `json:"label"`
	Percent float64                   `json:"percent"`
	Insight *assessment.MetricInsight `json:"insight,omitempty"`
}

// CohortBaseline maps to the cohort_baseline reference table. Nil AgeBand
// bounds or Gender mean the slice is not restricted on that axis; a row
// with all three nil is the global average.
type CohortBaseline struct {
	ID            uuid.UUID `db:"id" json:"id"`
	AgeMin        *int      `db:"age_min" json:"age_min,omitempty"`
	AgeMax        *int      `db:"age_max" json:"age_max,omitempty"`
	Gender        *string   `db:"gender" json:"gender,omitempty"`
	AvgRiskScore  float64   `db:"avg_risk_score" json:"avg_risk_score"`
	AvgGlucose    float64   `db:"avg_glucose" json:"avg_glucose"`
	AvgBMI        float64   `db:"avg_bmi" json:"avg_bmi"`
	AvgSystolicBP float64   `db:"avg_systolic_bp" json:"avg_systolic_bp"`
}

// ComparisonItem is the patient-vs-baseline difference for one metric.
type ComparisonItem struct {
	Metric   string  `json:"metric"`
	Patient  float64 `json:"patient"`
	Baseline float64 `json:"baseline"`
	Delta    float64 `json:"delta"`
	Relation string  `json:"relation"`
}

// Comparison is the full cohort comparison for a patient's latest record.
type Comparison struct {
	Cohort string           `json:"cohort"`
	Items  []ComparisonItem `json:"items"`
}
