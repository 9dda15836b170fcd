package analytics

import (
	"fmt"
	"math"

	"github.com/glucoview/api/internal/domain/assessment"
)

// equalTolerance below which a patient-baseline difference is reported as
// equal rather than above/below.
const equalTolerance = 1e-9

// matches reports whether a baseline's slice covers the given patient.
func (b *CohortBaseline) matches(age int, gender string) bool {
	if b.Gender != nil && *b.Gender != gender {
		return false
	}
	if b.AgeMin != nil && age < *b.AgeMin {
		return false
	}
	if b.AgeMax != nil && age > *b.AgeMax {
		return false
	}
	return true
}

// specificity orders candidate baselines: age-band+gender beats age-band
// alone beats gender alone beats the global average.
func (b *CohortBaseline) specificity() int {
	s := 0
	if b.AgeMin != nil || b.AgeMax != nil {
		s += 2
	}
	if b.Gender != nil {
		s++
	}
	return s
}

// Describe renders the slice for display, e.g. "ages 40-49, female".
func (b *CohortBaseline) Describe() string {
	switch {
	case (b.AgeMin != nil || b.AgeMax != nil) && b.Gender != nil:
		return fmt.Sprintf("ages %s, %s", b.ageBand(), *b.Gender)
	case b.AgeMin != nil || b.AgeMax != nil:
		return "ages " + b.ageBand()
	case b.Gender != nil:
		return *b.Gender
	default:
		return "population average"
	}
}

func (b *CohortBaseline) ageBand() string {
	switch {
	case b.AgeMin != nil && b.AgeMax != nil:
		return fmt.Sprintf("%d-%d", *b.AgeMin, *b.AgeMax)
	case b.AgeMin != nil:
		return fmt.Sprintf("%d+", *b.AgeMin)
	default:
		return fmt.Sprintf("under %d", *b.AgeMax+1)
	}
}

// SelectBaseline picks the most specific baseline covering the patient, or
// nil when none matches. Ties keep the first candidate in input order.
func SelectBaseline(baselines []*CohortBaseline, age int, gender string) *CohortBaseline {
	var best *CohortBaseline
	for _, b := range baselines {
		if !b.matches(age, gender) {
			continue
		}
		if best == nil || b.specificity() > best.specificity() {
			best = b
		}
	}
	return best
}

func relation(delta float64) string {
	switch {
	case math.Abs(delta) < equalTolerance:
		return RelationEqual
	case delta > 0:
		return RelationAbove
	default:
		return RelationBelow
	}
}

func compareItem(metric string, patient, baseline float64) ComparisonItem {
	delta := patient - baseline
	return ComparisonItem{
		Metric:   metric,
		Patient:  patient,
		Baseline: baseline,
		Delta:    delta,
		Relation: relation(delta),
	}
}

// Compare computes the signed patient-minus-baseline difference for risk
// score, glucose, BMI, and systolic BP. Pure: neither input is mutated.
func Compare(record *assessment.MedicalRecord, riskScore float64, baseline *CohortBaseline) Comparison {
	return Comparison{
		Cohort: baseline.Describe(),
		Items: []ComparisonItem{
			compareItem("riskScore", riskScore, baseline.AvgRiskScore),
			compareItem("glucose", record.Glucose, baseline.AvgGlucose),
			compareItem("bmi", record.BMI, baseline.AvgBMI),
			compareItem("systolicBP", record.SystolicBP, baseline.AvgSystolicBP),
		},
	}
}
