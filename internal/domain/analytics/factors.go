package analytics

import (
	"sort"
	"strings"
	"unicode"

	"github.com/glucoview/api/internal/domain/assessment"
)

// acronymLabels overrides the generic un-camel-casing for keys whose
// display form is an acronym or a mixed-case medical term.
var acronymLabels = map[string]string{
	"bmi":                      "BMI",
	"bloodpressure":            "Blood Pressure",
	"systolicbp":               "Systolic BP",
	"diastolicbp":              "Diastolic BP",
	"bp":                       "BP",
	"hba1c":                    "HbA1c",
	"diabetespedigreefunction": "Family History",
}

// normalizeKey strips separators and lowercases so "bloodPressure",
// "blood_pressure", and "Blood Pressure" all resolve to the same insight.
func normalizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// FactorLabel converts a raw feature key into a display label: camelCase
// is split on word boundaries and title-cased, with acronym fixes applied
// first.
func FactorLabel(key string) string {
	if label, ok := acronymLabels[normalizeKey(key)]; ok {
		return label
	}
	var words []string
	var word []rune
	for _, r := range key {
		switch {
		case unicode.IsUpper(r):
			if len(word) > 0 {
				words = append(words, string(word))
				word = word[:0]
			}
			word = append(word, unicode.ToLower(r))
		case r == '_' || r == '-' || r == ' ':
			if len(word) > 0 {
				words = append(words, string(word))
				word = word[:0]
			}
		default:
			word = append(word, r)
		}
	}
	if len(word) > 0 {
		words = append(words, string(word))
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// pregnancyRelated reports whether a feature key concerns pregnancy.
func pregnancyRelated(key string) bool {
	return strings.Contains(normalizeKey(key), "pregnan")
}

// RankFactors turns a feature-importance map into a descending-sorted,
// display-ready list. Pregnancy-related features are dropped outright for
// male subjects no matter how heavily the model weighted them; that is a
// presentation rule, the stored importance map is untouched. Insights are
// attached via normalized-key lookup so upstream key-style drift does not
// silently detach them.
func RankFactors(importance map[string]float64, insights map[string]assessment.MetricInsight, gender string) []RankedFactor {
	normalized := make(map[string]assessment.MetricInsight, len(insights))
	for k, v := range insights {
		normalized[normalizeKey(k)] = v
	}

	factors := make([]RankedFactor, 0, len(importance))
	for key, weight := range importance {
		if gender == assessment.GenderMale && pregnancyRelated(key) {
			continue
		}
		f := RankedFactor{
			Key:     key,
			Label:   FactorLabel(key),
			Percent: weight * 100,
		}
		if ins, ok := normalized[normalizeKey(key)]; ok {
			insCopy := ins
			f.Insight = &insCopy
		}
		factors = append(factors, f)
	}

	sort.SliceStable(factors, func(i, j int) bool {
		if factors[i].Percent != factors[j].Percent {
			return factors[i].Percent > factors[j].Percent
		}
		return factors[i].Key < factors[j].Key
	})
	return factors
}
