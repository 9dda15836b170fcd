package assessment

import (
	"fmt"
	"sort"
	"strings"
)

// Field names used in validation errors. These match the form field names the
// web client focuses on, so the error map keys double as focus targets.
const (
	FieldGender        = "gender"
	FieldSystolicBP    = "systolicBP"
	FieldDiastolicBP   = "diastolicBP"
	FieldGlucoseLevel  = "glucoseLevel"
	FieldAge           = "age"
	FieldHeight        = "height"
	FieldWeight        = "weight"
	FieldInsulinLevel  = "insulinLevel"
	FieldSkinThickness = "skinThickness"
	FieldPregnancies   = "pregnancies"
)

// focusPriority is the order in which the client scrolls to the first
// invalid field.
var focusPriority = []string{
	FieldGender,
	FieldSystolicBP,
	FieldDiastolicBP,
	FieldGlucoseLevel,
	FieldAge,
	FieldHeight,
	FieldWeight,
	FieldInsulinLevel,
	FieldSkinThickness,
	FieldPregnancies,
}

// ValidationErrors maps field names to human-readable messages. All
// violations are collected on a single pass; an empty map means the input
// is valid.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// FirstInvalidField returns the highest-priority field present in the error
// set, or "" when the set is empty. Fields outside the known priority list
// come last, in lexical order.
func (v ValidationErrors) FirstInvalidField() string {
	for _, f := range focusPriority {
		if _, ok := v[f]; ok {
			return f
		}
	}
	var rest []string
	for f := range v {
		rest = append(rest, f)
	}
	if len(rest) == 0 {
		return ""
	}
	sort.Strings(rest)
	return rest[0]
}

// BMI derives body mass index from weight in kilograms and height in
// centimeters.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

func rangeMsg(label string, min, max float64) string {
	return fmt.Sprintf("%s must be between %g and %g", label, min, max)
}

// Validate checks every field of an assessment submission against its
// plausible physiological range and returns all violations at once. It
// performs no I/O; a non-empty result means the submission must not reach
// the prediction service.
func Validate(in *Input) ValidationErrors {
	errs := ValidationErrors{}

	switch in.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		errs[FieldGender] = "gender must be male, female, or other"
	}

	if in.Age < 1 || in.Age > 120 {
		errs[FieldAge] = rangeMsg("age", 1, 120)
	}
	if in.HeightCm < 50 || in.HeightCm > 250 {
		errs[FieldHeight] = rangeMsg("height", 50, 250)
	}
	if in.WeightKg < 20 || in.WeightKg > 300 {
		errs[FieldWeight] = rangeMsg("weight", 20, 300)
	}
	if in.GlucoseLevel < 50 || in.GlucoseLevel > 300 {
		errs[FieldGlucoseLevel] = rangeMsg("glucose", 50, 300)
	}
	if in.SystolicBP < 60 || in.SystolicBP > 250 {
		errs[FieldSystolicBP] = rangeMsg("systolic blood pressure", 60, 250)
	}
	if in.DiastolicBP < 40 || in.DiastolicBP > 150 {
		errs[FieldDiastolicBP] = rangeMsg("diastolic blood pressure", 40, 150)
	}
	// Ordering violation marks both fields, on top of any range violations.
	if in.SystolicBP <= in.DiastolicBP {
		errs[FieldSystolicBP] = "systolic must be greater than diastolic"
		errs[FieldDiastolicBP] = "diastolic must be less than systolic"
	}

	// Optional fields validated only when present.
	if in.InsulinLevel != nil && (*in.InsulinLevel < 0 || *in.InsulinLevel > 1000) {
		errs[FieldInsulinLevel] = rangeMsg("insulin", 0, 1000)
	}
	if in.SkinThickness != nil && (*in.SkinThickness < 0 || *in.SkinThickness > 100) {
		errs[FieldSkinThickness] = rangeMsg("skin thickness", 0, 100)
	}
	if in.Pregnancies != nil && (*in.Pregnancies < 0 || *in.Pregnancies > 20) {
		errs[FieldPregnancies] = rangeMsg("pregnancies", 0, 20)
	}

	return errs
}
