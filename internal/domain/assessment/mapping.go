package assessment

import "github.com/glucoview/api/internal/platform/predictor"

// Family-history priors sent to the model in place of a pedigree function.
// The model was trained on a continuous pedigree feature the product does
// not collect, so presence/absence maps to a coarse prior.
const (
	familyHistoryPresent = 0.8
	familyHistoryAbsent  = 0.2
)

// BuildRequest translates a validated submission plus the derived BMI into
// the prediction service's request shape. Pregnancies are forced to zero
// for male patients regardless of what the form carried.
func BuildRequest(in *Input, bmi float64) *predictor.Request {
	req := &predictor.Request{
		Age:              float64(in.Age),
		BMI:              bmi,
		Glucose:          in.GlucoseLevel,
		BloodPressure:    in.DiastolicBP,
		SystolicBP:       in.SystolicBP,
		DiastolicBP:      in.DiastolicBP,
		FamilyHistory:    familyHistoryAbsent,
		FamilyHistoryFlg: in.FamilyHistory,
		Gender:           in.Gender,
		SmokingStatus:    in.SmokingStatus,
		Alcohol:          in.Alcohol,
		Exercise:         in.Exercise,
		DiabetesStatus:   in.DiabetesStatus,
	}
	if req.DiabetesStatus == "" {
		req.DiabetesStatus = StatusNone
	}
	if in.FamilyHistory {
		req.FamilyHistory = familyHistoryPresent
	}
	if in.HbA1c != nil {
		req.HbA1c = *in.HbA1c
	}
	if in.InsulinLevel != nil {
		req.Insulin = *in.InsulinLevel
	}
	if in.SkinThickness != nil {
		req.SkinThickness = *in.SkinThickness
	}
	if in.Pregnancies != nil && in.Gender != GenderMale {
		req.Pregnancies = float64(*in.Pregnancies)
	}
	return req
}
