package assessment

import (
	"time"

	"github.com/google/uuid"
)

// Gender values accepted on submission.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Diabetes diagnosis status values, mirroring the prediction service's
// diabetesStatus context flag.
const (
	StatusNone        = "none"
	StatusPrediabetic = "prediabetic"
	StatusType1       = "type1"
	StatusType2       = "type2"
	StatusGestational = "gestational"
	StatusOther       = "other"
)

// Risk categories. Diagnosed patients are recategorized on the
// complication-risk scale; undiagnosed patients keep the model's category.
const (
	CategoryLow      = "low"
	CategoryModerate = "moderate"
	CategoryHigh     = "high"
	CategoryVeryHigh = "very_high"
)

// Diagnosed reports whether the status represents a recorded diabetes
// diagnosis (prediabetic is at-risk, not diagnosed).
func Diagnosed(status string) bool {
	switch status {
	case StatusType1, StatusType2, StatusGestational, StatusOther:
		return true
	}
	return false
}

// Input is one assessment submission. It is immutable once accepted; a
// resubmission after a failure always creates a new record.
type Input struct {
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	HeightCm       float64  `json:"height"`
	WeightKg       float64  `json:"weight"`
	SystolicBP     float64  `json:"systolicBP"`
	DiastolicBP    float64  `json:"diastolicBP"`
	GlucoseLevel   float64  `json:"glucoseLevel"`
	HbA1c          *float64 `json:"hba1c,omitempty"`
	InsulinLevel   *float64 `json:"insulinLevel,omitempty"`
	SkinThickness  *float64 `json:"skinThickness,omitempty"`
	Pregnancies    *int     `json:"pregnancies,omitempty"`
	FamilyHistory  bool     `json:"familyHistory"`
	SmokingStatus  string   `json:"smokingStatus,omitempty"`
	Alcohol        string   `json:"alcoholConsumption,omitempty"`
	Exercise       string   `json:"exerciseFrequency,omitempty"`
	DiabetesStatus string   `json:"diabetesStatus,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// MedicalRecord maps to the medical_record table.
type MedicalRecord struct {
	ID             uuid.UUID `db:"id" json:"id"`
	PatientID      uuid.UUID `db:"patient_id" json:"patient_id"`
	Age            int       `db:"age" json:"age"`
	Gender         string    `db:"gender" json:"gender"`
	HeightCm       float64   `db:"height_cm" json:"height_cm"`
	WeightKg       float64   `db:"weight_kg" json:"weight_kg"`
	BMI            float64   `db:"bmi" json:"bmi"`
	SystolicBP     float64   `db:"systolic_bp" json:"systolic_bp"`
	DiastolicBP    float64   `db:"diastolic_bp" json:"diastolic_bp"`
	Glucose        float64   `db:"glucose" json:"glucose"`
	HbA1c          *float64  `db:"hba1c" json:"hba1c,omitempty"`
	Insulin        *float64  `db:"insulin" json:"insulin,omitempty"`
	SkinThickness  *float64  `db:"skin_thickness" json:"skin_thickness,omitempty"`
	Pregnancies    *int      `db:"pregnancies" json:"pregnancies,omitempty"`
	FamilyHistory  bool      `db:"family_history" json:"family_history"`
	SmokingStatus  *string   `db:"smoking_status" json:"smoking_status,omitempty"`
	Alcohol        *string   `db:"alcohol_consumption" json:"alcohol_consumption,omitempty"`
	Exercise       *string   `db:"exercise_frequency" json:"exercise_frequency,omitempty"`
	DiabetesStatus string    `db:"diabetes_status" json:"diabetes_status"`
	Notes          *string   `db:"notes" json:"notes,omitempty"`
	Deleted        bool      `db:"deleted" json:"deleted"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// MetricInsight is a per-metric status annotation stored with a prediction.
type MetricInsight struct {
	Status     string `json:"status"`
	Label      string `json:"label"`
	ValueLabel string `json:"valueLabel"`
	Message    string `json:"message"`
}

// Prediction maps to the prediction table. RawScore is the model's output
// before any diagnosis-aware reinterpretation; RiskScore and RiskCategory
// are what the product displays.
type Prediction struct {
	ID                uuid.UUID                `db:"id" json:"id"`
	RecordID          uuid.UUID                `db:"record_id" json:"record_id"`
	PatientID         uuid.UUID                `db:"patient_id" json:"patient_id"`
	RiskScore         float64                  `db:"risk_score" json:"risk_score"`
	RawScore          float64                  `db:"raw_score" json:"raw_score"`
	RiskCategory      string                   `db:"risk_category" json:"risk_category"`
	ConfidenceScore   float64                  `db:"confidence_score" json:"confidence_score"`
	Predicted         bool                     `db:"predicted" json:"predicted"`
	Reinterpreted     bool                     `db:"reinterpreted" json:"reinterpreted"`
	FeatureImportance map[string]float64       `db:"feature_importance" json:"feature_importance,omitempty"`
	Recommendations   []string                 `db:"recommendations" json:"recommendations,omitempty"`
	MetricInsights    map[string]MetricInsight `db:"metric_insights" json:"metric_insights,omitempty"`
	Deleted           bool                     `db:"deleted" json:"deleted"`
	CreatedAt         time.Time                `db:"created_at" json:"created_at"`
}

// SubmissionResult is returned from a successful (or partially successful)
// assessment submission.
type SubmissionResult struct {
	Record     *MedicalRecord `json:"record"`
	Prediction *Prediction    `json:"prediction,omitempty"`
}
