package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/glucoview/api/internal/platform/predictor"
)

// Predictor is the outbound prediction dependency. The concrete client
// lives in platform/predictor; tests substitute an in-memory fake.
type Predictor interface {
	Predict(ctx context.Context, req *predictor.Request) (*predictor.Response, error)
}

// Service orchestrates assessment submission: validation, the single
// prediction call, diagnosis-aware reinterpretation, and the two
// sequential writes.
type Service struct {
	records     MedicalRecordRepository
	predictions PredictionRepository
	predictor   Predictor
	complic     ComplicationConfig
	logger      zerolog.Logger
}

func NewService(records MedicalRecordRepository, predictions PredictionRepository, p Predictor, complic ComplicationConfig, logger zerolog.Logger) *Service {
	return &Service{
		records:     records,
		predictions: predictions,
		predictor:   p,
		complic:     complic,
		logger:      logger.With().Str("component", "assessment").Logger(),
	}
}

// Submit runs one assessment end to end. The prediction call happens
// before any write, so a model failure persists nothing. The record and
// prediction writes are sequential and not transactional: if the
// prediction write fails the record stays, the partial result is returned
// alongside ErrPredictionNotSaved, and a resubmission creates a fresh
// record rather than patching the orphaned one.
func (s *Service) Submit(ctx context.Context, patientID uuid.UUID, in *Input) (*SubmissionResult, error) {
	if errs := Validate(in); len(errs) > 0 {
		return nil, errs
	}

	bmi := BMI(in.WeightKg, in.HeightCm)
	resp, err := s.predictor.Predict(ctx, BuildRequest(in, bmi))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPredictionFailed, err)
	}

	status := in.DiabetesStatus
	if status == "" {
		status = StatusNone
	}
	score, category, reinterpreted := s.complic.Reinterpret(resp.RiskScore, resp.RiskCategory, status)

	record := recordFromInput(patientID, in, bmi)
	if err := s.records.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("save medical record: %w", err)
	}

	pred := &Prediction{
		RecordID:          record.ID,
		PatientID:         patientID,
		RiskScore:         score,
		RawScore:          resp.RiskScore,
		RiskCategory:      category,
		ConfidenceScore:   clampScore(resp.ConfidenceScore),
		Predicted:         resp.Prediction == 1,
		Reinterpreted:     reinterpreted,
		FeatureImportance: resp.FeatureImportance,
		Recommendations:   resp.Recommendations,
		MetricInsights:    insightsFromResponse(resp.MetricInsights),
	}
	if err := s.predictions.Create(ctx, pred); err != nil {
		s.logger.Error().Err(err).
			Str("record_id", record.ID.String()).
			Msg("record saved but prediction write failed")
		return &SubmissionResult{Record: record}, fmt.Errorf("%w: %v", ErrPredictionNotSaved, err)
	}

	s.logger.Info().
		Str("record_id", record.ID.String()).
		Float64("risk_score", score).
		Str("risk_category", category).
		Bool("reinterpreted", reinterpreted).
		Msg("assessment completed")

	return &SubmissionResult{Record: record, Prediction: pred}, nil
}

// Get returns one record with its prediction, if one was stored.
func (s *Service) Get(ctx context.Context, recordID uuid.UUID) (*SubmissionResult, error) {
	record, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	pred, err := s.predictions.GetByRecordID(ctx, recordID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return &SubmissionResult{Record: record, Prediction: pred}, nil
}

// History lists a patient's records oldest first.
func (s *Service) History(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*MedicalRecord, int, error) {
	return s.records.ListByPatient(ctx, patientID, limit, offset)
}

// Predictions lists a patient's stored predictions oldest first.
func (s *Service) Predictions(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Prediction, int, error) {
	return s.predictions.ListByPatient(ctx, patientID, limit, offset)
}

// Delete soft-deletes a record and its prediction. Deleted rows drop out
// of trends and comparisons but remain on disk.
func (s *Service) Delete(ctx context.Context, recordID uuid.UUID) error {
	if err := s.predictions.SoftDelete(ctx, recordID); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return s.records.SoftDelete(ctx, recordID)
}

func recordFromInput(patientID uuid.UUID, in *Input, bmi float64) *MedicalRecord {
	status := in.DiabetesStatus
	if status == "" {
		status = StatusNone
	}
	m := &MedicalRecord{
		PatientID:      patientID,
		Age:            in.Age,
		Gender:         in.Gender,
		HeightCm:       in.HeightCm,
		WeightKg:       in.WeightKg,
		BMI:            bmi,
		SystolicBP:     in.SystolicBP,
		DiastolicBP:    in.DiastolicBP,
		Glucose:        in.GlucoseLevel,
		HbA1c:          in.HbA1c,
		Insulin:        in.InsulinLevel,
		SkinThickness:  in.SkinThickness,
		Pregnancies:    in.Pregnancies,
		FamilyHistory:  in.FamilyHistory,
		SmokingStatus:  optStr(in.SmokingStatus),
		Alcohol:        optStr(in.Alcohol),
		Exercise:       optStr(in.Exercise),
		DiabetesStatus: status,
		Notes:          optStr(in.Notes),
	}
	if in.Gender == GenderMale {
		zero := 0
		m.Pregnancies = &zero
	}
	return m
}

func insightsFromResponse(in map[string]predictor.MetricInsight) map[string]MetricInsight {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]MetricInsight, len(in))
	for k, v := range in {
		out[k] = MetricInsight{Status: v.Status, Label: v.Label, ValueLabel: v.ValueLabel, Message: v.Message}
	}
	return out
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
