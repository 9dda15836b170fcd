package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/glucoview/api/internal/domain/assessment"
)

// ErrNoBaseline is returned when no cohort baseline covers the patient,
// including the case of an unseeded cohort_baseline table.
var ErrNoBaseline = errors.New("no matching cohort baseline")

// historyFetchLimit bounds how much history trend and timeline queries
// pull. A patient submitting weekly for a decade stays well under it.
const historyFetchLimit = 1000

// Service derives trends, ranked risk factors, and cohort comparisons
// from stored assessments. It only reads; all writes happen in the
// assessment service.
type Service struct {
	records     assessment.MedicalRecordRepository
	predictions assessment.PredictionRepository
	cohorts     CohortBaselineRepository
	logger      zerolog.Logger
}

func NewService(records assessment.MedicalRecordRepository, predictions assessment.PredictionRepository, cohorts CohortBaselineRepository, logger zerolog.Logger) *Service {
	return &Service{
		records:     records,
		predictions: predictions,
		cohorts:     cohorts,
		logger:      logger.With().Str("component", "analytics").Logger(),
	}
}

func (s *Service) history(ctx context.Context, patientID uuid.UUID) ([]TrendPoint, error) {
	preds, _, err := s.predictions.ListByPatient(ctx, patientID, historyFetchLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("load prediction history: %w", err)
	}
	points := make([]TrendPoint, 0, len(preds))
	for _, p := range preds {
		points = append(points, TrendPoint{
			RecordID: p.RecordID,
			Date:     p.CreatedAt,
			Score:    p.RiskScore,
			Category: p.RiskCategory,
		})
	}
	return points, nil
}

// Trend classifies the movement between the patient's two most recent
// risk scores and returns the full series for charting.
func (s *Service) Trend(ctx context.Context, patientID uuid.UUID) (*TrendSummary, error) {
	points, err := s.history(ctx, patientID)
	if err != nil {
		return nil, err
	}
	scores := make([]float64, len(points))
	for i, p := range points {
		scores[i] = p.Score
	}
	direction, delta := ClassifyTrend(scores)
	return &TrendSummary{Direction: direction, Delta: delta, Points: points}, nil
}

// Timeline merges the patient's history with an externally supplied
// forecast series into one chronological chart series.
func (s *Service) Timeline(ctx context.Context, patientID uuid.UUID, forecast []ForecastPoint) ([]SeriesPoint, error) {
	points, err := s.history(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return MergeTimeline(points, forecast), nil
}

// Factors ranks the latest prediction's feature importances for display,
// applying the gender-conditional pregnancy filter from the latest record.
func (s *Service) Factors(ctx context.Context, patientID uuid.UUID) ([]RankedFactor, error) {
	record, err := s.records.LatestByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	pred, err := s.predictions.GetByRecordID(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	return RankFactors(pred.FeatureImportance, pred.MetricInsights, record.Gender), nil
}

// Comparison compares the patient's latest record against the most
// specific matching cohort baseline.
func (s *Service) Comparison(ctx context.Context, patientID uuid.UUID) (*Comparison, error) {
	record, err := s.records.LatestByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	pred, err := s.predictions.GetByRecordID(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	baselines, err := s.cohorts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cohort baselines: %w", err)
	}
	baseline := SelectBaseline(baselines, record.Age, record.Gender)
	if baseline == nil {
		return nil, ErrNoBaseline
	}
	cmp := Compare(record, pred.RiskScore, baseline)
	return &cmp, nil
}
