package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glucoview/api/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// attributeConstraint converts a Postgres constraint violation into a
// FieldError so the HTTP layer can point the client at the offending form
// field without parsing error prose.
func attributeConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.ConstraintName == "" {
		return err
	}
	name := pgErr.ConstraintName
	switch {
	case strings.Contains(name, "bp_order"):
		return &FieldError{Field: FieldSystolicBP, Code: CodeBPOrder, Err: err}
	case strings.Contains(name, "bmi"):
		return &FieldError{Field: FieldWeight, Code: CodeBMIMismatch, Err: err}
	case pgErr.Code == "23505":
		return &FieldError{Field: "", Code: CodeDuplicateRecord, Err: err}
	default:
		return &FieldError{Field: "", Code: CodeConstraintFailed, Err: err}
	}
}

// =========== Medical Record Repository ===========

type medicalRecordRepoPG struct{ pool *pgxpool.Pool }

func NewMedicalRecordRepoPG(pool *pgxpool.Pool) MedicalRecordRepository {
	return &medicalRecordRepoPG{pool: pool}
}

func (r *medicalRecordRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const recordCols = `id, patient_id, age, gender, height_cm, weight_kg, bmi,
	systolic_bp, diastolic_bp, glucose, hba1c, insulin, skin_thickness, pregnancies,
	family_history, smoking_status, alcohol_consumption, exercise_frequency,
	diabetes_status, notes, deleted, created_at, updated_at`

func (r *medicalRecordRepoPG) scanRecord(row pgx.Row) (*MedicalRecord, error) {
	var m MedicalRecord
	err := row.Scan(&m.ID, &m.PatientID, &m.Age, &m.Gender, &m.HeightCm, &m.WeightKg, &m.BMI,
		&m.SystolicBP, &m.DiastolicBP, &m.Glucose, &m.HbA1c, &m.Insulin, &m.SkinThickness, &m.Pregnancies,
		&m.FamilyHistory, &m.SmokingStatus, &m.Alcohol, &m.Exercise,
		&m.DiabetesStatus, &m.Notes, &m.Deleted, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &m, err
}

func (r *medicalRecordRepoPG) Create(ctx context.Context, m *MedicalRecord) error {
	m.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO medical_record (id, patient_id, age, gender, height_cm, weight_kg, bmi,
			systolic_bp, diastolic_bp, glucose, hba1c, insulin, skin_thickness, pregnancies,
			family_history, smoking_status, alcohol_consumption, exercise_frequency,
			diabetes_status, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)`,
		m.ID, m.PatientID, m.Age, m.Gender, m.HeightCm, m.WeightKg, m.BMI,
		m.SystolicBP, m.DiastolicBP, m.Glucose, m.HbA1c, m.Insulin, m.SkinThickness, m.Pregnancies,
		m.FamilyHistory, m.SmokingStatus, m.Alcohol, m.Exercise,
		m.DiabetesStatus, m.Notes)
	if err != nil {
		return attributeConstraint(err)
	}
	return nil
}

func (r *medicalRecordRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*MedicalRecord, error) {
	return r.scanRecord(r.conn(ctx).QueryRow(ctx,
		`SELECT `+recordCols+` FROM medical_record WHERE id = $1 AND NOT deleted`, id))
}

func (r *medicalRecordRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*MedicalRecord, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM medical_record WHERE patient_id = $1 AND NOT deleted`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+recordCols+` FROM medical_record
		 WHERE patient_id = $1 AND NOT deleted
		 ORDER BY created_at ASC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*MedicalRecord
	for rows.Next() {
		m, err := r.scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}

func (r *medicalRecordRepoPG) LatestByPatient(ctx context.Context, patientID uuid.UUID) (*MedicalRecord, error) {
	return r.scanRecord(r.conn(ctx).QueryRow(ctx,
		`SELECT `+recordCols+` FROM medical_record
		 WHERE patient_id = $1 AND NOT deleted
		 ORDER BY created_at DESC LIMIT 1`, patientID))
}

func (r *medicalRecordRepoPG) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE medical_record SET deleted = TRUE, updated_at = NOW() WHERE id = $1 AND NOT deleted`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// =========== Prediction Repository ===========

type predictionRepoPG struct{ pool *pgxpool.Pool }

func NewPredictionRepoPG(pool *pgxpool.Pool) PredictionRepository {
	return &predictionRepoPG{pool: pool}
}

func (r *predictionRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const predictionCols = `id, record_id, patient_id, risk_score, raw_score, risk_category,
	confidence_score, predicted, reinterpreted, feature_importance, recommendations,
	metric_insights, deleted, created_at`

func (r *predictionRepoPG) scanPrediction(row pgx.Row) (*Prediction, error) {
	var p Prediction
	var importance, recs, insights []byte
	err := row.Scan(&p.ID, &p.RecordID, &p.PatientID, &p.RiskScore, &p.RawScore, &p.RiskCategory,
		&p.ConfidenceScore, &p.Predicted, &p.Reinterpreted, &importance, &recs,
		&insights, &p.Deleted, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(importance) > 0 {
		if err := json.Unmarshal(importance, &p.FeatureImportance); err != nil {
			return nil, fmt.Errorf("decode feature importance: %w", err)
		}
	}
	if len(recs) > 0 {
		if err := json.Unmarshal(recs, &p.Recommendations); err != nil {
			return nil, fmt.Errorf("decode recommendations: %w", err)
		}
	}
	if len(insights) > 0 {
		if err := json.Unmarshal(insights, &p.MetricInsights); err != nil {
			return nil, fmt.Errorf("decode metric insights: %w", err)
		}
	}
	return &p, nil
}

func (r *predictionRepoPG) Create(ctx context.Context, p *Prediction) error {
	p.ID = uuid.New()
	importance, err := json.Marshal(p.FeatureImportance)
	if err != nil {
		return fmt.Errorf("encode feature importance: %w", err)
	}
	recs, err := json.Marshal(p.Recommendations)
	if err != nil {
		return fmt.Errorf("encode recommendations: %w", err)
	}
	insights, err := json.Marshal(p.MetricInsights)
	if err != nil {
		return fmt.Errorf("encode metric insights: %w", err)
	}
	_, err = r.conn(ctx).Exec(ctx, `
		INSERT INTO prediction (id, record_id, patient_id, risk_score, raw_score, risk_category,
			confidence_score, predicted, reinterpreted, feature_importance, recommendations, metric_insights)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		p.ID, p.RecordID, p.PatientID, p.RiskScore, p.RawScore, p.RiskCategory,
		p.ConfidenceScore, p.Predicted, p.Reinterpreted, importance, recs, insights)
	if err != nil {
		return attributeConstraint(err)
	}
	return nil
}

func (r *predictionRepoPG) GetByRecordID(ctx context.Context, recordID uuid.UUID) (*Prediction, error) {
	return r.scanPrediction(r.conn(ctx).QueryRow(ctx,
		`SELECT `+predictionCols+` FROM prediction WHERE record_id = $1 AND NOT deleted`, recordID))
}

func (r *predictionRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Prediction, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM prediction WHERE patient_id = $1 AND NOT deleted`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+predictionCols+` FROM prediction
		 WHERE patient_id = $1 AND NOT deleted
		 ORDER BY created_at ASC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Prediction
	for rows.Next() {
		p, err := r.scanPrediction(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

func (r *predictionRepoPG) SoftDelete(ctx context.Context, recordID uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE prediction SET deleted = TRUE WHERE record_id = $1 AND NOT deleted`, recordID)
	return err
}
