package assessment

import (
	"context"

	"github.com/google/uuid"
)

type MedicalRecordRepository interface {
	Create(ctx context.Context, r *MedicalRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*MedicalRecord, error)
	// ListByPatient returns non-deleted records ordered oldest first.
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*MedicalRecord, int, error)
	LatestByPatient(ctx context.Context, patientID uuid.UUID) (*MedicalRecord, error)
	// SoftDelete flags a record as deleted; rows are never physically removed.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type PredictionRepository interface {
	Create(ctx context.Context, p *Prediction) error
	GetByRecordID(ctx context.Context, recordID uuid.UUID) (*Prediction, error)
	// ListByPatient returns non-deleted predictions ordered oldest first.
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Prediction, int, error)
	SoftDelete(ctx context.Context, recordID uuid.UUID) error
}
