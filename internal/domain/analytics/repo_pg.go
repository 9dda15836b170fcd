package analytics

import (
	"context"

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

type cohortBaselineRepoPG struct{ pool *pgxpool.Pool }

func NewCohortBaselineRepoPG(pool *pgxpool.Pool) CohortBaselineRepository {
	return &cohortBaselineRepoPG{pool: pool}
}

func (r *cohortBaselineRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *cohortBaselineRepoPG) ListAll(ctx context.Context) ([]*CohortBaseline, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, age_min, age_max, gender, avg_risk_score, avg_glucose, avg_bmi, avg_systolic_bp
		FROM cohort_baseline`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*CohortBaseline
	for rows.Next() {
		var b CohortBaseline
		if err := rows.Scan(&b.ID, &b.AgeMin, &b.AgeMax, &b.Gender,
			&b.AvgRiskScore, &b.AvgGlucose, &b.AvgBMI, &b.AvgSystolicBP); err != nil {
			return nil, err
		}
		items = append(items, &b)
	}
	return items, rows.Err()
}
