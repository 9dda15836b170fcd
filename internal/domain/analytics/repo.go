package analytics

import "context"

// CohortBaselineRepository reads the cohort_baseline reference table. The
// table is seeded by migrations and never written by this service.
type CohortBaselineRepository interface {
	ListAll(ctx context.Context) ([]*CohortBaseline, error)
}
