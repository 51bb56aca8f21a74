package postgres

import (
	"context"
	"fmt"

	"github.com/conference-corpus-loader/internal/models"
	"github.com/conference-corpus-loader/internal/repository"
	"github.com/jmoiron/sqlx"
)

// StatsRepository implements repository.StatsRepository for PostgreSQL
type StatsRepository struct {
	db sqlx.ExtContext
}

// NewStatsRepository creates a new PostgreSQL stats repository
func NewStatsRepository(db sqlx.ExtContext) repository.StatsRepository {
	return &StatsRepository{db: db}
}

// Totals counts the rows present in the three corpus tables
func (r *StatsRepository) Totals(ctx context.Context) (*models.StoreTotals, error) {
	var totals models.StoreTotals
	err := sqlx.GetContext(ctx, r.db, &totals, `
		SELECT
			(SELECT COUNT(*) FROM scriptures) AS verses,
			(SELECT COUNT(*) FROM talks) AS talks,
			(SELECT COUNT(*) FROM speakers) AS speakers,
			(SELECT COUNT(*) FROM speakers WHERE headshot_square IS NOT NULL) AS speakers_with_headshots
	`)
	if err != nil {
		return nil, fmt.Errorf("count store totals: %w", err)
	}
	return &totals, nil
}
