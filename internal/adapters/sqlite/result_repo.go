package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/shopsight/internal/models"
)

// ResultRepository implements secondary.ResultStore with SQLite. Results are
// replaced wholesale on every analysis run; a half-written result table is
// never visible because both saves run in a transaction.
type ResultRepository struct {
	db *sql.DB
}

// NewResultRepository creates a new SQLite result repository.
func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// SaveSegmentation replaces the per-customer segmentation rows.
func (r *ResultRepository) SaveSegmentation(ctx context.Context, customers []models.ScoredCustomer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM rfm_segments"); err != nil {
		return fmt.Errorf("failed to clear segmentation: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rfm_segments (customer_id, recency, frequency, monetary, r_score, f_score, m_score, rfm_score, segment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare segmentation insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range customers {
		if _, err := stmt.ExecContext(ctx,
			c.CustomerID, c.Recency, c.Frequency, c.Monetary,
			c.RScore, c.FScore, c.MScore, c.RFM(), string(c.Segment)); err != nil {
			return fmt.Errorf("failed to insert segmentation for customer %d: %w", c.CustomerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit segmentation: %w", err)
	}
	return nil
}

// SaveSummaries replaces the segment summary rows, preserving their order
// via the position column.
func (r *ResultRepository) SaveSummaries(ctx context.Context, summaries []models.SegmentSummary) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM segment_summary"); err != nil {
		return fmt.Errorf("failed to clear summaries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO segment_summary (position, segment, customer_count, total_revenue, avg_revenue, avg_frequency, avg_recency)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare summary insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range summaries {
		if _, err := stmt.ExecContext(ctx,
			i+1, string(s.Segment), s.CustomerCount, s.TotalRevenue, s.AvgRevenue, s.AvgFrequency, s.AvgRecency); err != nil {
			return fmt.Errorf("failed to insert summary for %s: %w", s.Segment, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit summaries: %w", err)
	}
	return nil
}

// LoadSegmentation returns the saved per-customer rows ordered by customer ID.
func (r *ResultRepository) LoadSegmentation(ctx context.Context) ([]models.ScoredCustomer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT customer_id, recency, frequency, monetary, r_score, f_score, m_score, segment
		FROM rfm_segments ORDER BY customer_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load segmentation: %w", err)
	}
	defer rows.Close()

	var customers []models.ScoredCustomer
	for rows.Next() {
		var c models.ScoredCustomer
		var segment string
		if err := rows.Scan(&c.CustomerID, &c.Recency, &c.Frequency, &c.Monetary,
			&c.RScore, &c.FScore, &c.MScore, &segment); err != nil {
			return nil, fmt.Errorf("failed to scan segmentation row: %w", err)
		}
		c.Segment = models.Segment(segment)
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read segmentation: %w", err)
	}
	return customers, nil
}

// LoadSummaries returns the saved summary rows in their stored order.
func (r *ResultRepository) LoadSummaries(ctx context.Context) ([]models.SegmentSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT segment, customer_count, total_revenue, avg_revenue, avg_frequency, avg_recency
		FROM segment_summary ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load summaries: %w", err)
	}
	defer rows.Close()

	var summaries []models.SegmentSummary
	for rows.Next() {
		var s models.SegmentSummary
		var segment string
		if err := rows.Scan(&segment, &s.CustomerCount, &s.TotalRevenue, &s.AvgRevenue, &s.AvgFrequency, &s.AvgRecency); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		s.Segment = models.Segment(segment)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read summaries: %w", err)
	}
	return summaries, nil
}
