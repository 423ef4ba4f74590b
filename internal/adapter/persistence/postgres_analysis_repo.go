package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
)

// PostgresAnalysisRepository implements AnalysisRepository using PostgreSQL
type PostgresAnalysisRepository struct {
	db *sql.DB
}

// NewPostgresAnalysisRepository creates a new PostgreSQL analysis repository
func NewPostgresAnalysisRepository(db *sql.DB) ports.AnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

// Upsert stores the analysis for an audit, replacing any previous one.
// One analysis per audit: the audit_id column carries a unique
// constraint the conflict clause relies on.
func (r *PostgresAnalysisRepository) Upsert(ctx context.Context, analysis *domain.AIAnalysis) error {
	query := `
		INSERT INTO ai_analyses (id, audit_id, analysis, report, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (audit_id) DO UPDATE
		SET analysis = EXCLUDED.analysis, report = EXCLUDED.report, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		analysis.ID,
		analysis.AuditID,
		analysis.Analysis,
		analysis.Report,
		analysis.CreatedAt,
		analysis.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert analysis: %w", err)
	}
	return nil
}

// FindByID retrieves an analysis by its ID
func (r *PostgresAnalysisRepository) FindByID(ctx context.Context, id string) (*domain.AIAnalysis, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

// FindByAuditID retrieves the analysis tied to an audit
func (r *PostgresAnalysisRepository) FindByAuditID(ctx context.Context, auditID string) (*domain.AIAnalysis, error) {
	return r.findOne(ctx, `WHERE audit_id = $1`, auditID)
}

func (r *PostgresAnalysisRepository) findOne(ctx context.Context, where string, arg interface{}) (*domain.AIAnalysis, error) {
	query := `
		SELECT id, audit_id, analysis, report, created_at, updated_at
		FROM ai_analyses
	` + where

	var analysis domain.AIAnalysis
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&analysis.ID,
		&analysis.AuditID,
		&analysis.Analysis,
		&analysis.Report,
		&analysis.CreatedAt,
		&analysis.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return &analysis, nil
}

// Update replaces the stored texts of an existing analysis
func (r *PostgresAnalysisRepository) Update(ctx context.Context, analysis *domain.AIAnalysis) error {
	query := `
		UPDATE ai_analyses
		SET analysis = $2, report = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		analysis.ID,
		analysis.Analysis,
		analysis.Report,
		analysis.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update analysis: %w", err)
	}
	return requireRow(result, domain.ErrAnalysisNotFound)
}

// DeleteByAuditID removes the analysis tied to an audit. Deleting an
// audit without an analysis is not an error.
func (r *PostgresAnalysisRepository) DeleteByAuditID(ctx context.Context, auditID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM ai_analyses WHERE audit_id = $1`, auditID)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	return nil
}
