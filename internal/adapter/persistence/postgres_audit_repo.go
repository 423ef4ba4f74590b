package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
)

// PostgresAuditRepository implements AuditRepository using PostgreSQL.
// Responses and phase scores are stored as JSONB documents; the audit
// is always read and written as a whole.
type PostgresAuditRepository struct {
	db *sql.DB
}

// NewPostgresAuditRepository creates a new PostgreSQL audit repository
func NewPostgresAuditRepository(db *sql.DB) ports.AuditRepository {
	return &PostgresAuditRepository{db: db}
}

const auditColumns = `id, company_id, user_id, responses, total_score, phase_scores, answered_count, catalog_count, status, version, created_at, updated_at`

// Create saves a new audit
func (r *PostgresAuditRepository) Create(ctx context.Context, audit *domain.Audit) error {
	query := `
		INSERT INTO audits (` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	responsesJSON, phaseJSON, err := marshalAuditDocs(audit)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		audit.ID,
		audit.CompanyID,
		audit.UserID,
		responsesJSON,
		audit.TotalScore,
		phaseJSON,
		audit.AnsweredCount,
		audit.CatalogCount,
		string(audit.Status),
		audit.Version,
		audit.CreatedAt,
		audit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit: %w", err)
	}
	return nil
}

// FindByID retrieves an audit by its ID
func (r *PostgresAuditRepository) FindByID(ctx context.Context, id string) (*domain.Audit, error) {
	query := `SELECT ` + auditColumns + ` FROM audits WHERE id = $1`

	audit, err := scanAudit(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAuditNotFound
		}
		return nil, fmt.Errorf("failed to find audit: %w", err)
	}
	return audit, nil
}

// List retrieves audits matching the filter, newest first
func (r *PostgresAuditRepository) List(ctx context.Context, filter ports.AuditFilter) ([]*domain.Audit, error) {
	query := `SELECT ` + auditColumns + ` FROM audits`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIndex))
		args = append(args, filter.UserID)
		argIndex++
	}
	if filter.CompanyID != "" {
		conditions = append(conditions, fmt.Sprintf("company_id = $%d", argIndex))
		args = append(args, filter.CompanyID)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audits: %w", err)
	}
	defer rows.Close()

	var audits []*domain.Audit
	for rows.Next() {
		audit, err := scanAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit: %w", err)
		}
		audits = append(audits, audit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audits: %w", err)
	}
	return audits, nil
}

// Update persists the audit conditionally on the version it was read
// at, bumping the version on success. A zero-row update against an
// existing audit means another writer got there first.
func (r *PostgresAuditRepository) Update(ctx context.Context, audit *domain.Audit) error {
	query := `
		UPDATE audits
		SET responses = $3, total_score = $4, phase_scores = $5, answered_count = $6,
			catalog_count = $7, status = $8, version = version + 1, updated_at = $9
		WHERE id = $1 AND version = $2
	`

	responsesJSON, phaseJSON, err := marshalAuditDocs(audit)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query,
		audit.ID,
		audit.Version,
		responsesJSON,
		audit.TotalScore,
		phaseJSON,
		audit.AnsweredCount,
		audit.CatalogCount,
		string(audit.Status),
		audit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update audit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM audits WHERE id = $1)`, audit.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check audit existence: %w", err)
		}
		if exists {
			return domain.ErrConcurrentUpdate
		}
		return domain.ErrAuditNotFound
	}

	audit.Version++
	return nil
}

// Delete removes an audit
func (r *PostgresAuditRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM audits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete audit: %w", err)
	}
	return requireRow(result, domain.ErrAuditNotFound)
}

func scanAudit(row rowScanner) (*domain.Audit, error) {
	var audit domain.Audit
	var responsesJSON, phaseJSON []byte

	err := row.Scan(
		&audit.ID,
		&audit.CompanyID,
		&audit.UserID,
		&responsesJSON,
		&audit.TotalScore,
		&phaseJSON,
		&audit.AnsweredCount,
		&audit.CatalogCount,
		&audit.Status,
		&audit.Version,
		&audit.CreatedAt,
		&audit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	audit.Responses = []domain.ScoredResponse{}
	if len(responsesJSON) > 0 {
		if err := json.Unmarshal(responsesJSON, &audit.Responses); err != nil {
			return nil, fmt.Errorf("failed to unmarshal responses: %w", err)
		}
	}
	audit.PhaseScores = map[string]float64{}
	if len(phaseJSON) > 0 {
		if err := json.Unmarshal(phaseJSON, &audit.PhaseScores); err != nil {
			return nil, fmt.Errorf("failed to unmarshal phase scores: %w", err)
		}
	}
	return &audit, nil
}

func marshalAuditDocs(audit *domain.Audit) (responsesJSON, phaseJSON []byte, err error) {
	responses := audit.Responses
	if responses == nil {
		responses = []domain.ScoredResponse{}
	}
	responsesJSON, err = json.Marshal(responses)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal responses: %w", err)
	}

	phases := audit.PhaseScores
	if phases == nil {
		phases = map[string]float64{}
	}
	phaseJSON, err = json.Marshal(phases)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal phase scores: %w", err)
	}
	return responsesJSON, phaseJSON, nil
}
