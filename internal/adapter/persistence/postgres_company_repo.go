package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
)

// PostgresCompanyRepository implements CompanyRepository using PostgreSQL
type PostgresCompanyRepository struct {
	db *sql.DB
}

// NewPostgresCompanyRepository creates a new PostgreSQL company repository
func NewPostgresCompanyRepository(db *sql.DB) ports.CompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `id, user_id, company_name, admin_name, address, phone, nit, risk_class, worker_count, sites, logo_url, is_active, created_at`

// Create saves a new company
func (r *PostgresCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	sitesJSON, err := marshalSites(company.Sites)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		company.ID,
		company.UserID,
		company.CompanyName,
		company.AdminName,
		company.Address,
		company.Phone,
		company.NIT,
		company.RiskClass,
		company.WorkerCount,
		sitesJSON,
		company.LogoURL,
		company.IsActive,
		company.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// FindByID retrieves a company by its ID
func (r *PostgresCompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	company, err := scanCompany(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return company, nil
}

// ListByUser retrieves the companies owned by a user
func (r *PostgresCompanyRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryCompanies(ctx, query, userID)
}

// List retrieves companies, optionally only those pending activation
func (r *PostgresCompanyRepository) List(ctx context.Context, pendingOnly bool) ([]*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies`
	if pendingOnly {
		query += ` WHERE is_active = FALSE`
	}
	query += ` ORDER BY created_at DESC`
	return r.queryCompanies(ctx, query)
}

// Update updates an existing company
func (r *PostgresCompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	query := `
		UPDATE companies
		SET company_name = $2, admin_name = $3, address = $4, phone = $5,
			nit = $6, risk_class = $7, worker_count = $8, sites = $9, logo_url = $10
		WHERE id = $1
	`

	sitesJSON, err := marshalSites(company.Sites)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query,
		company.ID,
		company.CompanyName,
		company.AdminName,
		company.Address,
		company.Phone,
		company.NIT,
		company.RiskClass,
		company.WorkerCount,
		sitesJSON,
		company.LogoURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	return requireRow(result, domain.ErrCompanyNotFound)
}

// SetActive flips the activation flag
func (r *PostgresCompanyRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE companies SET is_active = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, active)
	if err != nil {
		return fmt.Errorf("failed to update company activation: %w", err)
	}
	return requireRow(result, domain.ErrCompanyNotFound)
}

func (r *PostgresCompanyRepository) queryCompanies(ctx context.Context, query string, args ...interface{}) ([]*domain.Company, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}
	return companies, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	var company domain.Company
	var nit, riskClass, logoURL sql.NullString
	var workerCount sql.NullInt64
	var sitesJSON []byte

	err := row.Scan(
		&company.ID,
		&company.UserID,
		&company.CompanyName,
		&company.AdminName,
		&company.Address,
		&company.Phone,
		&nit,
		&riskClass,
		&workerCount,
		&sitesJSON,
		&logoURL,
		&company.IsActive,
		&company.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	company.NIT = nit.String
	company.RiskClass = riskClass.String
	company.LogoURL = logoURL.String
	company.WorkerCount = int(workerCount.Int64)

	if len(sitesJSON) > 0 {
		if err := json.Unmarshal(sitesJSON, &company.Sites); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sites: %w", err)
		}
	}
	return &company, nil
}

func marshalSites(sites []domain.Site) ([]byte, error) {
	if sites == nil {
		sites = []domain.Site{}
	}
	data, err := json.Marshal(sites)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sites: %w", err)
	}
	return data, nil
}
