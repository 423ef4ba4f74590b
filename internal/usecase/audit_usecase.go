package usecase

import (
	"context"
	"fmt"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
	"github.com/auditx/auditx/internal/scoring"
	"github.com/auditx/auditx/internal/service/logger"
)

// AuditSummary is one row of an audit listing, joined with the company
// name for display.
type AuditSummary struct {
	*domain.Audit
	CompanyName string `json:"company_name"`
}

// AuditDetail is a full audit with its company.
type AuditDetail struct {
	*domain.Audit
	Company *domain.Company `json:"company"`
}

// AuditUseCase owns the audit lifecycle: create, save progress, close,
// delete. Every operation runs the same ownership predicate before
// touching the record.
type AuditUseCase struct {
	auditRepo    ports.AuditRepository
	companyRepo  ports.CompanyRepository
	analysisRepo ports.AnalysisRepository
	catalog      domain.Catalog
	log          logger.Logger
}

// NewAuditUseCase creates a new audit use case.
func NewAuditUseCase(
	auditRepo ports.AuditRepository,
	companyRepo ports.CompanyRepository,
	analysisRepo ports.AnalysisRepository,
	catalog domain.Catalog,
	log logger.Logger,
) *AuditUseCase {
	return &AuditUseCase{
		auditRepo:    auditRepo,
		companyRepo:  companyRepo,
		analysisRepo: analysisRepo,
		catalog:      catalog,
		log:          log,
	}
}

// Create opens a new audit for a company with an optional seed response
// set and computes its initial score.
func (uc *AuditUseCase) Create(ctx context.Context, caller domain.Caller, companyID string, responses []domain.Response) (*domain.Audit, error) {
	if companyID == "" {
		return nil, domain.NewError(domain.KindValidation, "company_id is required")
	}
	if err := validateResponses(responses); err != nil {
		return nil, err
	}

	company, err := uc.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(company.UserID) {
		return nil, domain.ErrForbidden
	}

	audit := domain.NewAudit(companyID, caller.UserID)
	// Seed responses go through the same upsert as a save: duplicate
	// standard ids overwrite instead of accumulating weight.
	merged := domain.MergeResponses(nil, responses)
	result := scoring.Score(uc.catalog, merged)
	if err := audit.ApplyScore(result.Responses, result.TotalPercentage, result.PhasePercentages(), result.AnsweredCount, result.CatalogCount); err != nil {
		return nil, err
	}

	if err := uc.auditRepo.Create(ctx, audit); err != nil {
		return nil, err
	}

	uc.log.Info(ctx, "audit created", map[string]interface{}{
		"audit_id":    audit.ID,
		"company_id":  companyID,
		"total_score": audit.TotalScore,
		"answered":    audit.AnsweredCount,
	})
	return audit, nil
}

// Get retrieves one audit with its company, enforcing ownership.
func (uc *AuditUseCase) Get(ctx context.Context, caller domain.Caller, auditID string) (*AuditDetail, error) {
	audit, err := uc.authorized(ctx, caller, auditID)
	if err != nil {
		return nil, err
	}

	company, err := uc.companyRepo.FindByID(ctx, audit.CompanyID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}
	return &AuditDetail{Audit: audit, Company: company}, nil
}

// List retrieves audits visible to the caller: admins see every audit,
// clients only their own. Rows carry the company name.
func (uc *AuditUseCase) List(ctx context.Context, caller domain.Caller) ([]AuditSummary, error) {
	filter := ports.AuditFilter{}
	if !caller.IsAdmin() {
		filter.UserID = caller.UserID
	}

	audits, err := uc.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]AuditSummary, 0, len(audits))
	for _, a := range audits {
		name := ""
		if company, err := uc.companyRepo.FindByID(ctx, a.CompanyID); err == nil {
			name = company.CompanyName
		}
		summaries = append(summaries, AuditSummary{Audit: a, CompanyName: name})
	}
	return summaries, nil
}

// SaveProgress upserts a partial or full response batch into the audit
// and re-scores it. Answers already stored for other standards are
// kept; answers for the same standard are replaced. The status never
// changes here, and a closed audit rejects the save with a conflict.
func (uc *AuditUseCase) SaveProgress(ctx context.Context, caller domain.Caller, auditID string, responses []domain.Response) (*domain.Audit, error) {
	if err := validateResponses(responses); err != nil {
		return nil, err
	}

	audit, err := uc.authorized(ctx, caller, auditID)
	if err != nil {
		return nil, err
	}

	merged := domain.MergeResponses(audit.RawResponses(), responses)
	result := scoring.Score(uc.catalog, merged)
	if err := audit.ApplyScore(result.Responses, result.TotalPercentage, result.PhasePercentages(), result.AnsweredCount, result.CatalogCount); err != nil {
		return nil, err
	}

	if err := uc.auditRepo.Update(ctx, audit); err != nil {
		return nil, err
	}

	uc.log.Info(ctx, "audit progress saved", map[string]interface{}{
		"audit_id":    audit.ID,
		"total_score": audit.TotalScore,
		"answered":    audit.AnsweredCount,
		"of":          audit.CatalogCount,
	})
	return audit, nil
}

// Close freezes the audit score. Closing an already closed audit
// succeeds and changes nothing.
func (uc *AuditUseCase) Close(ctx context.Context, caller domain.Caller, auditID string) (*domain.Audit, error) {
	audit, err := uc.authorized(ctx, caller, auditID)
	if err != nil {
		return nil, err
	}

	if audit.Closed() {
		return audit, nil
	}
	if err := audit.Close(); err != nil {
		return nil, err
	}
	if err := uc.auditRepo.Update(ctx, audit); err != nil {
		return nil, err
	}

	uc.log.Info(ctx, "audit closed", map[string]interface{}{
		"audit_id":    audit.ID,
		"total_score": audit.TotalScore,
	})
	return audit, nil
}

// Reopen reverts a closed audit to in-progress. Administrative role only.
func (uc *AuditUseCase) Reopen(ctx context.Context, caller domain.Caller, auditID string) (*domain.Audit, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	audit, err := uc.auditRepo.FindByID(ctx, auditID)
	if err != nil {
		return nil, err
	}

	audit.Reopen()
	if err := uc.auditRepo.Update(ctx, audit); err != nil {
		return nil, err
	}

	uc.log.Info(ctx, "audit reopened", map[string]interface{}{"audit_id": audit.ID})
	return audit, nil
}

// Delete removes an open audit and cascades to its AI analysis. Closed
// audits cannot be deleted without an administrative reopen first.
func (uc *AuditUseCase) Delete(ctx context.Context, caller domain.Caller, auditID string) error {
	audit, err := uc.authorized(ctx, caller, auditID)
	if err != nil {
		return err
	}
	if err := audit.EnsureDeletable(); err != nil {
		return err
	}

	// Cascade first: a dangling analysis for a deleted audit is worse
	// than a re-deletable audit if the second step fails.
	if err := uc.analysisRepo.DeleteByAuditID(ctx, auditID); err != nil && !domain.IsNotFound(err) {
		return err
	}
	if err := uc.auditRepo.Delete(ctx, auditID); err != nil {
		return err
	}

	uc.log.Info(ctx, "audit deleted", map[string]interface{}{"audit_id": auditID})
	return nil
}

// Progress reports answered versus total catalog standards.
func (uc *AuditUseCase) Progress(audit *domain.Audit) string {
	return fmt.Sprintf("%d/%d", audit.AnsweredCount, uc.catalog.Len())
}

// authorized loads the audit and applies the ownership predicate.
// Missing audits stay NotFound; foreign audits become Forbidden, and
// the two must remain distinguishable to callers.
func (uc *AuditUseCase) authorized(ctx context.Context, caller domain.Caller, auditID string) (*domain.Audit, error) {
	if auditID == "" {
		return nil, domain.NewError(domain.KindValidation, "audit id is required")
	}
	audit, err := uc.auditRepo.FindByID(ctx, auditID)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(audit.UserID) {
		return nil, domain.ErrForbidden
	}
	return audit, nil
}

func validateResponses(responses []domain.Response) error {
	for _, r := range responses {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}
