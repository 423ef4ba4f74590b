package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
	"github.com/auditx/auditx/internal/service/logger"
)

const (
	// narrativeTimeout bounds one generation call; a hung provider must
	// never hold an HTTP worker indefinitely.
	narrativeTimeout = 90 * time.Second
	retryBackoff     = 2 * time.Second
)

// AnalysisUseCase generates, stores and renders the narrative analysis
// of a scored audit. Generation failures never touch the audit itself.
type AnalysisUseCase struct {
	auditRepo    ports.AuditRepository
	companyRepo  ports.CompanyRepository
	analysisRepo ports.AnalysisRepository
	generator    ports.NarrativeGenerator
	renderer     ports.ReportRenderer
	catalog      domain.Catalog
	log          logger.Logger
}

// NewAnalysisUseCase creates a new analysis use case.
func NewAnalysisUseCase(
	auditRepo ports.AuditRepository,
	companyRepo ports.CompanyRepository,
	analysisRepo ports.AnalysisRepository,
	generator ports.NarrativeGenerator,
	renderer ports.ReportRenderer,
	catalog domain.Catalog,
	log logger.Logger,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		auditRepo:    auditRepo,
		companyRepo:  companyRepo,
		analysisRepo: analysisRepo,
		generator:    generator,
		renderer:     renderer,
		catalog:      catalog,
		log:          log,
	}
}

// Analyze builds the scored findings for an audit, asks the narrative
// generator for the analysis and report texts, and upserts the result.
// Regenerating replaces the previous analysis for the same audit.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, caller domain.Caller, auditID string) (*domain.AIAnalysis, error) {
	audit, company, err := uc.auditWithCompany(ctx, caller, auditID)
	if err != nil {
		return nil, err
	}

	req := uc.buildRequest(audit, company)

	result, err := uc.generate(ctx, req)
	if err != nil {
		return nil, domain.NewDependencyError("narrative generation failed", err)
	}

	analysis := domain.NewAIAnalysis(audit.ID, result.Analysis, result.Report)
	if err := uc.analysisRepo.Upsert(ctx, analysis); err != nil {
		return nil, err
	}

	uc.log.Info(ctx, "audit analysis generated", map[string]interface{}{
		"audit_id":    audit.ID,
		"analysis_id": analysis.ID,
	})
	return analysis, nil
}

// GetByAudit fetches the stored analysis for an audit, enforcing the
// audit's ownership.
func (uc *AnalysisUseCase) GetByAudit(ctx context.Context, caller domain.Caller, auditID string) (*domain.AIAnalysis, error) {
	if _, _, err := uc.auditWithCompany(ctx, caller, auditID); err != nil {
		return nil, err
	}
	return uc.analysisRepo.FindByAuditID(ctx, auditID)
}

// UpdateReport replaces the editable report text of an analysis. The
// raw analysis stays untouched.
func (uc *AnalysisUseCase) UpdateReport(ctx context.Context, caller domain.Caller, analysisID, report string) (*domain.AIAnalysis, error) {
	if report == "" {
		return nil, domain.NewError(domain.KindValidation, "report text is required")
	}

	analysis, err := uc.analysisRepo.FindByID(ctx, analysisID)
	if err != nil {
		return nil, err
	}
	if _, _, err := uc.auditWithCompany(ctx, caller, analysis.AuditID); err != nil {
		return nil, err
	}

	analysis.UpdateReport(report)
	if err := uc.analysisRepo.Update(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// GeneratePDF renders the stored report of an audit as a PDF document.
func (uc *AnalysisUseCase) GeneratePDF(ctx context.Context, caller domain.Caller, auditID string) ([]byte, error) {
	audit, company, err := uc.auditWithCompany(ctx, caller, auditID)
	if err != nil {
		return nil, err
	}
	analysis, err := uc.analysisRepo.FindByAuditID(ctx, auditID)
	if err != nil {
		return nil, err
	}

	pdf, err := uc.renderer.Render(ports.ReportPDFData{
		Company:     company,
		Audit:       audit,
		ReportText:  analysis.Report,
		EvaluatedAt: audit.UpdatedAt,
	})
	if err != nil {
		return nil, domain.NewDependencyError("pdf rendering failed", err)
	}
	return pdf, nil
}

// generate calls the narrative collaborator under a bounded timeout,
// retrying once on a transient failure.
func (uc *AnalysisUseCase) generate(ctx context.Context, req ports.NarrativeRequest) (*ports.NarrativeResult, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryBackoff):
			}
			uc.log.Warn(ctx, "retrying narrative generation", map[string]interface{}{
				"error": lastErr.Error(),
			})
		}

		callCtx, cancel := context.WithTimeout(ctx, narrativeTimeout)
		result, err := uc.generator.Generate(callCtx, req)
		cancel()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

// buildRequest joins the audit's responses with the catalog into the
// findings handed to the generator. Responses for ids not in the
// catalog are skipped, mirroring how scoring treats them.
func (uc *AnalysisUseCase) buildRequest(audit *domain.Audit, company *domain.Company) ports.NarrativeRequest {
	req := ports.NarrativeRequest{
		Company:          company,
		TotalScore:       audit.TotalScore,
		PhasePercentages: audit.PhaseScores,
	}
	for _, r := range audit.Responses {
		std, ok := uc.catalog.Lookup(r.StandardID)
		if !ok {
			continue
		}
		req.Details = append(req.Details, ports.StandardDetail{
			Standard:     std,
			Value:        r.Value,
			Observations: r.Observations,
			Score:        r.Score,
		})
		item := fmt.Sprintf("%s - %s", std.ID, std.Title)
		switch r.Value {
		case domain.ResponseNoCumple:
			req.CriticalItems = append(req.CriticalItems, item)
		case domain.ResponseCumpleParcial:
			req.PartialItems = append(req.PartialItems, item)
		}
	}
	return req
}

func (uc *AnalysisUseCase) auditWithCompany(ctx context.Context, caller domain.Caller, auditID string) (*domain.Audit, *domain.Company, error) {
	audit, err := uc.auditRepo.FindByID(ctx, auditID)
	if err != nil {
		return nil, nil, err
	}
	if !caller.CanAccess(audit.UserID) {
		return nil, nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.FindByID(ctx, audit.CompanyID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, nil, err
	}
	return audit, company, nil
}
