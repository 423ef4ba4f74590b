package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/auditx/auditx/internal/ports"
)

// MockGenerator is a deterministic NarrativeGenerator for local
// development and tests: no network, no API key, stable output for the
// same input.
type MockGenerator struct{}

// NewMockGenerator creates a new mock generator
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate produces canned analysis and report texts derived from the
// request numbers.
func (m *MockGenerator) Generate(ctx context.Context, req ports.NarrativeRequest) (*ports.NarrativeResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	level := classification(req.TotalScore)

	var analysis strings.Builder
	fmt.Fprintf(&analysis, "## RESUMEN EJECUTIVO\n\n")
	fmt.Fprintf(&analysis, "La empresa %s obtuvo un puntaje de %.2f%%, clasificado como %s.\n\n", companyName(req), req.TotalScore, level)
	fmt.Fprintf(&analysis, "Estándares críticos sin cumplir: %d. Estándares con cumplimiento parcial: %d.\n\n", len(req.CriticalItems), len(req.PartialItems))
	fmt.Fprintf(&analysis, "## ANÁLISIS POR FASES (PHVA)\n\n%s", phaseBreakdown(req.PhasePercentages))
	if len(req.CriticalItems) > 0 {
		fmt.Fprintf(&analysis, "\n## BRECHAS CRÍTICAS\n\n")
		for _, item := range req.CriticalItems {
			fmt.Fprintf(&analysis, "- %s\n", item)
		}
	}

	var report strings.Builder
	fmt.Fprintf(&report, "# INFORME DE EVALUACIÓN DEL SISTEMA DE GESTIÓN DE SEGURIDAD Y SALUD EN EL TRABAJO\n\n")
	fmt.Fprintf(&report, "**Empresa:** %s\n\n", companyName(req))
	fmt.Fprintf(&report, "**Puntaje global:** %.2f%% (%s)\n\n", req.TotalScore, level)
	fmt.Fprintf(&report, "## PLAN DE ACCIÓN PRIORIZADO\n\n")
	fmt.Fprintf(&report, "Atender primero los %d estándares críticos, luego los %d parciales.\n", len(req.CriticalItems), len(req.PartialItems))

	return &ports.NarrativeResult{
		Analysis: analysis.String(),
		Report:   report.String(),
	}, nil
}

func classification(score float64) string {
	switch {
	case score >= 85:
		return "Excelente"
	case score >= 60:
		return "Moderado"
	default:
		return "Crítico"
	}
}
