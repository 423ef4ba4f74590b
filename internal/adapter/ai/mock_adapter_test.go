package ai

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
)

func sampleRequest() ports.NarrativeRequest {
	return ports.NarrativeRequest{
		Company:    &domain.Company{CompanyName: "Acme SAS", AdminName: "Ana", Address: "Calle 1", Phone: "300"},
		TotalScore: 47.5,
		PhasePercentages: map[string]float64{
			"I. PLANEAR":     60.0,
			"II. HACER":      40.0,
			"III. VERIFICAR": 30.0,
			"IV. ACTUAR":     55.0,
		},
		CriticalItems: []string{"1.1.1 - Responsable del SG-SST"},
		PartialItems:  []string{"2.1.1 - Política de SST"},
		Details: []ports.StandardDetail{
			{
				Standard:     domain.Standard{ID: "1.1.1", Category: "I. PLANEAR - Recursos", Title: "Responsable del SG-SST", Weight: 0.5},
				Value:        domain.ResponseNoCumple,
				Observations: "sin designar",
			},
		},
	}
}

func TestMockGeneratorDeterministic(t *testing.T) {
	gen := NewMockGenerator()
	ctx := context.Background()

	first, err := gen.Generate(ctx, sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := gen.Generate(ctx, sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Analysis != second.Analysis || first.Report != second.Report {
		t.Error("mock generator must be deterministic for the same input")
	}
	if !strings.Contains(first.Analysis, "Acme SAS") {
		t.Error("analysis must mention the company")
	}
	if !strings.Contains(first.Analysis, "47.50%") {
		t.Error("analysis must carry the total score")
	}
	if !strings.Contains(first.Analysis, "1.1.1 - Responsable del SG-SST") {
		t.Error("critical items must be listed")
	}
	if !strings.Contains(first.Report, "PLAN DE ACCIÓN") {
		t.Error("report must contain the action plan section")
	}
}

func TestMockGeneratorHonorsContext(t *testing.T) {
	gen := NewMockGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := gen.Generate(ctx, sampleRequest()); err == nil {
		t.Error("expected context error after cancellation")
	}
}

func TestClassification(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, "Crítico"},
		{59.99, "Crítico"},
		{60, "Moderado"},
		{84.99, "Moderado"},
		{85, "Excelente"},
		{100, "Excelente"},
	}
	for _, tc := range cases {
		if got := classification(tc.score); got != tc.want {
			t.Errorf("classification(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestBuildAnalysisPrompt(t *testing.T) {
	prompt := buildAnalysisPrompt(sampleRequest())

	for _, fragment := range []string{
		"INFORMACIÓN DE LA EMPRESA",
		"Empresa: Acme SAS",
		"Puntaje Total: 47.50%",
		"DESGLOSE POR FASES",
		"ESTÁNDARES CRÍTICOS (No Cumple): 1",
		"ESTÁNDARES PARCIALES (Cumple Parcial): 1",
		"RESPUESTAS DETALLADAS A LOS ESTÁNDARES",
		"Estándar 1.1.1: Responsable del SG-SST",
		"Puntaje obtenido: 0/0.5",
		"RESUMEN EJECUTIVO",
		"ANÁLISIS DE RIESGOS",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("analysis prompt missing %q", fragment)
		}
	}
}

func TestBuildReportPrompt(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("with full company data", func(t *testing.T) {
		req := sampleRequest()
		req.Company.NIT = "900123456-7"

		prompt := buildReportPrompt(req, now)
		for _, fragment := range []string{
			"NIT/Identificación: 900123456-7",
			"Fecha de evaluación: 15-03-2026",
			"Responsable: Ana",
			"PLAN DE ACCIÓN PRIORIZADO",
			"CRONOGRAMA SUGERIDO",
		} {
			if !strings.Contains(prompt, fragment) {
				t.Errorf("report prompt missing %q", fragment)
			}
		}
	})

	t.Run("missing NIT gets placeholder", func(t *testing.T) {
		prompt := buildReportPrompt(sampleRequest(), now)
		if !strings.Contains(prompt, "NIT/Identificación: [Pendiente de completar]") {
			t.Error("expected NIT placeholder for companies without one")
		}
	})
}

func TestPhaseBreakdownSorted(t *testing.T) {
	out := phaseBreakdown(map[string]float64{
		"IV. ACTUAR": 55.0,
		"I. PLANEAR": 60.0,
	})

	planear := strings.Index(out, "I. PLANEAR")
	actuar := strings.Index(out, "IV. ACTUAR")
	if planear < 0 || actuar < 0 || planear > actuar {
		t.Errorf("phases not sorted: %q", out)
	}
	if !strings.Contains(out, "- I. PLANEAR: 60.0%") {
		t.Errorf("unexpected formatting: %q", out)
	}
}
