package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
)

func sampleData() ports.ReportPDFData {
	return ports.ReportPDFData{
		Company: &domain.Company{
			CompanyName: "Acme SAS",
			AdminName:   "Ana María",
			Address:     "Calle 1 # 2-3, Bogotá",
			Phone:       "300 123 4567",
			NIT:         "900123456-7",
		},
		Audit: &domain.Audit{
			TotalScore: 47.5,
			PhaseScores: map[string]float64{
				"I. PLANEAR":     60.0,
				"II. HACER":      40.0,
				"III. VERIFICAR": 30.0,
				"IV. ACTUAR":     55.0,
			},
		},
		ReportText:  "# RESUMEN EJECUTIVO\n\nLa empresa presenta un **cumplimiento moderado**.\n\n## PLAN DE ACCIÓN\n\n- Designar responsable del SG-SST\n- Documentar la política",
		EvaluatedAt: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestRenderProducesPDF(t *testing.T) {
	renderer := NewRenderer()

	out, err := renderer.Render(sampleData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if len(out) < 1000 {
		t.Errorf("suspiciously small document: %d bytes", len(out))
	}
}

func TestRenderWithoutCompany(t *testing.T) {
	renderer := NewRenderer()
	data := sampleData()
	data.Company = nil

	out, err := renderer.Render(data)
	if err != nil {
		t.Fatalf("expected rendering without company to succeed, got %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestRenderEmptyReport(t *testing.T) {
	renderer := NewRenderer()
	data := sampleData()
	data.ReportText = ""
	data.Audit.PhaseScores = nil

	out, err := renderer.Render(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Error("expected non-empty document")
	}
}

func TestStripMarkdown(t *testing.T) {
	cases := map[string]string{
		"**negrita**":   "negrita",
		"__subrayado__": "subrayado",
		"sin marcas":    "sin marcas",
	}
	for in, want := range cases {
		if got := stripMarkdown(in); got != want {
			t.Errorf("stripMarkdown(%q) = %q, want %q", in, got, want)
		}
	}
}
