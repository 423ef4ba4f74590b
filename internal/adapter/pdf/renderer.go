package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/auditx/auditx/internal/ports"
)

// Renderer produces the downloadable evaluation report as a PDF. The
// narrative text is rendered as flowed paragraphs; markdown heading
// markers are converted to bold section titles.
type Renderer struct{}

// NewRenderer creates a new PDF renderer
func NewRenderer() ports.ReportRenderer {
	return &Renderer{}
}

// Render builds the report document and returns the PDF bytes.
func (r *Renderer) Render(data ports.ReportPDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr("INFORME DE EVALUACIÓN DEL SISTEMA DE GESTIÓN DE SEGURIDAD Y SALUD EN EL TRABAJO"), "", "C", false)
	pdf.Ln(6)

	r.companyBlock(pdf, tr, data)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Puntaje Total: %.2f%%", data.Audit.TotalScore)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(data.Audit.PhaseScores) > 0 {
		r.phaseTable(pdf, tr, data)
		pdf.Ln(4)
	}

	r.reportBody(pdf, tr, data.ReportText)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) companyBlock(pdf *gofpdf.Fpdf, tr func(string) string, data ports.ReportPDFData) {
	pdf.SetFont("Helvetica", "", 11)

	rows := [][2]string{}
	if data.Company != nil {
		rows = append(rows,
			[2]string{"Empresa", data.Company.CompanyName},
			[2]string{"Responsable", data.Company.AdminName},
			[2]string{"Dirección", data.Company.Address},
			[2]string{"Teléfono", data.Company.Phone},
		)
		if data.Company.NIT != "" {
			rows = append(rows, [2]string{"NIT", data.Company.NIT})
		}
	}
	rows = append(rows, [2]string{"Fecha de evaluación", data.EvaluatedAt.Format("02-01-2006")})

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 7, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 7, tr(row[1]), "", "L", false)
	}
}

func (r *Renderer) phaseTable(pdf *gofpdf.Fpdf, tr func(string) string, data ports.ReportPDFData) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr("Desglose por Fases (PHVA)"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, phase := range []string{"I. PLANEAR", "II. HACER", "III. VERIFICAR", "IV. ACTUAR"} {
		pct, ok := data.Audit.PhaseScores[phase]
		if !ok {
			continue
		}
		pdf.CellFormat(80, 6, tr(phase), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.1f%%", pct), "1", 1, "R", false, 0, "")
	}
	// Phases outside the standard PHVA labels still get a row.
	for phase, pct := range data.Audit.PhaseScores {
		if isStandardPhase(phase) {
			continue
		}
		pdf.CellFormat(80, 6, tr(phase), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.1f%%", pct), "1", 1, "R", false, 0, "")
	}
}

func (r *Renderer) reportBody(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			pdf.Ln(3)
		case strings.HasPrefix(trimmed, "#"):
			heading := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 7, tr(stripMarkdown(heading)), "", "L", false)
			pdf.Ln(1)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5.5, tr(stripMarkdown(trimmed)), "", "L", false)
		}
	}
}

func isStandardPhase(phase string) bool {
	switch phase {
	case "I. PLANEAR", "II. HACER", "III. VERIFICAR", "IV. ACTUAR":
		return true
	}
	return false
}

// stripMarkdown removes the emphasis markers the narrative tends to
// carry; the PDF renders plain text.
func stripMarkdown(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	return s
}
