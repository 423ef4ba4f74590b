package ai

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/auditx/auditx/internal/ports"
)

// systemPrompt frames every conversation with the consultant persona.
const systemPrompt = "Eres un experto consultor en Seguridad y Salud en el Trabajo en Colombia, especializado en la Resolución 0312 de 2019."

// buildAnalysisPrompt produces the structured analysis request from the
// scored findings.
func buildAnalysisPrompt(req ports.NarrativeRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", systemPrompt)
	fmt.Fprintf(&b, "INFORMACIÓN DE LA EMPRESA:\n")
	fmt.Fprintf(&b, "Empresa: %s\n", companyName(req))
	fmt.Fprintf(&b, "Puntaje Total: %.2f%%\n\n", req.TotalScore)

	fmt.Fprintf(&b, "DESGLOSE POR FASES:\n%s\n", phaseBreakdown(req.PhasePercentages))

	fmt.Fprintf(&b, "ESTÁNDARES CRÍTICOS (No Cumple): %d\n", len(req.CriticalItems))
	fmt.Fprintf(&b, "ESTÁNDARES PARCIALES (Cumple Parcial): %d\n\n", len(req.PartialItems))

	fmt.Fprintf(&b, "RESPUESTAS DETALLADAS A LOS ESTÁNDARES:\n%s\n", detailedResponses(req.Details))

	fmt.Fprintf(&b, `
Por favor, proporciona un análisis profesional y estructurado con:

1. **RESUMEN EJECUTIVO**
   - Nivel de cumplimiento global y clasificación (Crítico <60%%, Moderado 60-84%%, Excelente ≥85%%)
   - Principales hallazgos en 3-4 puntos clave
   - Riesgo general identificado

2. **ANÁLISIS POR FASES (PHVA)**
   - Planear: Análisis del %.1f%% obtenido
   - Hacer: Análisis del %.1f%% obtenido
   - Verificar: Análisis del %.1f%% obtenido
   - Actuar: Análisis del %.1f%% obtenido

3. **FORTALEZAS IDENTIFICADAS**
   - Listar estándares con cumplimiento total
   - Destacar buenas prácticas observadas

4. **BRECHAS Y OPORTUNIDADES DE MEJORA**
   - Análisis de los %d estándares críticos (no cumple)
   - Análisis de los %d estándares parciales
   - Identificar patrones comunes en los incumplimientos

5. **ANÁLISIS DE RIESGOS**
   - Riesgos asociados a los incumplimientos críticos
   - Impacto potencial en la seguridad de los trabajadores
   - Exposición legal y sanciones posibles

El análisis debe ser profesional, técnico, orientado a la acción y fácil de entender para la gerencia.`,
		req.PhasePercentages["I. PLANEAR"],
		req.PhasePercentages["II. HACER"],
		req.PhasePercentages["III. VERIFICAR"],
		req.PhasePercentages["IV. ACTUAR"],
		len(req.CriticalItems),
		len(req.PartialItems),
	)
	return b.String()
}

// buildReportPrompt asks for the editable executive report with the
// action plan, building on the analysis already in the conversation.
func buildReportPrompt(req ports.NarrativeRequest, now time.Time) string {
	company := req.Company
	adminName, address, phone, nit := "", "", "", "[Pendiente de completar]"
	if company != nil {
		adminName = company.AdminName
		address = company.Address
		phone = company.Phone
		if company.NIT != "" {
			nit = company.NIT
		}
	}

	return fmt.Sprintf(`Basándote en el análisis anterior, genera un informe ejecutivo profesional con plan de acción detallado para %s.

El informe debe incluir:

1. **PORTADA**
   - Título: "INFORME DE EVALUACIÓN DEL SISTEMA DE GESTIÓN DE SEGURIDAD Y SALUD EN EL TRABAJO"
   - Empresa: %s
   - NIT/Identificación: %s
   - Fecha de evaluación: %s
   - Responsable: %s
   - Dirección: %s
   - Teléfono: %s

2. **RESUMEN EJECUTIVO**
   - Puntaje global: %.2f%%
   - Clasificación: [Crítico/Moderado/Excelente según puntaje]
   - Desglose por fases PHVA
   - Principales hallazgos (3-4 bullets)
   - Recomendación principal

3. **RESULTADOS POR FASE**
   - **I. PLANEAR (%.1f%%)**: Análisis y hallazgos
   - **II. HACER (%.1f%%)**: Análisis y hallazgos
   - **III. VERIFICAR (%.1f%%)**: Análisis y hallazgos
   - **IV. ACTUAR (%.1f%%)**: Análisis y hallazgos

4. **FORTALEZAS IDENTIFICADAS**
   - Listar estándares que cumplen al 100%%
   - Destacar buenas prácticas

5. **BRECHAS CRÍTICAS Y OPORTUNIDADES**
   - %d estándares críticos sin cumplir
   - %d estándares con cumplimiento parcial
   - Análisis de patrones e impacto

6. **ANÁLISIS DE RIESGOS ASOCIADOS**
   - Riesgos de seguridad identificados
   - Exposición legal y sanciones potenciales
   - Impacto en operaciones

7. **PLAN DE ACCIÓN PRIORIZADO**

   **A. ACCIONES INMEDIATAS (0-30 días) - PRIORIDAD CRÍTICA**
   Para cada acción incluir:
   - Nombre de la acción
   - Estándar(es) relacionado(s)
   - Descripción detallada
   - Responsable sugerido
   - Recursos estimados
   - Resultado esperado

   **B. ACCIONES A CORTO PLAZO (1-3 meses) - PRIORIDAD ALTA**
   Para cada acción incluir mismo formato anterior

   **C. ACCIONES A MEDIANO PLAZO (3-12 meses) - PRIORIDAD MEDIA**
   Para cada acción incluir mismo formato anterior

8. **CRONOGRAMA SUGERIDO**
   Tabla mensual con actividades priorizadas

9. **ESTIMACIÓN DE RECURSOS**
   - Recursos humanos necesarios
   - Recursos tecnológicos
   - Presupuesto estimado
   - Capacitaciones requeridas

10. **INDICADORES DE SEGUIMIENTO**
    - KPIs para medir progreso
    - Frecuencia de medición
    - Responsables

11. **CONCLUSIONES Y RECOMENDACIONES**
    - Síntesis de situación actual
    - Ruta crítica para cumplimiento
    - Beneficios esperados de implementar el plan

12. **ANEXOS SUGERIDOS**
    - Lista de estándares no conformes
    - Normatividad aplicable
    - Formatos recomendados

El informe debe ser formal, accionable y listo para presentar a gerencia. Usa formato markdown con títulos, subtítulos, listas y tablas.`,
		companyName(req),
		companyName(req),
		nit,
		now.Format("02-01-2006"),
		adminName,
		address,
		phone,
		req.TotalScore,
		req.PhasePercentages["I. PLANEAR"],
		req.PhasePercentages["II. HACER"],
		req.PhasePercentages["III. VERIFICAR"],
		req.PhasePercentages["IV. ACTUAR"],
		len(req.CriticalItems),
		len(req.PartialItems),
	)
}

func companyName(req ports.NarrativeRequest) string {
	if req.Company != nil {
		return req.Company.CompanyName
	}
	return "Empresa"
}

func phaseBreakdown(phases map[string]float64) string {
	names := make([]string, 0, len(phases))
	for name := range phases {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %.1f%%\n", name, phases[name])
	}
	return b.String()
}

func detailedResponses(details []ports.StandardDetail) string {
	var b strings.Builder
	for _, d := range details {
		fmt.Fprintf(&b, "\nEstándar %s: %s\n", d.Standard.ID, d.Standard.Title)
		fmt.Fprintf(&b, "Categoría: %s\n", d.Standard.Category)
		fmt.Fprintf(&b, "Descripción: %s\n", d.Standard.Description)
		fmt.Fprintf(&b, "Respuesta: %s\n", d.Value)
		fmt.Fprintf(&b, "Observaciones: %s\n", d.Observations)
		fmt.Fprintf(&b, "Puntaje obtenido: %g/%g\n", d.Score, d.Standard.Weight)
	}
	return b.String()
}
