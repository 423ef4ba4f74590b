package scoring

import (
	"math"
	"testing"

	"github.com/auditx/auditx/internal/domain"
)

func mustCatalog(t *testing.T, standards []domain.Standard) domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog(standards)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

func testCatalog(t *testing.T) domain.Catalog {
	return mustCatalog(t, []domain.Standard{
		{ID: "1.1.1", Category: "I. PLANEAR - Recursos", Title: "a", Weight: 0.5},
		{ID: "1.1.2", Category: "I. PLANEAR - Recursos", Title: "b", Weight: 0.5},
		{ID: "2.1.1", Category: "II. HACER - Gestión", Title: "c", Weight: 2.0},
		{ID: "3.1.1", Category: "III. VERIFICAR - Auditoría", Title: "d", Weight: 1.0},
	})
}

func TestScoreEmptyResponses(t *testing.T) {
	result := Score(testCatalog(t), nil)

	if result.TotalPercentage != 0 {
		t.Errorf("expected 0%% for empty responses, got %v", result.TotalPercentage)
	}
	if result.AnsweredCount != 0 {
		t.Errorf("expected 0 answered, got %d", result.AnsweredCount)
	}
	if result.CatalogCount != 4 {
		t.Errorf("expected catalog count 4, got %d", result.CatalogCount)
	}
}

func TestScoreFullCompliance(t *testing.T) {
	catalog := testCatalog(t)
	responses := []domain.Response{
		{StandardID: "1.1.1", Value: domain.ResponseCumple},
		{StandardID: "1.1.2", Value: domain.ResponseCumple},
		{StandardID: "2.1.1", Value: domain.ResponseCumple},
		{StandardID: "3.1.1", Value: domain.ResponseCumple},
	}

	result := Score(catalog, responses)

	if result.TotalPercentage != 100 {
		t.Errorf("expected 100%%, got %v", result.TotalPercentage)
	}
	for phase, pr := range result.Phases {
		if pr.Percentage != 100 {
			t.Errorf("phase %s: expected 100%%, got %v", phase, pr.Percentage)
		}
	}
}

func TestScoreValues(t *testing.T) {
	catalog := testCatalog(t)
	responses := []domain.Response{
		{StandardID: "1.1.1", Value: domain.ResponseCumple},        // 0.5
		{StandardID: "1.1.2", Value: domain.ResponseCumpleParcial}, // 0.25
		{StandardID: "2.1.1", Value: domain.ResponseNoCumple},      // 0
	}

	result := Score(catalog, responses)

	if result.ObtainedWeight != 0.75 {
		t.Errorf("expected obtained weight 0.75, got %v", result.ObtainedWeight)
	}
	// Denominator stays the full catalog weight: unanswered standards
	// count against the score.
	if result.ApplicableWeight != 4.0 {
		t.Errorf("expected applicable weight 4.0, got %v", result.ApplicableWeight)
	}
	want := math.Round(0.75/4.0*100*100) / 100
	if result.TotalPercentage != want {
		t.Errorf("expected %v%%, got %v", want, result.TotalPercentage)
	}

	scores := map[string]float64{}
	for _, r := range result.Responses {
		scores[r.StandardID] = r.Score
	}
	if scores["1.1.1"] != 0.5 || scores["1.1.2"] != 0.25 || scores["2.1.1"] != 0 {
		t.Errorf("unexpected per-item scores: %v", scores)
	}
}

func TestScoreNoAplicaShrinksDenominator(t *testing.T) {
	catalog := testCatalog(t)
	responses := []domain.Response{
		{StandardID: "2.1.1", Value: domain.ResponseNoAplica},
		{StandardID: "1.1.1", Value: domain.ResponseCumple},
		{StandardID: "1.1.2", Value: domain.ResponseCumple},
		{StandardID: "3.1.1", Value: domain.ResponseCumple},
	}

	result := Score(catalog, responses)

	if result.ApplicableWeight != 2.0 {
		t.Errorf("expected applicable weight 2.0 after no_aplica, got %v", result.ApplicableWeight)
	}
	if result.TotalPercentage != 100 {
		t.Errorf("expected 100%% when every applicable standard is met, got %v", result.TotalPercentage)
	}
	// The excluded phase has no applicable weight left and reports 0.
	if pr := result.Phases["II. HACER"]; pr.Total != 0 || pr.Percentage != 0 {
		t.Errorf("expected empty II. HACER phase, got %+v", pr)
	}
	// no_aplica still counts as answered and is kept in the stored set.
	if result.AnsweredCount != 4 {
		t.Errorf("expected 4 answered, got %d", result.AnsweredCount)
	}
}

func TestScoreAllNoAplica(t *testing.T) {
	catalog := mustCatalog(t, []domain.Standard{
		{ID: "1.1.1", Category: "I. PLANEAR - Recursos", Weight: 1.0},
	})
	responses := []domain.Response{
		{StandardID: "1.1.1", Value: domain.ResponseNoAplica},
	}

	result := Score(catalog, responses)

	if result.TotalPercentage != 0 {
		t.Errorf("expected 0%% on zero applicable weight, got %v", result.TotalPercentage)
	}
}

func TestScoreUnknownStandardIgnored(t *testing.T) {
	catalog := testCatalog(t)
	responses := []domain.Response{
		{StandardID: "9.9.9", Value: domain.ResponseCumple},
		{StandardID: "1.1.1", Value: domain.ResponseCumple},
	}

	result := Score(catalog, responses)

	if result.AnsweredCount != 1 {
		t.Errorf("expected unknown id to be dropped, answered=%d", result.AnsweredCount)
	}
	if len(result.Responses) != 1 || result.Responses[0].StandardID != "1.1.1" {
		t.Errorf("expected only 1.1.1 in scored set, got %+v", result.Responses)
	}
}

func TestScorePhaseTotalsCoverCatalog(t *testing.T) {
	catalog := testCatalog(t)

	result := Score(catalog, nil)

	sum := 0.0
	for _, pr := range result.Phases {
		sum += pr.Total
	}
	if sum != catalog.TotalWeight() {
		t.Errorf("phase totals sum %v, want catalog total %v", sum, catalog.TotalWeight())
	}
}

func TestScoreAlternatingPartialScenario(t *testing.T) {
	// Five 0.5-weight standards inside a 163.0-weight catalog, answered
	// alternately cumple_parcial / cumple starting with parcial:
	// 0.25 + 0.5 + 0.25 + 0.5 + 0.25 = 1.75 over 163.0 => 1.07%.
	standards := []domain.Standard{
		{ID: "1.1.1", Category: "I. PLANEAR - Recursos", Weight: 0.5},
		{ID: "1.1.2", Category: "I. PLANEAR - Recursos", Weight: 0.5},
		{ID: "1.1.3", Category: "I. PLANEAR - Recursos", Weight: 0.5},
		{ID: "1.1.4", Category: "I. PLANEAR - Recursos", Weight: 0.5},
		{ID: "1.1.5", Category: "I. PLANEAR - Recursos", Weight: 0.5},
		{ID: "9.1.1", Category: "IV. ACTUAR - Mejoramiento", Weight: 160.5},
	}
	catalog := mustCatalog(t, standards)
	if catalog.TotalWeight() != 163.0 {
		t.Fatalf("scenario catalog weight = %v, want 163.0", catalog.TotalWeight())
	}

	responses := []domain.Response{
		{StandardID: "1.1.1", Value: domain.ResponseCumpleParcial},
		{StandardID: "1.1.2", Value: domain.ResponseCumple},
		{StandardID: "1.1.3", Value: domain.ResponseCumpleParcial},
		{StandardID: "1.1.4", Value: domain.ResponseCumple},
		{StandardID: "1.1.5", Value: domain.ResponseCumpleParcial},
	}

	result := Score(catalog, responses)

	if result.ObtainedWeight != 1.75 {
		t.Errorf("expected obtained weight 1.75, got %v", result.ObtainedWeight)
	}
	if result.TotalPercentage != 1.07 {
		t.Errorf("expected 1.07%%, got %v", result.TotalPercentage)
	}
}

func TestScoreDeterministic(t *testing.T) {
	catalog := testCatalog(t)
	responses := []domain.Response{
		{StandardID: "1.1.1", Value: domain.ResponseCumpleParcial},
		{StandardID: "2.1.1", Value: domain.ResponseNoAplica},
		{StandardID: "3.1.1", Value: domain.ResponseCumple},
	}

	first := Score(catalog, responses)
	second := Score(catalog, responses)

	if first.TotalPercentage != second.TotalPercentage {
		t.Errorf("scoring not deterministic: %v vs %v", first.TotalPercentage, second.TotalPercentage)
	}
	if len(first.Responses) != len(second.Responses) {
		t.Errorf("response sets differ in length")
	}
	for phase, pr := range first.Phases {
		if second.Phases[phase] != pr {
			t.Errorf("phase %s differs between runs", phase)
		}
	}
}
