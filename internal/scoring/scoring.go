// Package scoring computes compliance percentages from a standards
// catalog and a set of responses. Pure computation: identical inputs
// always yield identical output.
package scoring

import (
	"math"

	"github.com/auditx/auditx/internal/domain"
)

// PhaseResult aggregates obtained and available weight for one PHVA phase.
type PhaseResult struct {
	Obtained   float64 `json:"obtained"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
}

// Result is the full scoring output for one response set.
type Result struct {
	// TotalPercentage is obtained weight over applicable weight, 0-100.
	TotalPercentage float64
	// Responses carries every scorable response with its point score, in
	// input order. Responses for unknown standard ids are dropped.
	Responses []domain.ScoredResponse
	// Phases maps phase label (e.g. "I. PLANEAR") to its aggregate.
	Phases map[string]PhaseResult
	// AnsweredCount counts scored responses, no_aplica included.
	AnsweredCount int
	// CatalogCount is the number of standards in the catalog.
	CatalogCount int
	// ObtainedWeight and ApplicableWeight are the raw numerator and
	// denominator behind TotalPercentage.
	ObtainedWeight   float64
	ApplicableWeight float64
}

// PhasePercentages flattens the phase aggregates for storage on the audit.
func (r Result) PhasePercentages() map[string]float64 {
	out := make(map[string]float64, len(r.Phases))
	for phase, pr := range r.Phases {
		out[phase] = pr.Percentage
	}
	return out
}

// Score computes per-item scores, the overall percentage and the
// per-phase breakdown for a response set against a catalog.
//
// Policy:
//   - cumple earns the full weight, cumple_parcial half, no_cumple zero.
//   - no_aplica removes the standard from both numerator and denominator,
//     overall and within its phase.
//   - a response whose standard id is not in the catalog is ignored, not
//     an error: retired standards in old audits must not break scoring.
//   - a zero applicable weight yields 0%, never a division by zero.
func Score(catalog domain.Catalog, responses []domain.Response) Result {
	res := Result{
		Phases:           make(map[string]PhaseResult),
		CatalogCount:     catalog.Len(),
		ApplicableWeight: catalog.TotalWeight(),
	}

	for _, s := range catalog.Standards() {
		phase := s.Phase()
		pr := res.Phases[phase]
		pr.Total += s.Weight
		res.Phases[phase] = pr
	}

	for _, r := range responses {
		standard, ok := catalog.Lookup(r.StandardID)
		if !ok {
			continue
		}

		var score float64
		switch r.Value {
		case domain.ResponseCumple:
			score = standard.Weight
		case domain.ResponseCumpleParcial:
			score = standard.Weight * 0.5
		case domain.ResponseNoAplica:
			// Excluded standards shrink the denominator instead of
			// counting against the company.
			res.ApplicableWeight -= standard.Weight
			phase := standard.Phase()
			pr := res.Phases[phase]
			pr.Total -= standard.Weight
			pr.Count++
			res.Phases[phase] = pr
			res.AnsweredCount++
			res.Responses = append(res.Responses, domain.ScoredResponse{Response: r})
			continue
		default: // no_cumple
			score = 0
		}

		res.ObtainedWeight += score
		res.AnsweredCount++
		res.Responses = append(res.Responses, domain.ScoredResponse{Response: r, Score: score})

		phase := standard.Phase()
		pr := res.Phases[phase]
		pr.Obtained += score
		pr.Count++
		res.Phases[phase] = pr
	}

	if res.ApplicableWeight > 0 {
		res.TotalPercentage = round2(res.ObtainedWeight / res.ApplicableWeight * 100)
	}
	for phase, pr := range res.Phases {
		if pr.Total > 0 {
			pr.Percentage = round2(pr.Obtained / pr.Total * 100)
		} else {
			pr.Percentage = 0
		}
		res.Phases[phase] = pr
	}

	return res
}

// round2 keeps displayed percentages at two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
