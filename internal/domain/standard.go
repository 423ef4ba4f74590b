package domain

import (
	"fmt"
	"strings"
)

// Standard is one weighted compliance checklist item from the
// Resolución 0312 de 2019 catalog.
type Standard struct {
	ID                 string  `json:"id"`
	Category           string  `json:"category"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Weight             float64 `json:"weight"`
	VerificationMethod string  `json:"metodo_verificacion,omitempty"`
	Criterion          string  `json:"criterio,omitempty"`
}

// Phase extracts the PHVA phase label from the category, the text
// before the first " - " delimiter (e.g. "I. PLANEAR").
func (s Standard) Phase() string {
	if idx := strings.Index(s.Category, " - "); idx >= 0 {
		return s.Category[:idx]
	}
	return s.Category
}

// Catalog is the immutable, versioned set of standards. It is built
// once at startup and injected wherever scoring or progress metrics
// are computed; there is no package-level catalog state.
//
// Weights are fixed per catalog revision. Re-scoring historical audits
// against a changed catalog changes the meaning of their stored totals
// and is never done implicitly.
type Catalog struct {
	standards   []Standard
	byID        map[string]int
	totalWeight float64
}

// NewCatalog validates and freezes a list of standards. IDs must be
// unique and weights strictly positive.
func NewCatalog(standards []Standard) (Catalog, error) {
	byID := make(map[string]int, len(standards))
	total := 0.0
	for i, s := range standards {
		if s.ID == "" {
			return Catalog{}, fmt.Errorf("standard at index %d has empty id", i)
		}
		if _, dup := byID[s.ID]; dup {
			return Catalog{}, fmt.Errorf("duplicate standard id %q", s.ID)
		}
		if s.Weight <= 0 {
			return Catalog{}, fmt.Errorf("standard %q has non-positive weight %v", s.ID, s.Weight)
		}
		byID[s.ID] = i
		total += s.Weight
	}
	owned := make([]Standard, len(standards))
	copy(owned, standards)
	return Catalog{standards: owned, byID: byID, totalWeight: total}, nil
}

// Standards returns the ordered standards. Callers must not mutate
// the returned slice.
func (c Catalog) Standards() []Standard {
	return c.standards
}

// Lookup finds a standard by id.
func (c Catalog) Lookup(id string) (Standard, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Standard{}, false
	}
	return c.standards[idx], true
}

// Len returns the number of standards in the catalog.
func (c Catalog) Len() int {
	return len(c.standards)
}

// TotalWeight is the scoring denominator before no_aplica exclusions.
func (c Catalog) TotalWeight() float64 {
	return c.totalWeight
}
