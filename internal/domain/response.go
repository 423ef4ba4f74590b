package domain

// ResponseValue is the compliance answer for one standard.
type ResponseValue string

const (
	ResponseCumple        ResponseValue = "cumple"
	ResponseCumpleParcial ResponseValue = "cumple_parcial"
	ResponseNoCumple      ResponseValue = "no_cumple"
	ResponseNoAplica      ResponseValue = "no_aplica"
)

// Valid reports whether the value is a known answer. Request payloads
// with unknown values are rejected; this is the strict half of the
// "strict on shape, lenient on unknown standard ids" policy.
func (v ResponseValue) Valid() bool {
	switch v {
	case ResponseCumple, ResponseCumpleParcial, ResponseNoCumple, ResponseNoAplica:
		return true
	}
	return false
}

// Response is a user's answer to one standard.
type Response struct {
	StandardID   string        `json:"standard_id"`
	Value        ResponseValue `json:"response"`
	Observations string        `json:"observations"`
	EvidenceURLs []string      `json:"evidence_urls,omitempty"`
}

// Validate checks the request shape of a response.
func (r Response) Validate() error {
	if r.StandardID == "" {
		return NewError(KindValidation, "standard_id is required")
	}
	if !r.Value.Valid() {
		return NewError(KindValidation, "unknown response value: "+string(r.Value))
	}
	return nil
}

// ScoredResponse is a response with its computed point score attached,
// as stored inside the audit document.
type ScoredResponse struct {
	Response
	Score float64 `json:"score"`
}

// MergeResponses upserts incoming responses into an existing set by
// standard id. Existing answers keep their position; answers for
// standards not previously present are appended in input order. Saving
// progress therefore never discards unrelated prior answers.
func MergeResponses(existing, incoming []Response) []Response {
	merged := make([]Response, len(existing))
	copy(merged, existing)

	index := make(map[string]int, len(merged))
	for i, r := range merged {
		index[r.StandardID] = i
	}
	for _, r := range incoming {
		if i, ok := index[r.StandardID]; ok {
			merged[i] = r
			continue
		}
		index[r.StandardID] = len(merged)
		merged = append(merged, r)
	}
	return merged
}
