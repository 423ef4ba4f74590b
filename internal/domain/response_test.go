package domain

import "testing"

func TestResponseValueValid(t *testing.T) {
	valid := []ResponseValue{ResponseCumple, ResponseCumpleParcial, ResponseNoCumple, ResponseNoAplica}
	for _, v := range valid {
		if !v.Valid() {
			t.Errorf("expected %q to be valid", v)
		}
	}

	invalid := []ResponseValue{"", "si", "CUMPLE", "partial"}
	for _, v := range invalid {
		if v.Valid() {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}

func TestResponseValidate(t *testing.T) {
	t.Run("valid response", func(t *testing.T) {
		r := Response{StandardID: "1.1.1", Value: ResponseCumple}
		if err := r.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing standard id", func(t *testing.T) {
		r := Response{Value: ResponseCumple}
		if err := r.Validate(); !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown value", func(t *testing.T) {
		r := Response{StandardID: "1.1.1", Value: "maybe"}
		if err := r.Validate(); !IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestMergeResponses(t *testing.T) {
	existing := []Response{
		{StandardID: "1.1.1", Value: ResponseNoCumple},
		{StandardID: "1.1.2", Value: ResponseCumple},
	}
	incoming := []Response{
		{StandardID: "1.1.1", Value: ResponseCumple, Observations: "corregido"},
		{StandardID: "2.1.1", Value: ResponseCumpleParcial},
	}

	merged := MergeResponses(existing, incoming)

	if len(merged) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(merged))
	}
	// Updated answer keeps its original position.
	if merged[0].StandardID != "1.1.1" || merged[0].Value != ResponseCumple || merged[0].Observations != "corregido" {
		t.Errorf("expected 1.1.1 updated in place, got %+v", merged[0])
	}
	// Untouched answer survives.
	if merged[1].StandardID != "1.1.2" || merged[1].Value != ResponseCumple {
		t.Errorf("expected 1.1.2 untouched, got %+v", merged[1])
	}
	// New answer appended at the end.
	if merged[2].StandardID != "2.1.1" {
		t.Errorf("expected 2.1.1 appended, got %+v", merged[2])
	}
}

func TestMergeResponsesEmptyExisting(t *testing.T) {
	incoming := []Response{{StandardID: "1.1.1", Value: ResponseCumple}}

	merged := MergeResponses(nil, incoming)

	if len(merged) != 1 || merged[0].StandardID != "1.1.1" {
		t.Errorf("unexpected merge result: %+v", merged)
	}
}

func TestMergeResponsesDoesNotMutateExisting(t *testing.T) {
	existing := []Response{{StandardID: "1.1.1", Value: ResponseNoCumple}}
	incoming := []Response{{StandardID: "1.1.1", Value: ResponseCumple}}

	_ = MergeResponses(existing, incoming)

	if existing[0].Value != ResponseNoCumple {
		t.Error("merge must not mutate the input slice")
	}
}
