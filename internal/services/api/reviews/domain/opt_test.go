package domain

import (
	"encoding/json"
	"testing"
)

func TestOpt_AbsentNullValue(t *testing.T) {
	t.Parallel()

	var in UpdateInput
	body := `{"rating":3,"text":null}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !in.Rating.Set || !in.Rating.Valid || in.Rating.Value != 3 {
		t.Fatalf("rating = %+v, want set valid 3", in.Rating)
	}
	if !in.Text.Set || in.Text.Valid {
		t.Fatalf("text = %+v, want set but null", in.Text)
	}
	if in.Dishes.Set {
		t.Fatalf("dishes should be absent")
	}
	if in.PhotoURLs.Set {
		t.Fatalf("photoUrls should be absent")
	}
}

func TestOpt_SliceValue(t *testing.T) {
	t.Parallel()

	var in UpdateInput
	body := `{"dishes":["margherita","calzone"]}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !in.Dishes.Set || !in.Dishes.Valid {
		t.Fatalf("dishes = %+v, want set valid", in.Dishes)
	}
	if len(in.Dishes.Value) != 2 || in.Dishes.Value[0] != "margherita" {
		t.Fatalf("dishes value = %v", in.Dishes.Value)
	}
}

func TestOpt_InvalidType(t *testing.T) {
	t.Parallel()

	var in UpdateInput
	if err := json.Unmarshal([]byte(`{"rating":"five"}`), &in); err == nil {
		t.Fatalf("string rating should fail to unmarshal")
	}
}
