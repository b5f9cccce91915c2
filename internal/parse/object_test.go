package parse

import "testing"

func TestExtractObject_PlainJSON(t *testing.T) {
	got, err := ExtractObject(`{"score": 7.5, "analysis": "solid answer"}`, "score", "analysis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := Number(got["score"]); !ok || n != 7.5 {
		t.Errorf("score = %v, want 7.5", got["score"])
	}
	if s, _ := Text(got["analysis"]); s != "solid answer" {
		t.Errorf("analysis = %q, want %q", s, "solid answer")
	}
}

func TestExtractObject_WrappedInProseAndFences(t *testing.T) {
	raw := "Sure! Here is the evaluation you asked for:\n```json\n{\"score\": 6, \"analysis\": \"ok\"}\n```\nLet me know if you need anything else."
	got, err := ExtractObject(raw, "score", "analysis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := Number(got["score"]); !ok || n != 6 {
		t.Errorf("score = %v, want 6", got["score"])
	}
}

func TestExtractObject_RepairsEmbeddedNewlines(t *testing.T) {
	raw := "{\"analysis\": \"first point\nsecond point\", \"score\": 4}"
	got, err := ExtractObject(raw, "score", "analysis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, _ := Text(got["analysis"]); s != "first point\nsecond point" {
		t.Errorf("analysis = %q, want embedded newline preserved after repair", s)
	}
}

func TestExtractObject_DropsUnexpectedKeys(t *testing.T) {
	got, err := ExtractObject(`{"score": 5, "confidence": 0.9}`, "score")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got["confidence"]; ok {
		t.Error("unexpected key survived filtering")
	}
	if len(got) != 1 {
		t.Errorf("len(result) = %d, want 1", len(got))
	}
}

func TestExtractObject_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no braces", "just some prose with no object"},
		{"out of order braces", "} backwards {"},
		{"unparseable body", "{score: not json at all"},
	}
	for _, tt := range tests {
		got, err := ExtractObject(tt.raw, "score")
		if err == nil {
			t.Errorf("%s: expected diagnostic error", tt.name)
		}
		if len(got) != 0 {
			t.Errorf("%s: result = %v, want empty map", tt.name, got)
		}
		if got == nil {
			t.Errorf("%s: result is nil, want empty map", tt.name)
		}
	}
}

func TestExtractObject_StringScore(t *testing.T) {
	got, err := ExtractObject(`{"score": "8.5"}`, "score")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := Number(got["score"]); !ok || n != 8.5 {
		t.Errorf("Number(%v) = %v, want 8.5", got["score"], n)
	}
}
