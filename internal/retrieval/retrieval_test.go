package retrieval

import (
	"context"
	"testing"
)

func TestStatic_RanksByTermHits(t *testing.T) {
	r := Static{Passages: []string{
		"slices grow dynamically",
		"maps associate keys with values",
		"a slice is a view over an array; slices share backing arrays",
	}}

	got, err := r.Retrieve(context.Background(), "slice array", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != "a slice is a view over an array; slices share backing arrays" {
		t.Errorf("top passage = %q", got[0])
	}
}

func TestStatic_KLargerThanCorpus(t *testing.T) {
	r := Static{Passages: []string{"only one"}}
	got, err := r.Retrieve(context.Background(), "anything", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestNone_ReturnsNothing(t *testing.T) {
	got, err := None{}.Retrieve(context.Background(), "q", 5)
	if err != nil || got != nil {
		t.Errorf("None.Retrieve = %v, %v", got, err)
	}
}
