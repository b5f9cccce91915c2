// Package retrieval supplies reference material for question generation
// and answer evaluation. Real retrieval backends (vector stores, search
// indexes) live outside this repository; the interview core only needs
// opaque passages of text keyed by a query.
package retrieval

import (
	"context"
	"os"
	"sort"
	"strings"
)

// Retriever returns up to k reference passages for a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]string, error)
}

// None is a Retriever that returns no reference material.
type None struct{}

func (None) Retrieve(context.Context, string, int) ([]string, error) {
	return nil, nil
}

// Static serves passages from a fixed in-memory corpus, ranked by how
// many query terms each passage contains. Backs the --refs flag and
// tests; anything heavier belongs in an external service.
type Static struct {
	Passages []string
}

func (s Static) Retrieve(_ context.Context, query string, k int) ([]string, error) {
	if k <= 0 || len(s.Passages) == 0 {
		return nil, nil
	}

	terms := strings.Fields(strings.ToLower(query))
	type scored struct {
		passage string
		hits    int
		pos     int
	}
	ranked := make([]scored, 0, len(s.Passages))
	for i, p := range s.Passages {
		lower := strings.ToLower(p)
		hits := 0
		for _, t := range terms {
			if strings.Contains(lower, t) {
				hits++
			}
		}
		ranked = append(ranked, scored{passage: p, hits: hits, pos: i})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].hits != ranked[j].hits {
			return ranked[i].hits > ranked[j].hits
		}
		return ranked[i].pos < ranked[j].pos
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]string, 0, k)
	for _, r := range ranked[:k] {
		out = append(out, r.passage)
	}
	return out, nil
}

// LoadPassages reads a text file and splits it into passages on blank
// lines, for use with Static.
func LoadPassages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	blocks := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n\n")
	var passages []string
	for _, b := range blocks {
		if b = strings.TrimSpace(b); b != "" {
			passages = append(passages, b)
		}
	}
	return passages, nil
}
