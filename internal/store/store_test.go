package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngxhuy/viva/internal/exam"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "viva.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSummary(sessionID, candidateID string, ts time.Time) *exam.Summary {
	return &exam.Summary{
		SessionID:   sessionID,
		CandidateID: candidateID,
		Profile:     "prior score: 6.0",
		Level:       "low",
		Topic:       "networking",
		FinalScore:  5.5,
		Timestamp:   ts,
		History: []exam.SummaryEntry{
			{Number: 1, Difficulty: "easy", Question: "What is DNS?", Answer: "name resolution", Score: 8, Analysis: "correct"},
			{Number: 2, Difficulty: "medium", Question: "Explain a TCP handshake.", Answer: "not sure", Score: 3, Analysis: "incomplete"},
		},
	}
}

func TestSummaryRepository_SaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := NewSummaryRepository(s)
	ctx := context.Background()

	want := sampleSummary("s-1", "alice", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, want.CandidateID, got.CandidateID)
	assert.Equal(t, want.Profile, got.Profile)
	assert.Equal(t, want.Level, got.Level)
	assert.Equal(t, want.Topic, got.Topic)
	assert.Equal(t, want.FinalScore, got.FinalScore)
	require.Len(t, got.History, 2)
	assert.Equal(t, want.History[0], got.History[0])
	assert.Equal(t, want.History[1], got.History[1])
}

func TestSummaryRepository_GetMissing(t *testing.T) {
	s := openTestStore(t)
	repo := NewSummaryRepository(s)

	got, err := repo.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSummaryRepository_List(t *testing.T) {
	s := openTestStore(t)
	repo := NewSummaryRepository(s)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, sampleSummary("s-1", "alice", base)))
	require.NoError(t, repo.Save(ctx, sampleSummary("s-2", "bob", base.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, sampleSummary("s-3", "alice", base.Add(2*time.Hour))))

	rows, err := repo.List(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "s-3", rows[0].SessionID, "newest first")
	assert.Equal(t, 2, rows[0].QuestionCount)

	rows, err = repo.List(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "alice", r.CandidateID)
	}

	rows, err = repo.List(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestProfileRepository_PutLookupList(t *testing.T) {
	s := openTestStore(t)
	repo := NewProfileRepository(s)
	ctx := context.Background()

	_, err := repo.Lookup(ctx, "alice")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	require.NoError(t, repo.Put(ctx, "alice", "second-year student"))
	got, err := repo.Lookup(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "second-year student", got)

	// Put is an upsert.
	require.NoError(t, repo.Put(ctx, "alice", "prior score: 7.5"))
	got, err = repo.Lookup(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "prior score: 7.5", got)

	require.NoError(t, repo.Put(ctx, "bob", "new hire"))
	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, ids)
}

func TestLLMEventRepository_Record(t *testing.T) {
	s := openTestStore(t)
	repo := NewLLMEventRepository(s)
	ctx := context.Background()

	err := repo.RecordLLMEvent(ctx, LLMEvent{
		Provider:     "gemini",
		Model:        "mock",
		Purpose:      "question-gen",
		LatencyMs:    42,
		Success:      true,
		InputTokens:  120,
		OutputTokens: 30,
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, s.GetContext(ctx, &count, `SELECT COUNT(*) FROM llm_events`))
	assert.Equal(t, 1, count)
}
