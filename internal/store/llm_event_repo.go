package store

import (
	"context"
	"time"
)

// LLMEvent records a single model request for diagnostics and cost review.
type LLMEvent struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	ErrorMessage string
}

// LLMEventRepo is the interface the llm logging decorator writes through.
type LLMEventRepo interface {
	RecordLLMEvent(ctx context.Context, ev LLMEvent) error
}

// LLMEventRepository persists model request events.
type LLMEventRepository struct {
	db *Store
}

// NewLLMEventRepository creates a new event repository.
func NewLLMEventRepository(db *Store) *LLMEventRepository {
	return &LLMEventRepository{db: db}
}

// LLMEventRow is a persisted model request event.
type LLMEventRow struct {
	ID           int64     `db:"id"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	Purpose      string    `db:"purpose"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	ErrorMessage string    `db:"error_message"`
	CreatedAt    time.Time `db:"created_at"`
}

// List returns the most recent events, newest first.
func (r *LLMEventRepository) List(ctx context.Context, limit int) ([]LLMEventRow, error) {
	var rows []LLMEventRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, provider, model, purpose, latency_ms, success, input_tokens, output_tokens, error_message, created_at
		FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RecordLLMEvent appends one model request event.
func (r *LLMEventRepository) RecordLLMEvent(ctx context.Context, ev LLMEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events (provider, model, purpose, latency_ms, success, input_tokens, output_tokens, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Provider, ev.Model, ev.Purpose, ev.LatencyMs, ev.Success,
		ev.InputTokens, ev.OutputTokens, ev.ErrorMessage, time.Now().UTC(),
	)
	return err
}
