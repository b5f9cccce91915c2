package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ngxhuy/viva/internal/exam"
)

// SessionRow is the list view of a persisted session.
type SessionRow struct {
	SessionID     string    `db:"session_id"`
	CandidateID   string    `db:"candidate_id"`
	Level         string    `db:"level"`
	Topic         string    `db:"topic"`
	FinalScore    float64   `db:"final_score"`
	QuestionCount int       `db:"question_count"`
	CreatedAt     time.Time `db:"created_at"`
}

// SummaryRepository persists session summaries.
type SummaryRepository struct {
	db *Store
}

// NewSummaryRepository creates a new summary repository.
func NewSummaryRepository(db *Store) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// Save writes a session summary and its question history atomically.
func (r *SummaryRepository) Save(ctx context.Context, sum *exam.Summary) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (session_id, candidate_id, profile, level, topic, final_score, question_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.SessionID, sum.CandidateID, sum.Profile, sum.Level, sum.Topic,
		sum.FinalScore, len(sum.History), sum.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	for _, e := range sum.History {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO attempts (session_id, question_number, difficulty, question, answer, score, analysis)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			sum.SessionID, e.Number, e.Difficulty, e.Question, e.Answer, e.Score, e.Analysis,
		)
		if err != nil {
			return fmt.Errorf("insert attempt %d: %w", e.Number, err)
		}
	}

	return tx.Commit()
}

// List returns the most recent sessions, optionally filtered by candidate.
func (r *SummaryRepository) List(ctx context.Context, candidateID string, limit int) ([]SessionRow, error) {
	var rows []SessionRow
	var err error
	if candidateID != "" {
		err = r.db.SelectContext(ctx, &rows, `
			SELECT session_id, candidate_id, level, topic, final_score, question_count, created_at
			FROM sessions WHERE candidate_id = ? ORDER BY created_at DESC LIMIT ?`,
			candidateID, limit)
	} else {
		err = r.db.SelectContext(ctx, &rows, `
			SELECT session_id, candidate_id, level, topic, final_score, question_count, created_at
			FROM sessions ORDER BY created_at DESC LIMIT ?`,
			limit)
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Get loads a full summary, history included. Returns nil when the
// session does not exist.
func (r *SummaryRepository) Get(ctx context.Context, sessionID string) (*exam.Summary, error) {
	var head struct {
		SessionRow
		Profile string `db:"profile"`
	}
	err := r.db.GetContext(ctx, &head, `
		SELECT session_id, candidate_id, profile, level, topic, final_score, question_count, created_at
		FROM sessions WHERE session_id = ?`, sessionID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []struct {
		Number     int     `db:"question_number"`
		Difficulty string  `db:"difficulty"`
		Question   string  `db:"question"`
		Answer     string  `db:"answer"`
		Score      float64 `db:"score"`
		Analysis   string  `db:"analysis"`
	}
	err = r.db.SelectContext(ctx, &entries, `
		SELECT question_number, difficulty, question, answer, score, analysis
		FROM attempts WHERE session_id = ? ORDER BY question_number`, sessionID)
	if err != nil {
		return nil, err
	}

	sum := &exam.Summary{
		SessionID:   head.SessionID,
		CandidateID: head.CandidateID,
		Profile:     head.Profile,
		Level:       head.Level,
		Topic:       head.Topic,
		FinalScore:  head.FinalScore,
		Timestamp:   head.CreatedAt,
	}
	for _, e := range entries {
		sum.History = append(sum.History, exam.SummaryEntry{
			Number:     e.Number,
			Difficulty: e.Difficulty,
			Question:   e.Question,
			Answer:     e.Answer,
			Score:      e.Score,
			Analysis:   e.Analysis,
		})
	}
	return sum, nil
}
