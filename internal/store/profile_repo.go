package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrProfileNotFound is returned when no profile exists for a candidate.
var ErrProfileNotFound = errors.New("candidate profile not found")

// ProfileRepository stores candidate profile text keyed by candidate ID.
type ProfileRepository struct {
	db *Store
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *Store) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Put inserts or replaces a candidate profile.
func (r *ProfileRepository) Put(ctx context.Context, candidateID, profile string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (candidate_id, profile, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(candidate_id) DO UPDATE SET profile = excluded.profile, updated_at = excluded.updated_at`,
		candidateID, profile, time.Now().UTC(),
	)
	return err
}

// Lookup returns the profile text for a candidate, or ErrProfileNotFound.
func (r *ProfileRepository) Lookup(ctx context.Context, candidateID string) (string, error) {
	var profile string
	err := r.db.GetContext(ctx, &profile,
		`SELECT profile FROM profiles WHERE candidate_id = ?`, candidateID)
	if err == sql.ErrNoRows {
		return "", ErrProfileNotFound
	}
	if err != nil {
		return "", err
	}
	return profile, nil
}

// List returns all candidate IDs with stored profiles.
func (r *ProfileRepository) List(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids,
		`SELECT candidate_id FROM profiles ORDER BY candidate_id`)
	if err != nil {
		return nil, err
	}
	return ids, nil
}
