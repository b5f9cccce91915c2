package exam

import "time"

// SummaryEntry is one question turn in the exported summary.
type SummaryEntry struct {
	Number     int     `json:"question_number"`
	Difficulty string  `json:"difficulty"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Score      float64 `json:"score"`
	Analysis   string  `json:"analysis"`
}

// Summary is the sole exported artifact of a session: identity, classified
// level, final score, and the full ordered question history.
type Summary struct {
	SessionID   string         `json:"session_id"`
	CandidateID string         `json:"candidate_id"`
	Profile     string         `json:"profile"`
	Level       string         `json:"classified_level"`
	Topic       string         `json:"topic"`
	FinalScore  float64        `json:"final_score"`
	Timestamp   time.Time      `json:"timestamp"`
	History     []SummaryEntry `json:"question_history"`
}

// BuildSummary renders a finished session state into its summary.
func BuildSummary(sessionID string, s *State, now time.Time) *Summary {
	sum := &Summary{
		SessionID:   sessionID,
		CandidateID: s.CandidateID,
		Profile:     s.Profile,
		Level:       s.Level.String(),
		Topic:       s.Topic,
		FinalScore:  s.FinalScore,
		Timestamp:   now,
		History:     make([]SummaryEntry, 0, len(s.History)),
	}
	for _, a := range s.History {
		sum.History = append(sum.History, SummaryEntry{
			Number:     a.Index,
			Difficulty: a.Difficulty.String(),
			Question:   a.Question,
			Answer:     a.Answer,
			Score:      a.Score,
			Analysis:   a.Analysis,
		})
	}
	return sum
}
