package exam

// Attempt is one completed question turn. Created exactly once per turn,
// appended to the session history, never mutated.
type Attempt struct {
	Index      int
	Question   string
	Answer     string
	Score      float64
	Analysis   string
	Difficulty Difficulty
}

// State is the mutable session aggregate. One instance per session,
// mutated exclusively through ApplyTurn and Finalize.
type State struct {
	CandidateID string
	Profile     string
	Level       Level
	Topic       string

	Difficulty     Difficulty
	AttemptsAtTier int
	Asked          int
	Escalations    int

	History []Attempt

	Finished   bool
	FinalScore float64

	config Config
}

// NewState creates the session state at the level's initial difficulty.
func NewState(candidateID, profile string, level Level, topic string, cfg Config) *State {
	return &State{
		CandidateID: candidateID,
		Profile:     profile,
		Level:       level,
		Topic:       topic,
		Difficulty:  level.InitialDifficulty(),
		config:      cfg,
	}
}

// Config returns the session configuration.
func (s *State) Config() Config {
	return s.config
}

// ApplyTurn records a completed turn and advances the state machine:
// append the attempt, decide the next action from the score, update the
// difficulty and attempt counters, then evaluate the termination guard.
// Returns the decided action. Calling ApplyTurn on a finished state is a
// no-op.
func (s *State) ApplyTurn(question, answer string, score float64, analysis string) Action {
	if s.Finished {
		return ActionHold
	}

	s.History = append(s.History, Attempt{
		Index:      len(s.History) + 1,
		Question:   question,
		Answer:     answer,
		Score:      score,
		Analysis:   analysis,
		Difficulty: s.Difficulty,
	})
	s.Asked++

	action := s.config.Policy().Decide(score)

	switch action {
	case ActionEscalate:
		s.Escalations++
		if s.Escalations <= s.config.MaxEscalations {
			s.Difficulty = s.Difficulty.Advance(MoveUp)
			s.AttemptsAtTier = 0
		} else {
			// Escalation budget exhausted: terminal, not a failure.
			s.Finished = true
		}
	case ActionHold:
		s.AttemptsAtTier++
	case ActionDeescalate:
		s.Difficulty = s.Difficulty.Advance(MoveDown)
		s.AttemptsAtTier++
	}

	if s.AttemptsAtTier >= s.config.MaxAttemptsPerTier ||
		s.Asked >= s.config.MaxTotalQuestions ||
		s.Finished {
		s.Finalize()
	}

	return action
}

// Finalize marks the session finished and computes the final score as the
// arithmetic mean of all recorded attempt scores (0 with no history).
// Used both by the termination guard and for early interruption.
// Idempotent.
func (s *State) Finalize() {
	s.Finished = true
	if len(s.History) == 0 {
		s.FinalScore = 0
		return
	}
	var sum float64
	for _, a := range s.History {
		sum += a.Score
	}
	s.FinalScore = sum / float64(len(s.History))
}
