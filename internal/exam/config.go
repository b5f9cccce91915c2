package exam

// Config holds the fixed per-session parameters. Supplied at session start
// and never mutated afterwards.
type Config struct {
	// HighThreshold is the score at or above which difficulty escalates.
	HighThreshold float64

	// LowThreshold is the score below which difficulty de-escalates.
	LowThreshold float64

	// MaxAttemptsPerTier ends the session once this many non-escalating
	// turns accumulate at the current tier.
	MaxAttemptsPerTier int

	// MaxTotalQuestions is the hard cap on questions asked.
	MaxTotalQuestions int

	// MaxEscalations is the budget of accepted tier escalations.
	MaxEscalations int

	// MemoryCapacity is the number of recent transcript entries kept as
	// context for generation and evaluation calls.
	MemoryCapacity int

	// DefaultScore is imputed when the evaluator's response cannot be
	// parsed. Keeping the session progressing is a deliberate policy
	// choice; set this lower to make evaluator outages visible.
	DefaultScore float64
}

// DefaultConfig returns the standard session parameters.
func DefaultConfig() Config {
	return Config{
		HighThreshold:      7.0,
		LowThreshold:       4.0,
		MaxAttemptsPerTier: 2,
		MaxTotalQuestions:  8,
		MaxEscalations:     2,
		MemoryCapacity:     6,
		DefaultScore:       5.0,
	}
}

// Policy returns the decision policy derived from the thresholds.
func (c Config) Policy() Policy {
	return Policy{High: c.HighThreshold, Low: c.LowThreshold}
}
