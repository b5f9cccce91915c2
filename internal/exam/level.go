package exam

// Level is the candidate ability level, derived once per session from a
// prior performance score and immutable afterwards.
type Level int

const (
	LevelVeryLow Level = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelExcellent
)

// ClassifyLevel maps a prior score on the 0-10 scale to an ability level.
// Band upper bounds are inclusive: 5.0 and 6.5 both classify as low.
func ClassifyLevel(score float64) Level {
	switch {
	case score < 5.0:
		return LevelVeryLow
	case score <= 6.5:
		return LevelLow
	case score <= 8.0:
		return LevelMedium
	case score <= 9.0:
		return LevelHigh
	default:
		return LevelExcellent
	}
}

// InitialDifficulty returns the starting difficulty tier for the level.
func (l Level) InitialDifficulty() Difficulty {
	switch l {
	case LevelVeryLow:
		return VeryEasy
	case LevelLow:
		return Easy
	case LevelMedium:
		return Medium
	case LevelHigh:
		return Hard
	case LevelExcellent:
		return VeryHard
	default:
		return Easy
	}
}

func (l Level) String() string {
	switch l {
	case LevelVeryLow:
		return "very_low"
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelExcellent:
		return "excellent"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name back to a Level. Unknown names default to
// LevelLow, which is the safe starting point when the classifier output
// could not be parsed.
func ParseLevel(s string) Level {
	switch s {
	case "very_low":
		return LevelVeryLow
	case "low":
		return LevelLow
	case "medium":
		return LevelMedium
	case "high":
		return LevelHigh
	case "excellent":
		return LevelExcellent
	default:
		return LevelLow
	}
}
