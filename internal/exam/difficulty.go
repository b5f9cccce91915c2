package exam

// Difficulty is the ordered question difficulty scale.
type Difficulty int

const (
	VeryEasy Difficulty = iota
	Easy
	Medium
	Hard
	VeryHard
)

// Move is a requested direction on the difficulty ladder.
type Move int

const (
	MoveHold Move = iota
	MoveUp
	MoveDown
)

// Advance returns the adjacent difficulty in the requested direction.
// The ladder clamps at both ends: moving up from VeryHard or down from
// VeryEasy returns the current difficulty unchanged.
func (d Difficulty) Advance(m Move) Difficulty {
	switch m {
	case MoveUp:
		if d < VeryHard {
			return d + 1
		}
	case MoveDown:
		if d > VeryEasy {
			return d - 1
		}
	}
	return d
}

func (d Difficulty) String() string {
	switch d {
	case VeryEasy:
		return "very_easy"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case VeryHard:
		return "very_hard"
	default:
		return "unknown"
	}
}

// Describe returns the prompt-facing description of the difficulty,
// used when asking the generator for a question at this tier.
func (d Difficulty) Describe() string {
	switch d {
	case VeryEasy:
		return "very basic, simple definitions"
	case Easy:
		return "basic, with practical examples"
	case Medium:
		return "intermediate, real-world application"
	case Hard:
		return "advanced, deep analysis"
	case VeryHard:
		return "very hard, synthesis across topics"
	default:
		return "intermediate"
	}
}
