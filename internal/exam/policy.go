package exam

// Action is the per-turn decision on how difficulty should change.
type Action int

const (
	ActionHold Action = iota
	ActionEscalate
	ActionDeescalate
)

func (a Action) String() string {
	switch a {
	case ActionEscalate:
		return "harder"
	case ActionDeescalate:
		return "easier"
	default:
		return "same"
	}
}

// Policy decides the next action from the latest answer score.
// Thresholds are configuration so the policy is testable in isolation.
type Policy struct {
	High float64
	Low  float64
}

// Decide returns escalate for scores at or above High, de-escalate for
// scores below Low, and hold in between. Pure and stateless.
func (p Policy) Decide(score float64) Action {
	switch {
	case score >= p.High:
		return ActionEscalate
	case score >= p.Low:
		return ActionHold
	default:
		return ActionDeescalate
	}
}
