package exam

import "testing"

func TestDecide_Thresholds(t *testing.T) {
	p := Policy{High: 7.0, Low: 4.0}

	tests := []struct {
		score float64
		want  Action
	}{
		{10.0, ActionEscalate},
		{7.0, ActionEscalate},
		{6.999, ActionHold},
		{4.0, ActionHold},
		{3.999, ActionDeescalate},
		{0, ActionDeescalate},
	}
	for _, tt := range tests {
		if got := p.Decide(tt.score); got != tt.want {
			t.Errorf("Decide(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestDecide_ConfigurableThresholds(t *testing.T) {
	p := Policy{High: 9.0, Low: 6.0}

	if got := p.Decide(8.0); got != ActionHold {
		t.Errorf("Decide(8.0) with high=9 = %v, want hold", got)
	}
	if got := p.Decide(5.0); got != ActionDeescalate {
		t.Errorf("Decide(5.0) with low=6 = %v, want de-escalate", got)
	}
}
