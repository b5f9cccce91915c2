package exam

import "testing"

func TestClassifyLevel_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Level
	}{
		{0, LevelVeryLow},
		{4.999, LevelVeryLow},
		{5.0, LevelLow},
		{6.5, LevelLow},
		{6.50001, LevelMedium},
		{8.0, LevelMedium},
		{8.5, LevelHigh},
		{9.0, LevelHigh},
		{9.5, LevelExcellent},
		{10.0, LevelExcellent},
	}
	for _, tt := range tests {
		if got := ClassifyLevel(tt.score); got != tt.want {
			t.Errorf("ClassifyLevel(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestInitialDifficulty(t *testing.T) {
	tests := []struct {
		level Level
		want  Difficulty
	}{
		{LevelVeryLow, VeryEasy},
		{LevelLow, Easy},
		{LevelMedium, Medium},
		{LevelHigh, Hard},
		{LevelExcellent, VeryHard},
	}
	for _, tt := range tests {
		if got := tt.level.InitialDifficulty(); got != tt.want {
			t.Errorf("InitialDifficulty(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel_RoundTrip(t *testing.T) {
	for l := LevelVeryLow; l <= LevelExcellent; l++ {
		if got := ParseLevel(l.String()); got != l {
			t.Errorf("ParseLevel(%q) = %v, want %v", l.String(), got, l)
		}
	}
}

func TestParseLevel_UnknownDefaultsToLow(t *testing.T) {
	if got := ParseLevel("galactic"); got != LevelLow {
		t.Errorf("ParseLevel(unknown) = %v, want LevelLow", got)
	}
	if got := ParseLevel(""); got != LevelLow {
		t.Errorf("ParseLevel(empty) = %v, want LevelLow", got)
	}
}
