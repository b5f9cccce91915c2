package exam

import (
	"fmt"
	"strings"
	"testing"
)

func TestMemory_EvictsOldest(t *testing.T) {
	m := NewMemory(3)
	for i := 1; i <= 5; i++ {
		m.Record("interviewer", fmt.Sprintf("entry %d", i))
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	transcript := m.Transcript()
	if strings.Contains(transcript, "entry 1") || strings.Contains(transcript, "entry 2") {
		t.Errorf("evicted entries still present:\n%s", transcript)
	}
	if !strings.Contains(transcript, "entry 5") {
		t.Errorf("newest entry missing:\n%s", transcript)
	}
}

func TestMemory_TranscriptFormat(t *testing.T) {
	m := NewMemory(6)
	m.Record("interviewer", "What is a variable?")
	m.Record("candidate", "A named storage location.")

	want := "interviewer: What is a variable?\ncandidate: A named storage location."
	if got := m.Transcript(); got != want {
		t.Errorf("Transcript() = %q, want %q", got, want)
	}
}

func TestMemory_EmptyTranscript(t *testing.T) {
	m := NewMemory(6)
	if got := m.Transcript(); got != "" {
		t.Errorf("Transcript() on empty memory = %q, want empty", got)
	}
}

func TestMemory_ZeroCapacityKeepsNothing(t *testing.T) {
	m := NewMemory(0)
	m.Record("interviewer", "dropped")
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}
