package exam

import "strings"

// MemoryEntry is one transcript line.
type MemoryEntry struct {
	Role    string
	Content string
}

// Memory is a bounded rolling log of recent conversation turns. Insertion
// evicts the oldest entry once capacity is exceeded. It carries the
// context passed to generation and evaluation calls; nothing persists
// beyond the session.
type Memory struct {
	capacity int
	entries  []MemoryEntry
}

// NewMemory creates a Memory holding at most capacity entries. A zero or
// negative capacity keeps nothing.
func NewMemory(capacity int) *Memory {
	return &Memory{capacity: capacity}
}

// Record appends an entry, evicting the oldest when over capacity.
func (m *Memory) Record(role, content string) {
	if m.capacity <= 0 {
		return
	}
	m.entries = append(m.entries, MemoryEntry{Role: role, Content: content})
	if len(m.entries) > m.capacity {
		m.entries = m.entries[len(m.entries)-m.capacity:]
	}
}

// Transcript renders the entries as "role: content" lines in insertion
// order. Empty memory renders as the empty string.
func (m *Memory) Transcript() string {
	if len(m.entries) == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Role)
		b.WriteString(": ")
		b.WriteString(e.Content)
	}
	return b.String()
}

// Len returns the current number of entries.
func (m *Memory) Len() int {
	return len(m.entries)
}
