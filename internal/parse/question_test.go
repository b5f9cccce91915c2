package parse

import "testing"

func TestExtractQuestion_FencedJSON(t *testing.T) {
	raw := "```json\n{\"question\": \"What is a variable?\"}\n```"
	if got := ExtractQuestion(raw); got != "What is a variable?" {
		t.Errorf("ExtractQuestion = %q, want %q", got, "What is a variable?")
	}
}

func TestExtractQuestion_PlainJSON(t *testing.T) {
	raw := `{"question": "Explain the difference between a slice and an array."}`
	want := "Explain the difference between a slice and an array."
	if got := ExtractQuestion(raw); got != want {
		t.Errorf("ExtractQuestion = %q, want %q", got, want)
	}
}

func TestExtractQuestion_QuotedStringFallback(t *testing.T) {
	raw := `Here is your question: "How does garbage collection work?" Good luck!`
	want := "How does garbage collection work?"
	if got := ExtractQuestion(raw); got != want {
		t.Errorf("ExtractQuestion = %q, want %q", got, want)
	}
}

func TestExtractQuestion_LongestLineFallback(t *testing.T) {
	raw := "ok\nDescribe how interfaces enable polymorphism in this language\nbye"
	want := "Describe how interfaces enable polymorphism in this language"
	if got := ExtractQuestion(raw); got != want {
		t.Errorf("ExtractQuestion = %q, want %q", got, want)
	}
}

func TestExtractQuestion_NothingUsable(t *testing.T) {
	// No braces, no quoted string of 10+ chars, no line over 20 chars.
	raw := "nope\n\"short\"\ntiny line"
	if got := ExtractQuestion(raw); got != "" {
		t.Errorf("ExtractQuestion = %q, want empty", got)
	}
}

func TestExtractQuestion_Empty(t *testing.T) {
	if got := ExtractQuestion(""); got != "" {
		t.Errorf("ExtractQuestion(\"\") = %q, want empty", got)
	}
}

func TestSanitizeQuestion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"`What is an exception?`", "What is an exception?"},
		{`"What is an exception?"`, "What is an exception?"},
		{"1) What is an exception?", "What is an exception?"},
		{"(2). What is an exception?", "What is an exception?"},
		{"What is an exception?,;}]", "What is an exception?"},
		{"  What is an exception?  ", "What is an exception?"},
	}
	for _, tt := range tests {
		if got := sanitizeQuestion(tt.in); got != tt.want {
			t.Errorf("sanitizeQuestion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractors_Independent(t *testing.T) {
	if _, ok := fromJSONObject("no object here"); ok {
		t.Error("fromJSONObject matched text without an object")
	}
	if q, ok := fromQuotedString(`say "a long enough question" now`); !ok || q != "a long enough question" {
		t.Errorf("fromQuotedString = %q, %v", q, ok)
	}
	if _, ok := fromLongestLine("short\nlines\nonly"); ok {
		t.Error("fromLongestLine matched text with no long line")
	}
}
