package parse

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fencedBlock = regexp.MustCompile("(?si)```(?:json)?\\s*(.*?)\\s*```")
	leadingEnum = regexp.MustCompile(`^\s*\(?\d+\)?[\).\s:\-]+\s*`)
	edgeQuotes  = regexp.MustCompile("^[`\"]+|[`\"]+$")
)

// questionExtractor is one fallible extraction strategy. Each strategy is
// independent so it can be tested in isolation; ExtractQuestion runs them
// in order and keeps the first success.
type questionExtractor func(text string) (string, bool)

var questionExtractors = []questionExtractor{
	fromJSONObject,
	fromQuotedString,
	fromLongestLine,
}

// ExtractQuestion recovers a single question string from raw model
// output. A fenced code block, when present, narrows the text first; the
// extractor chain then tries a JSON object with a "question" key, the
// longest quoted string of at least 10 characters, and finally the
// longest line over 20 characters. Returns "" when every strategy fails;
// the caller substitutes its fixed fallback question.
func ExtractQuestion(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	for _, extract := range questionExtractors {
		if q, ok := extract(text); ok {
			return sanitizeQuestion(q)
		}
	}
	return ""
}

func fromJSONObject(text string) (string, bool) {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last == -1 || last <= first {
		return "", false
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(text[first:last+1]), &parsed); err != nil {
		return "", false
	}
	q, ok := parsed["question"].(string)
	if !ok || strings.TrimSpace(q) == "" {
		return "", false
	}
	return q, true
}

func fromQuotedString(text string) (string, bool) {
	var longest string
	inQuote := false
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '"' {
			continue
		}
		if !inQuote {
			inQuote = true
			start = i + 1
			continue
		}
		inQuote = false
		if inner := text[start:i]; len(inner) >= 10 && len(inner) > len(longest) {
			longest = inner
		}
	}
	if longest == "" {
		return "", false
	}
	return longest, true
}

func fromLongestLine(text string) (string, bool) {
	var longest string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 20 && len(line) > len(longest) {
			longest = line
		}
	}
	if longest == "" {
		return "", false
	}
	return longest, true
}

// sanitizeQuestion strips wrapping quotes and backticks, leading
// enumeration markers like "1) ", and trailing punctuation left over
// from truncated JSON.
func sanitizeQuestion(q string) string {
	s := strings.TrimSpace(q)
	s = edgeQuotes.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = leadingEnum.ReplaceAllString(s, "")
	s = strings.TrimRight(s, ",;}]")
	return strings.TrimSpace(s)
}
