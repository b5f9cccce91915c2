// Package parse extracts structured data from free-form generative model
// output. Model responses routinely wrap JSON in prose or markdown fences,
// or embed literal newlines inside string values; this package repairs
// those failure modes before parsing. Parse failures are recoverable by
// contract: callers get an empty result plus a diagnostic error and
// substitute their documented defaults.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// fenceMarker matches a markdown code fence opener with or without a
	// language tag, and the bare closing fence.
	fenceMarker = regexp.MustCompile("```[a-zA-Z]*")

	// quotedRun matches a double-quoted string literal, newlines included.
	quotedRun = regexp.MustCompile(`(?s)".*?"`)
)

// ExtractObject pulls a single JSON object out of raw model output and
// returns it filtered to the expected keys. Unexpected keys are dropped.
// On any failure the returned map is empty and the error carries the
// diagnostic; the error is informational, never fatal to a session.
func ExtractObject(raw string, keys ...string) (map[string]any, error) {
	empty := map[string]any{}

	text := strings.TrimSpace(raw)
	if text == "" {
		return empty, errors.New("empty response")
	}

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last == -1 || last <= first {
		return empty, errors.New("no JSON object found in response")
	}
	candidate := text[first : last+1]

	candidate = fenceMarker.ReplaceAllString(candidate, "")
	candidate = escapeNewlinesInStrings(candidate)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return empty, fmt.Errorf("JSON parse after cleaning: %w", err)
	}

	if len(keys) == 0 {
		return parsed, nil
	}
	filtered := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := parsed[k]; ok {
			filtered[k] = v
		}
	}
	return filtered, nil
}

// escapeNewlinesInStrings replaces raw newline characters inside quoted
// string literals with the escaped sequence. Generators frequently emit
// literal line breaks inside string values, which is invalid JSON.
func escapeNewlinesInStrings(s string) string {
	return quotedRun.ReplaceAllStringFunc(s, func(lit string) string {
		lit = strings.ReplaceAll(lit, "\r\n", "\\n")
		return strings.ReplaceAll(lit, "\n", "\\n")
	})
}

// Number coerces a parsed JSON value to float64. JSON numbers decode as
// float64; numeric strings are accepted too since models sometimes quote
// scores.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(n), "%g", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}

// Text coerces a parsed JSON value to a string.
func Text(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
