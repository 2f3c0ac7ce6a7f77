package a2ui

import (
	"encoding/json"
	"strings"
)

// Extract recovers a well-formed document from raw model output. Models are
// asked for bare JSON but routinely wrap it in markdown fences or surround
// it with commentary, so recovery is layered:
//
//  1. trim surrounding whitespace
//  2. strip a leading code fence line (language tag optional) and a
//     trailing fence line if present
//  3. take the span from the first "{" to the last "}"; tolerates
//     preamble/postamble chatter; with multiple JSON fragments this may
//     over- or under-capture, an accepted heuristic
//  4. strict-parse the candidate
//
// On parse success the object is returned verbatim, with no schema
// coercion. On any failure the original raw text degrades to a plain-text
// document. Extract never fails: one misbehaving model response must not
// take down the request.
func Extract(raw string) Document {
	candidate := stripFences(strings.TrimSpace(raw))
	candidate = braceSpan(candidate)

	var doc Document
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil || doc == nil {
		return TextDocument(raw)
	}
	return doc
}

// stripFences removes a leading ```-fence line (``` or ```json etc.) and,
// if present, a trailing fence line. Text without a leading fence is
// returned unchanged.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	lines = lines[1:]
	if last := strings.TrimSpace(lines[len(lines)-1]); strings.HasPrefix(last, "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// braceSpan returns the substring from the first "{" through the last "}".
// If no such span exists the input is returned unchanged (and the strict
// parse will fail, triggering the plain-text fallback).
func braceSpan(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return s
	}
	return s[start : end+1]
}
