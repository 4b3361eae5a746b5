package planner

import (
	"errors"
	"strings"
)

// ErrNoJSON is returned when a response holds no JSON object.
var ErrNoJSON = errors.New("no JSON object in response")

// ExtractJSON pulls the JSON object out of free model text. Markdown code
// fences are stripped first; then the first '{' is matched to its closing
// brace, skipping braces inside strings. If the braces never balance the
// span from the first '{' to the last '}' is returned.
func ExtractJSON(text string) (string, error) {
	s := stripFences(strings.TrimSpace(text))

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", ErrNoJSON
	}
	if end := matchBrace(s, start); end > 0 {
		return s[start : end+1], nil
	}
	last := strings.LastIndexByte(s, '}')
	if last <= start {
		return "", ErrNoJSON
	}
	return s[start : last+1], nil
}

// stripFences returns the body of the first ``` fenced block, or s unchanged.
func stripFences(s string) string {
	open := strings.Index(s, "```")
	if open < 0 {
		return s
	}
	body := s[open+3:]
	// drop the info string ("json") up to the first newline
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	}
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

func matchBrace(s string, start int) int {
	depth := 0
	inStr, esc := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inStr {
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
