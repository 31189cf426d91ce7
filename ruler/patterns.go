package ruler

import (
	"encoding/json"
	"fmt"
	"strings"
)

// patternJSON is the on-disk form of a pattern. The pattern field is either
// a plain phrase string or a sequence of token objects whose "lower", "orth"
// or "text" values are joined with spaces.
type patternJSON struct {
	Label   string          `json:"label"`
	Pattern json.RawMessage `json:"pattern"`
}

// phrase resolves the pattern field to a single match phrase.
func (p patternJSON) phrase() (string, error) {
	if len(p.Pattern) == 0 {
		return "", fmt.Errorf("pattern %q has no pattern field", p.Label)
	}

	var s string
	if err := json.Unmarshal(p.Pattern, &s); err == nil {
		return s, nil
	}

	var tokens []map[string]any
	if err := json.Unmarshal(p.Pattern, &tokens); err != nil {
		return "", fmt.Errorf("pattern %q must be a string or a list of token objects", p.Label)
	}

	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		part, ok := tokenText(tok)
		if !ok {
			return "", fmt.Errorf("pattern %q has a token without a usable text key", p.Label)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " "), nil
}

// tokenText picks the matchable text out of one token object.
func tokenText(tok map[string]any) (string, bool) {
	for _, key := range []string{"lower", "orth", "text"} {
		if v, ok := tok[key]; ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// decodeJSONLines parses one JSON object per non-blank line.
func decodeJSONLines(path, text string) ([]patternJSON, error) {
	var records []patternJSON
	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		var rec patternJSON
		if err := json.Unmarshal([]byte(trimmed), &rec); err != nil {
			return nil, fmt.Errorf("%w: %s: invalid JSON on line %d", ErrInvalidPatterns, path, i+1)
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeJSON parses either a single object or an array of objects.
func decodeJSON(path, text string) ([]patternJSON, error) {
	data := []byte(text)

	var records []patternJSON
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var single patternJSON
	if err := json.Unmarshal(data, &single); err == nil {
		return []patternJSON{single}, nil
	}
	return nil, fmt.Errorf("%w: %s: file must contain an object or a list of objects", ErrInvalidPatterns, path)
}
