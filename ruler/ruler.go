// Package ruler provides a lightweight rule-based entity annotator.
//
// It is a thin configuration and rule loader: the language comes from a
// small TOML configuration file, patterns come from JSON or JSON Lines
// files, and matching is plain case-insensitive phrase lookup. It consumes
// extracted cell text handed to it by callers and has no coupling to the
// extraction pipeline itself.
package ruler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Ruler-related errors.
var (
	ErrConfigNotFound   = errors.New("ruler: configuration file not found")
	ErrInvalidConfig    = errors.New("ruler: invalid configuration")
	ErrPatternsNotFound = errors.New("ruler: pattern file not found")
	ErrInvalidPatterns  = errors.New("ruler: invalid pattern file")
)

// Pattern pairs a label with the phrase it recognizes.
type Pattern struct {
	Label  string
	Phrase string
}

// Entity is a labeled match found in a text.
type Entity struct {
	Text  string
	Label string
	Start int // byte offset of the match
	End   int
}

// Ruler matches registered patterns against text.
type Ruler struct {
	lang     string
	patterns []Pattern
}

// New creates a Ruler for the given language code. The code is lowercased
// and stripped of stray surrounding quotes, since configuration files in the
// wild contain entries like 'pt'.
func New(lang string) (*Ruler, error) {
	normalized, err := normalizeLanguage(lang)
	if err != nil {
		return nil, err
	}
	return &Ruler{lang: normalized}, nil
}

// configFile mirrors the layout of the ruler configuration file. Only the
// [nlp] section is required.
type configFile struct {
	NLP struct {
		Lang string `toml:"lang"`
	} `toml:"nlp"`
}

// FromConfig instantiates a Ruler from a configuration file. The lang option
// of the [nlp] section dictates the language; it defaults to "en" when the
// section omits it.
func FromConfig(path string) (*Ruler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	var cfg configFile
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	lang := cfg.NLP.Lang
	if strings.TrimSpace(lang) == "" {
		lang = "en"
	}
	return New(lang)
}

// normalizeLanguage returns lang without surrounding quotes and in lowercase.
func normalizeLanguage(lang string) (string, error) {
	cleaned := strings.Trim(strings.TrimSpace(lang), `"'`)
	if cleaned == "" {
		return "", fmt.Errorf("%w: language entry cannot be empty", ErrInvalidConfig)
	}
	return strings.ToLower(cleaned), nil
}

// Language returns the normalized language code.
func (r *Ruler) Language() string {
	return r.lang
}

// AddPatterns registers patterns in memory. Patterns with an empty phrase
// are ignored.
func (r *Ruler) AddPatterns(patterns ...Pattern) {
	for _, p := range patterns {
		if p.Phrase == "" {
			continue
		}
		r.patterns = append(r.patterns, p)
	}
}

// LoadPatterns reads patterns from a JSON or JSON Lines file and registers
// them. A ".jsonl" file holds one JSON object per line; any other file holds
// either a single object or an array of objects.
func (r *Ruler) LoadPatterns(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrPatternsNotFound, path)
		}
		return err
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil
	}

	var records []patternJSON
	if strings.ToLower(filepath.Ext(path)) == ".jsonl" {
		records, err = decodeJSONLines(path, text)
	} else {
		records, err = decodeJSON(path, text)
	}
	if err != nil {
		return err
	}

	for _, rec := range records {
		phrase, err := rec.phrase()
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidPatterns, path, err)
		}
		r.AddPatterns(Pattern{Label: rec.Label, Phrase: phrase})
	}
	return nil
}

// Labels returns the distinct labels of the registered patterns, in
// registration order.
func (r *Ruler) Labels() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, p := range r.patterns {
		if !seen[p.Label] {
			seen[p.Label] = true
			labels = append(labels, p.Label)
		}
	}
	return labels
}

// Annotate returns the non-overlapping entities found in text, left to
// right. Matching is case-insensitive; when matches overlap, the earlier
// start wins and ties go to the longer match.
func (r *Ruler) Annotate(text string) []Entity {
	lowered := strings.ToLower(text)

	var matches []Entity
	for _, p := range r.patterns {
		phrase := strings.ToLower(p.Phrase)
		from := 0
		for {
			idx := strings.Index(lowered[from:], phrase)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(phrase)
			matches = append(matches, Entity{
				Text:  text[start:end],
				Label: p.Label,
				Start: start,
				End:   end,
			})
			from = end
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].End > matches[j].End
	})

	var entities []Entity
	lastEnd := 0
	for _, m := range matches {
		if m.Start >= lastEnd {
			entities = append(entities, m)
			lastEnd = m.End
		}
	}
	return entities
}
