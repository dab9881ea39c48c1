package regress

import (
	"errors"
	"regexp"
)

// DefaultNameKey is the command-line key whose value names the test sequence.
const DefaultNameKey = "TEST_NAME"

// Extractor pulls the test sequence name out of a record.
//
// The pattern is KEY=<name> followed by a single space; <name> is captured
// and may contain letters, digits and underscores. A token at the very end of
// the record without a trailing space does not match.
type Extractor struct {
	key string
	re  *regexp.Regexp
}

// NewExtractor builds an Extractor for the given key.
func NewExtractor(key string) (*Extractor, error) {
	if key == "" {
		return nil, errors.New("empty name key")
	}
	re, err := regexp.Compile(regexp.QuoteMeta(key) + `=([a-zA-Z_0-9]+) `)
	if err != nil {
		return nil, err
	}
	return &Extractor{key: key, re: re}, nil
}

// DefaultExtractor returns an Extractor for TEST_NAME.
func DefaultExtractor() *Extractor {
	e, _ := NewExtractor(DefaultNameKey)
	return e
}

// Key returns the key the extractor matches.
func (e *Extractor) Key() string { return e.key }

// Extract returns the first name found in text, or ErrNameNotFound.
// Later matches are assumed to repeat the first and are not checked here;
// use ExtractAll to compare them.
func (e *Extractor) Extract(text string) (string, error) {
	m := e.re.FindStringSubmatch(text)
	if m == nil {
		return "", ErrNameNotFound
	}
	return m[1], nil
}

// ExtractAll returns every captured name in order of appearance.
func (e *Extractor) ExtractAll(text string) []string {
	matches := e.re.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
