package language

import (
	"regexp"

	"tasknotes-nlp/pkg/textnorm"
)

// Matcher is a case-insensitive regexp whose matches must sit on unicode word boundaries.
// Go's \b only knows ASCII, which breaks on words such as "último" or "crítica".
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles src case-insensitively.
func NewMatcher(src string) (*Matcher, error) {
	re, err := regexp.Compile(`(?i)` + src)
	if err != nil {
		return nil, err
	}
	return &Matcher{re: re}, nil
}

func mustMatcher(src string) *Matcher {
	m, err := NewMatcher(src)
	if err != nil {
		panic(err)
	}
	return m
}

// FindIndex returns the submatch index pairs of the first bounded match in s, or nil.
func (m *Matcher) FindIndex(s string) []int {
	for _, idx := range m.re.FindAllStringSubmatchIndex(s, -1) {
		if textnorm.AtWordBoundary(s, idx[0], idx[1]) {
			return idx
		}
	}
	return nil
}

// FindAllIndex returns every bounded, non-overlapping match in s.
func (m *Matcher) FindAllIndex(s string) [][]int {
	var out [][]int
	for _, idx := range m.re.FindAllStringSubmatchIndex(s, -1) {
		if textnorm.AtWordBoundary(s, idx[0], idx[1]) {
			out = append(out, idx)
		}
	}
	return out
}

// MatchString reports whether s contains a bounded match.
func (m *Matcher) MatchString(s string) bool {
	return m.FindIndex(s) != nil
}

func (m *Matcher) String() string {
	return m.re.String()
}

// Groups returns the submatch strings for idx; unmatched groups are "".
func Groups(s string, idx []int) []string {
	out := make([]string, len(idx)/2)
	for i := range out {
		if idx[2*i] >= 0 {
			out[i] = s[idx[2*i]:idx[2*i+1]]
		}
	}
	return out
}
