package language

import (
	"regexp"
	"strconv"
	"strings"

	"tasknotes-nlp/pkg/textnorm"
)

// Lexicon maps the words captured by recurrence patterns to rule values.
// Keys are folded (lower case, no accents).
type Lexicon struct {
	weekdays map[string]string
	ordinals map[string]int
	units    map[string]string
	counts   map[string]int
	listSep  *regexp.Regexp
}

// Weekday returns the BYDAY code ("MO") for a weekday word, singular or plural.
func (l *Lexicon) Weekday(word string) (string, bool) {
	v, ok := l.weekdays[textnorm.Fold(word)]
	return v, ok
}

// Ordinal returns the BYSETPOS value for an ordinal word; "last" is -1.
func (l *Lexicon) Ordinal(word string) (int, bool) {
	v, ok := l.ordinals[textnorm.Fold(word)]
	return v, ok
}

// Frequency returns the FREQ value for a unit word ("weeks" is WEEKLY).
func (l *Lexicon) Frequency(unit string) (string, bool) {
	v, ok := l.units[textnorm.Fold(unit)]
	return v, ok
}

// Count reads digits or a number word.
func (l *Lexicon) Count(word string) (int, bool) {
	if n, err := strconv.Atoi(word); err == nil {
		return n, true
	}
	v, ok := l.counts[textnorm.Fold(word)]
	return v, ok
}

// SplitList splits "monday, wednesday and friday" into its items.
func (l *Lexicon) SplitList(s string) []string {
	var out []string
	for _, item := range l.listSep.Split(strings.TrimSpace(s), -1) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
