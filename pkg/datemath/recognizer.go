package datemath

import (
	"fmt"
	"regexp"
	"time"

	"tasknotes-nlp/pkg/textnorm"
)

// Recognizer finds date and time expressions in free text for one locale.
// It is immutable after construction and safe for concurrent use.
type Recognizer struct {
	locale   Locale
	location *time.Location
	rules    *ruleSet
}

// NewRecognizer creates a recognizer for locale in the given IANA timezone string.
// An empty timezone means UTC.
func NewRecognizer(locale Locale, timezone string) (*Recognizer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	rs, ok := ruleSets[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	return &Recognizer{locale: locale, location: loc, rules: rs}, nil
}

// Locale returns the recognizer's locale.
func (r *Recognizer) Locale() Locale {
	return r.locale
}

// Location returns the timezone dates are resolved in.
func (r *Recognizer) Location() *time.Location {
	return r.location
}

// Recognize returns every non-overlapping date/time expression in text, ordered by offset.
// ref is the reference "now"; relative expressions resolve forward from it.
func (r *Recognizer) Recognize(text string, ref time.Time) ([]Match, error) {
	if ref.IsZero() {
		ref = time.Now()
	}
	s := &scan{text: text, ref: ref.In(r.location), loc: r.location}

	var out []Match
	for pos := 0; pos < len(text); {
		m, ok := r.next(s, pos)
		if !ok {
			break
		}
		out = append(out, m)
		pos = m.EndIndex()
	}
	return out, nil
}

func (r *Recognizer) next(s *scan, pos int) (Match, bool) {
	start, end, p, ok := r.find(s, pos, r.rules.all)
	if !ok {
		return Match{}, false
	}

	end, p = r.attach(s, end, p)
	if p.end == nil {
		if open, rangeEnd, endComp, ok := r.extendRange(s, start, end, p); ok {
			start, end, p.end = open, rangeEnd, endComp
		}
	}

	return Match{
		Index: start,
		Text:  s.text[start:end],
		Start: p.comp,
		End:   p.end,
	}, true
}

// find returns the leftmost expression at or after pos; the longest one wins at equal offsets.
func (r *Recognizer) find(s *scan, pos int, rules []rule) (int, int, part, bool) {
	bestStart, bestEnd := -1, -1
	var best part

	for _, rl := range rules {
		for _, idx := range rl.re.FindAllStringSubmatchIndex(s.text[pos:], -1) {
			start, end := pos+idx[0], pos+idx[1]
			if bestStart >= 0 && start > bestStart {
				break
			}
			if !textnorm.AtWordBoundary(s.text, start, end) {
				continue
			}
			p, ok := rl.build(s, submatches(s.text, pos, idx), start)
			if !ok {
				continue
			}
			if bestStart < 0 || start < bestStart || end > bestEnd {
				bestStart, bestEnd, best = start, end, p
			}
			break
		}
	}

	return bestStart, bestEnd, best, bestStart >= 0
}

// findAt returns the longest expression beginning exactly at pos.
func (r *Recognizer) findAt(s *scan, pos int, rules []rule) (int, part, bool) {
	bestEnd := -1
	var best part

	for _, rl := range rules {
		idx := rl.anchored.FindStringSubmatchIndex(s.text[pos:])
		if idx == nil {
			continue
		}
		end := pos + idx[1]
		if end <= bestEnd || !textnorm.AtWordBoundary(s.text, pos, end) {
			continue
		}
		p, ok := rl.build(s, submatches(s.text, pos, idx), pos)
		if !ok {
			continue
		}
		bestEnd, best = end, p
	}

	return bestEnd, best, bestEnd >= 0
}

// attach glues a clock time onto a bare date ("Friday 15:00") or a date onto a bare time ("3pm tomorrow").
func (r *Recognizer) attach(s *scan, end int, p part) (int, part) {
	switch {
	case p.hasDate && !p.hasTime:
		at := end + r.rules.timeLead.FindStringIndex(s.text[end:])[1]
		if e, t, ok := r.findAt(s, at, r.rules.times); ok {
			p.comp.Hour, p.comp.Minute, p.comp.HourCertain = t.comp.Hour, t.comp.Minute, t.comp.HourCertain
			p.hasTime = true
			return e, p
		}
	case p.hasTime && !p.hasDate:
		at := end + r.rules.dateLead.FindStringIndex(s.text[end:])[1]
		if e, d, ok := r.findAt(s, at, r.rules.dates); ok && d.end == nil {
			d.comp.Hour, d.comp.Minute, d.comp.HourCertain = p.comp.Hour, p.comp.Minute, p.comp.HourCertain
			d.hasTime = true
			return e, d
		}
	}
	return end, p
}

// extendRange looks for "<sep> <expr>" after a first expression and, when found, pulls a
// preceding opener word ("from", "between", "desde") into the match.
func (r *Recognizer) extendRange(s *scan, start, end int, first part) (int, int, *Components, bool) {
	open := start
	sep := r.rules.rangeSep
	if idx := r.rules.rangeOpen.FindStringSubmatchIndex(s.text[:start]); idx != nil {
		open = idx[2]
		if r.rules.betweenWords[textnorm.Fold(s.text[idx[2]:idx[3]])] {
			sep = r.rules.betweenSep
		}
	}

	loc := sep.FindStringIndex(s.text[end:])
	if loc == nil {
		return start, end, nil, false
	}

	at := end + loc[1]
	e, second, ok := r.findAt(s, at, r.rules.all)
	if !ok || second.end != nil {
		return start, end, nil, false
	}
	e, second = r.attach(s, e, second)

	if !second.hasDate {
		second.comp.Year, second.comp.Month, second.comp.Day = first.comp.Year, first.comp.Month, first.comp.Day
	}
	// "from Monday to Friday" said on a Wednesday ends on the Friday after that Monday
	if second.weekday {
		from, okFrom := first.comp.Date(s.loc)
		to, okTo := second.comp.Date(s.loc)
		if okFrom && okTo && to.Before(from) {
			moved := fromDate(to.AddDate(0, 0, 7))
			second.comp.Year, second.comp.Month, second.comp.Day = moved.Year, moved.Month, moved.Day
		}
	}
	comp := second.comp
	return open, e, &comp, true
}

func submatches(text string, offset int, idx []int) []string {
	out := make([]string, len(idx)/2)
	for i := range out {
		a, b := idx[2*i], idx[2*i+1]
		if a >= 0 {
			out[i] = text[offset+a : offset+b]
		}
	}
	return out
}

type scan struct {
	text string
	ref  time.Time
	loc  *time.Location
}

func (s *scan) day(offset int) time.Time {
	t := s.ref.AddDate(0, 0, offset)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

// clock resolves a bare time on the reference day, rolling to the next day once it has passed.
func (s *scan) clock(hour, minute int, certain bool) part {
	t := time.Date(s.ref.Year(), s.ref.Month(), s.ref.Day(), hour, minute, 0, 0, s.loc)
	if certain && t.Before(s.ref.Truncate(time.Minute)) {
		t = t.AddDate(0, 0, 1)
	}
	c := fromDate(t)
	c.Hour, c.Minute, c.HourCertain = hour, minute, certain
	return part{comp: c, hasTime: true}
}

type part struct {
	comp    Components
	end     *Components
	hasDate bool
	hasTime bool
	weekday bool // resolved from a weekday name
}

type buildFunc func(s *scan, g []string, start int) (part, bool)

type rule struct {
	re       *regexp.Regexp
	anchored *regexp.Regexp
	build    buildFunc
}

func newRule(src string, build buildFunc) rule {
	return rule{
		re:       regexp.MustCompile(`(?i)` + src),
		anchored: regexp.MustCompile(`(?i)^(?:` + src + `)`),
		build:    build,
	}
}

type ruleSet struct {
	dates []rule
	times []rule
	all   []rule

	timeLead *regexp.Regexp // between a date and an attached time
	dateLead *regexp.Regexp // between a time and an attached date

	rangeOpen    *regexp.Regexp // opener word right before a range, group 1
	rangeSep     *regexp.Regexp
	betweenSep   *regexp.Regexp
	betweenWords map[string]bool
}

func (rs *ruleSet) init() *ruleSet {
	rs.all = append(append([]rule{}, rs.dates...), rs.times...)
	return rs
}

var ruleSets = map[Locale]*ruleSet{
	English: englishRules().init(),
	Spanish: spanishRules().init(),
}
