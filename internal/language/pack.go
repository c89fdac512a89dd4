package language

import (
	"fmt"
	"regexp"
	"strings"
)

// vocab is one built-in vocabulary entry: an identifier and a regexp alternation of its words.
type vocab struct {
	value string
	words string
}

// table is the compiled, shared part of one language.
type table struct {
	code Code

	priorities   []vocab
	priorityForm string // wraps every priority alternation, e.g. an optional "priority" suffix
	statuses     []vocab

	triggers   []Trigger
	recurrence []RecurrencePattern
	estimates  []EstimatePattern
	cues       Cues
	lexicon    *Lexicon

	placeholder string
	labels      Labels
	phrases     phrases
}

type pack struct {
	t          *table
	priorities []Pattern
	statuses   []Pattern
}

// New builds the pack for code. Non-empty overrides in opts replace the built-in priority or status words.
func New(code Code, opts Options) (Pack, error) {
	t, ok := tables[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	priorities, err := compileVocabulary(t.priorityForm, opts.Priorities, t.priorities)
	if err != nil {
		return nil, fmt.Errorf("priorities: %w", err)
	}
	statuses, err := compileVocabulary(`(?:%s)`, opts.Statuses, t.statuses)
	if err != nil {
		return nil, fmt.Errorf("statuses: %w", err)
	}

	return &pack{t: t, priorities: priorities, statuses: statuses}, nil
}

// Default returns the pack for code with its built-in vocabulary.
func Default(code Code) (Pack, error) {
	return New(code, Options{})
}

func (p *pack) Code() Code                              { return p.t.code }
func (p *pack) PriorityPatterns() []Pattern             { return p.priorities }
func (p *pack) StatusPatterns() []Pattern               { return p.statuses }
func (p *pack) DateTriggers() []Trigger                 { return p.t.triggers }
func (p *pack) RecurrencePatterns() []RecurrencePattern { return p.t.recurrence }
func (p *pack) EstimatePatterns() []EstimatePattern     { return p.t.estimates }
func (p *pack) DateCues() Cues                          { return p.t.cues }
func (p *pack) Lexicon() *Lexicon                       { return p.t.lexicon }
func (p *pack) Placeholder() string                     { return p.t.placeholder }
func (p *pack) Labels() Labels                          { return p.t.labels }

func (p *pack) Describe(rule string) (string, error) {
	return p.t.phrases.describe(rule)
}

// compileVocabulary turns overrides into two patterns per entry (identifier and label);
// without overrides the fallback list is used.
func compileVocabulary(form string, overrides []Term, fallback []vocab) ([]Pattern, error) {
	if len(overrides) == 0 {
		out := make([]Pattern, 0, len(fallback))
		for _, v := range fallback {
			m, err := NewMatcher(fmt.Sprintf(form, v.words))
			if err != nil {
				return nil, err
			}
			out = append(out, Pattern{Matcher: m, Value: v.value})
		}
		return out, nil
	}

	out := make([]Pattern, 0, 2*len(overrides))
	for _, term := range overrides {
		id := strings.TrimSpace(term.ID)
		if id == "" {
			continue
		}
		label := strings.TrimSpace(term.Label)
		// label before id, so "in review" is consumed whole
		words := []string{id}
		if label != "" && !strings.EqualFold(label, id) {
			words = []string{label, id}
		}
		for _, word := range words {
			m, err := NewMatcher(fmt.Sprintf(form, literal(word)))
			if err != nil {
				return nil, err
			}
			out = append(out, Pattern{Matcher: m, Value: id})
		}
	}
	return out, nil
}

var spaceRun = regexp.MustCompile(`\s+`)

// literal quotes word for a regexp, letting any run of spaces match any whitespace.
func literal(word string) string {
	parts := spaceRun.Split(word, -1)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(parts, `\s+`)
}

// helpers used by the language tables

func trigger(src string, kind DateKind) Trigger {
	return Trigger{Matcher: mustMatcher(src), Kind: kind}
}

func static(src, template string) RecurrencePattern {
	return RecurrencePattern{Matcher: mustMatcher(src), Kind: RuleStatic, Template: template}
}

func handler(src string, kind RuleKind) RecurrencePattern {
	return RecurrencePattern{Matcher: mustMatcher(src), Kind: kind}
}

func estimate(src string, kind EstimateKind, guard *regexp.Regexp) EstimatePattern {
	return EstimatePattern{Matcher: mustMatcher(src), Kind: kind, Guard: guard}
}

// list builds an alternation matching one or more items joined by sep.
func list(item, sep string) string {
	return `(?:` + item + `)(?:(?:` + sep + `)(?:` + item + `))*`
}

var tables = map[Code]*table{
	English: englishTable(),
	Spanish: spanishTable(),
}
