package usecase

import (
	"strconv"
	"strings"

	"tasknotes-nlp/internal/language"
)

// extractRecurrence applies the first recurrence pattern that matches. A rule that fails validation
// is discarded and its text is left in place.
func (uc *implUseCase) extractRecurrence(r *run) {
	for _, p := range r.pack.RecurrencePatterns() {
		idx := p.Matcher.FindIndex(r.text)
		if idx == nil {
			continue
		}

		rule := buildRule(p, language.Groups(r.text, idx), r.pack.Lexicon())
		if !validRule(rule) {
			uc.l.Debugf(r.ctx, "parser.usecase.extractRecurrence: discarded rule %q", rule)
			return
		}
		r.task.Recurrence = rule
		r.text = cut(r.text, idx[0], idx[1])
		return
	}
}

// buildRule turns a pattern match into a rule string. g[0] is the whole match.
func buildRule(p language.RecurrencePattern, g []string, lex *language.Lexicon) string {
	switch p.Kind {
	case language.RuleInterval:
		freq, _ := lex.Frequency(g[2])
		n, ok := lex.Count(g[1])
		if !ok {
			return "FREQ=" + freq + ";INTERVAL="
		}
		if n == 1 {
			return "FREQ=" + freq
		}
		return "FREQ=" + freq + ";INTERVAL=" + strconv.Itoa(n)

	case language.RuleWeekday:
		var days []string
		seen := map[string]bool{}
		for _, word := range lex.SplitList(g[1]) {
			day, ok := lex.Weekday(word)
			if !ok || seen[day] {
				continue
			}
			seen[day] = true
			days = append(days, day)
		}
		return "FREQ=WEEKLY;BYDAY=" + strings.Join(days, ",")

	case language.RuleOrdinalWeekday:
		pos, _ := lex.Ordinal(g[1])
		day, _ := lex.Weekday(g[2])
		return "FREQ=MONTHLY;BYDAY=" + day + ";BYSETPOS=" + strconv.Itoa(pos)
	}

	return p.Template
}

// validRule requires a frequency, a non-empty by-day list when present and a positive interval.
func validRule(rule string) bool {
	fields := map[string]string{}
	for _, part := range strings.Split(rule, ";") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return false
		}
		fields[key] = value
	}

	if freq, ok := fields["FREQ"]; !ok || freq == "" {
		return false
	}
	if day, ok := fields["BYDAY"]; ok && (day == "" || day == "undefined") {
		return false
	}
	if pos, ok := fields["BYSETPOS"]; ok && (pos == "" || pos == "0") {
		return false
	}
	if interval, ok := fields["INTERVAL"]; ok {
		if n, err := strconv.Atoi(interval); err != nil || n < 1 {
			return false
		}
	}
	return true
}
