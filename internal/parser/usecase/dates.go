package usecase

import (
	"strings"
	"time"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/model"
	"tasknotes-nlp/pkg/datemath"
)

const (
	// a triggered date must begin within this many bytes of the trigger's end
	triggerWindow = 3
	// words before an untriggered date searched for cue words
	cueWords = 2
)

// recognize asks the recognizer for matches; a failure counts as no match.
func (uc *implUseCase) recognize(r *run, text string) []datemath.Match {
	matches, err := r.rec.Recognize(text, r.now)
	if err != nil {
		uc.l.Debugf(r.ctx, "parser.usecase.recognize: %v", err)
		return nil
	}
	return matches
}

// extractTriggeredDate resolves the first trigger phrase directly followed by a date.
func (uc *implUseCase) extractTriggeredDate(r *run) {
	for _, tr := range r.pack.DateTriggers() {
		for _, idx := range tr.Matcher.FindAllIndex(r.text) {
			rest := r.text[idx[1]:]
			matches := uc.recognize(r, rest)
			if len(matches) == 0 || matches[0].Index > triggerWindow {
				continue
			}

			m := matches[0]
			if !assign(&r.task, tr.Kind, m.Start) {
				continue
			}
			r.text = cut(r.text, idx[0], idx[1]+m.EndIndex())
			return
		}
	}
}

// extractFallbackDate takes the first date left in the text when no date slot is filled yet.
func (uc *implUseCase) extractFallbackDate(r *run) {
	if r.task.HasDate() {
		return
	}

	// an impossible calendar date is skipped as if it had not matched
	for _, m := range uc.recognize(r, r.text) {
		start, end := m.Index, m.EndIndex()

		if m.End != nil {
			if !assign(&r.task, language.DateScheduled, m.Start) {
				continue
			}
			assign(&r.task, language.DateDue, *m.End)
			r.text = cut(r.text, start, end)
			return
		}

		kind, cueStart := slotFor(r, start, m.Text)
		if !assign(&r.task, kind, m.Start) {
			continue
		}
		if cueStart >= 0 {
			start = cueStart
		}
		r.text = cut(r.text, start, end)
		return
	}
}

// slotFor decides where an untriggered single date goes. Cue words just before the date (or inside
// it) win over the caller default. A cue word immediately before the date is returned for removal.
func slotFor(r *run, start int, matched string) (language.DateKind, int) {
	kind := language.DateDue
	if r.input.DefaultToScheduled {
		kind = language.DateScheduled
	}

	from := wordsBefore(r.text, start, cueWords)
	window := r.text[from:start] + matched
	cues := r.pack.DateCues()

	cueStart := -1
	switch {
	case cues.Due != nil && cues.Due.MatchString(window):
		kind = language.DateDue
		cueStart = adjacentCue(r.text, from, start, cues.Due)
	case cues.Scheduled != nil && cues.Scheduled.MatchString(window):
		kind = language.DateScheduled
		cueStart = adjacentCue(r.text, from, start, cues.Scheduled)
	}
	return kind, cueStart
}

// adjacentCue returns the start of a cue that ends right before the date, or -1.
func adjacentCue(text string, from, start int, cue *language.Matcher) int {
	before := text[from:start]
	for _, idx := range cue.FindAllIndex(before) {
		if strings.TrimSpace(before[idx[1]:]) == "" {
			return from + idx[0]
		}
	}
	return -1
}

// assign writes c into the slot of kind. Impossible calendar dates are rejected.
func assign(task *model.ParsedTask, kind language.DateKind, c datemath.Components) bool {
	if _, ok := c.Date(time.UTC); !ok {
		return false
	}
	clock := ""
	if c.HourCertain {
		clock = c.TimeString()
	}

	switch kind {
	case language.DateDue:
		task.DueDate, task.DueTime = c.DateString(), clock
	default:
		task.ScheduledDate, task.ScheduledTime = c.DateString(), clock
	}
	return true
}
