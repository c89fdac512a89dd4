package usecase

import (
	"regexp"
	"strings"
	"time"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/model"
)

const dateLayout = "2006-01-02"

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)
)

// normalize guarantees a title, deduplicates collections and drops malformed dates and times.
func normalize(pack language.Pack, task model.ParsedTask) model.ParsedTask {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		task.Title = pack.Placeholder()
	}

	task.Tags = dedupe(task.Tags)
	task.Contexts = dedupe(task.Contexts)
	task.Projects = dedupe(task.Projects)

	task.DueDate, task.DueTime = checkDateTime(task.DueDate, task.DueTime)
	task.ScheduledDate, task.ScheduledTime = checkDateTime(task.ScheduledDate, task.ScheduledTime)

	if task.EstimateMinutes < 0 {
		task.EstimateMinutes = 0
	}
	return task
}

// checkDateTime keeps a time only alongside a valid date.
func checkDateTime(date, clock string) (string, string) {
	if !validDate(date) {
		return "", ""
	}
	if !clockRe.MatchString(clock) {
		clock = ""
	}
	return date, clock
}

func validDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// dedupe keeps the first occurrence of each non-empty value; the result is never nil.
func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
