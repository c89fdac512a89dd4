package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/model"
	"tasknotes-nlp/internal/parser"
)

const detailsPreviewLen = 50

// Preview lists the populated fields of task in a fixed order. Absent fields are omitted.
func (uc *implUseCase) Preview(ctx context.Context, pack language.Pack, task model.ParsedTask) ([]model.PreviewEntry, error) {
	if pack == nil {
		return nil, parser.ErrNilPack
	}
	lb := pack.Labels()

	var out []model.PreviewEntry
	add := func(cat model.PreviewCategory, label, value string) {
		out = append(out, model.PreviewEntry{Category: cat, Text: label + ": " + value})
	}

	if task.Title != "" {
		add(model.PreviewTitle, lb.Title, fmt.Sprintf("%q", task.Title))
	}
	if task.Details != "" {
		add(model.PreviewDetails, lb.Details, truncate(task.Details, detailsPreviewLen))
	}
	if task.DueDate != "" {
		add(model.PreviewDue, lb.Due, dateTime(task.DueDate, task.DueTime, lb.At))
	}
	if task.ScheduledDate != "" {
		add(model.PreviewScheduled, lb.Scheduled, dateTime(task.ScheduledDate, task.ScheduledTime, lb.At))
	}
	if task.Priority != "" {
		add(model.PreviewPriority, lb.Priority, task.Priority)
	}
	if task.Status != "" {
		add(model.PreviewStatus, lb.Status, task.Status)
	}
	if len(task.Contexts) > 0 {
		add(model.PreviewContexts, lb.Contexts, prefixed("@", task.Contexts))
	}
	if len(task.Projects) > 0 {
		projects := make([]string, len(task.Projects))
		for i, p := range task.Projects {
			projects[i] = projectRef(p)
		}
		add(model.PreviewProjects, lb.Projects, strings.Join(projects, ", "))
	}
	if len(task.Tags) > 0 {
		add(model.PreviewTags, lb.Tags, prefixed("#", task.Tags))
	}
	if task.Recurrence != "" {
		text, err := pack.Describe(task.Recurrence)
		if err != nil {
			uc.l.Debugf(ctx, "parser.usecase.Preview: describe %q: %v", task.Recurrence, err)
			text = lb.InvalidRecurrence
		}
		add(model.PreviewRecurrence, lb.Recurrence, text)
	}
	if task.EstimateMinutes > 0 {
		add(model.PreviewEstimate, lb.Estimate, fmt.Sprintf("%d %s", task.EstimateMinutes, lb.Minutes))
	}

	return out, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func dateTime(date, clock, at string) string {
	if clock == "" {
		return date
	}
	return date + " " + at + " " + clock
}

func prefixed(prefix string, values []string) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = prefix + v
	}
	return strings.Join(out, ", ")
}

// projectRef shows names with spaces, dashes or capitals in link form.
func projectRef(p string) string {
	if strings.ContainsFunc(p, func(r rune) bool { return unicode.IsSpace(r) || r == '-' || unicode.IsUpper(r) }) {
		return "+[[" + p + "]]"
	}
	return "+" + p
}
