// Package checklist reads markdown task lists ("- [ ] item", "- [x] item").
package checklist

import (
	"regexp"
	"strings"
)

// Example: "  - [x] Task name" → indent "  ", state "x", text "Task name".
var checkboxPattern = regexp.MustCompile(`^(\s*)[-*+] \[([ xX])\]\s+(.+)$`)

// Parse returns every checkbox in content in source order.
// Lines inside fenced code blocks are ignored.
func Parse(content string) []Item {
	var (
		items   []Item
		inFence bool
	)
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		m := checkboxPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[3])
		if text == "" {
			continue
		}
		items = append(items, Item{
			Line:    i + 1,
			Indent:  m[1],
			Checked: m[2] != " ",
			Text:    text,
		})
	}
	return items
}

// Summarize counts completed and pending items.
func Summarize(items []Item) Stats {
	if len(items) == 0 {
		return Stats{}
	}

	completed := 0
	for _, it := range items {
		if it.Checked {
			completed++
		}
	}

	return Stats{
		Total:     len(items),
		Completed: completed,
		Pending:   len(items) - completed,
		Progress:  float64(completed) / float64(len(items)) * 100,
	}
}
