package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	tagRe         = regexp.MustCompile(`#([\p{L}\p{N}\p{Mn}_/]+)`)
	contextRe     = regexp.MustCompile(`@([\p{L}\p{N}\p{Mn}_]+)`)
	linkProjectRe = regexp.MustCompile(`\+\[\[([^\[\]]+)\]\]`)
	projectRe     = regexp.MustCompile(`\+([\p{L}\p{N}\p{Mn}_/-]+)`)
)

// collect removes every marker matched by re and returns the captured values.
// A marker glued to a preceding word ("C#", "bob@example.com") is not one, unless it
// continues a run of markers ("#work#q3").
func collect(text string, re *regexp.Regexp) (string, []string) {
	var (
		values []string
		spans  []span
	)
	runEnd := -1
	for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
		if idx[0] != runEnd && gluedToWord(text, idx[0]) {
			continue
		}
		values = append(values, strings.TrimSpace(text[idx[2]:idx[3]]))
		spans = append(spans, span{idx[0], idx[1]})
		runEnd = idx[1]
	}
	return cutAll(text, spans), values
}

func gluedToWord(text string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func (uc *implUseCase) extractTags(r *run) {
	var tags []string
	r.text, tags = collect(r.text, tagRe)
	r.task.Tags = append(r.task.Tags, tags...)
}

func (uc *implUseCase) extractContexts(r *run) {
	var contexts []string
	r.text, contexts = collect(r.text, contextRe)
	r.task.Contexts = append(r.task.Contexts, contexts...)
}

// extractProjects takes bracketed links first, then plain +word references.
func (uc *implUseCase) extractProjects(r *run) {
	var links, plain []string
	r.text, links = collect(r.text, linkProjectRe)
	r.text, plain = collect(r.text, projectRe)
	r.task.Projects = append(r.task.Projects, links...)
	r.task.Projects = append(r.task.Projects, plain...)
}

// extractPriority keeps the leftmost match of all patterns; on equal offsets the earlier pattern wins.
func (uc *implUseCase) extractPriority(r *run) {
	best := -1
	var bestSpan span
	for i, p := range r.pack.PriorityPatterns() {
		idx := p.Matcher.FindIndex(r.text)
		if idx == nil {
			continue
		}
		if best < 0 || idx[0] < bestSpan.start {
			best, bestSpan = i, span{idx[0], idx[1]}
		}
	}
	if best < 0 {
		return
	}

	r.task.Priority = r.pack.PriorityPatterns()[best].Value
	r.text = cut(r.text, bestSpan.start, bestSpan.end)
}

// extractStatus takes the first pattern, in pack order, that matches anywhere.
func (uc *implUseCase) extractStatus(r *run) {
	for _, p := range r.pack.StatusPatterns() {
		idx := p.Matcher.FindIndex(r.text)
		if idx == nil {
			continue
		}
		r.task.Status = p.Value
		r.text = cut(r.text, idx[0], idx[1])
		return
	}
}
