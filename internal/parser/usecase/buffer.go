package usecase

import (
	"sort"
	"strings"
	"unicode"

	"tasknotes-nlp/pkg/textnorm"
)

// span is a byte range of the working text.
type span struct {
	start, end int
}

// cut removes one span and collapses the whitespace left behind.
func cut(text string, start, end int) string {
	return textnorm.CollapseSpaces(text[:start] + " " + text[end:])
}

// cutAll removes non-overlapping spans, right to left so earlier offsets stay valid.
func cutAll(text string, spans []span) string {
	if len(spans) == 0 {
		return text
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start > spans[j].start })
	for _, s := range spans {
		text = text[:s.start] + " " + text[s.end:]
	}
	return textnorm.CollapseSpaces(text)
}

// splitLines separates the parsed first line from the untouched detail text.
// Leading blank lines are skipped so the first line with text is parsed.
func splitLines(raw string) (string, string) {
	raw = strings.TrimLeftFunc(raw, unicode.IsSpace)
	first, rest, found := strings.Cut(raw, "\n")
	first = strings.TrimRight(first, "\r")
	if !found {
		return first, ""
	}
	return first, strings.TrimSpace(rest)
}

// wordsBefore returns the offset where the n words preceding i begin.
func wordsBefore(text string, i, n int) int {
	pos := i
	for ; n > 0; n-- {
		for pos > 0 && isSpace(text[pos-1]) {
			pos--
		}
		if pos == 0 {
			break
		}
		for pos > 0 && !isSpace(text[pos-1]) {
			pos--
		}
	}
	return pos
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
