// Package textnorm holds the unicode helpers shared by the date recognizer and the language packs.
package textnorm

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transform chains are not safe for concurrent use
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)), // strip accents
			cases.Fold(),
			norm.NFC,
		)
	},
}

// Fold returns a lookup key for s: case folded, accents removed, inner whitespace collapsed.
// "Miércoles" and "miercoles" fold to the same key.
func Fold(s string) string {
	if s == "" {
		return ""
	}

	tr := foldPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		out = strings.ToLower(s)
	}

	return strings.Join(strings.Fields(out), " ")
}

// IsWordRune reports whether r counts as part of a word (letters, digits, underscore).
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

// AtWordBoundary reports whether s[start:end] is delimited by unicode word boundaries.
// An edge is only checked when the match itself begins or ends with a word rune, which mirrors \b.
func AtWordBoundary(s string, start, end int) bool {
	if start >= end {
		return true
	}

	first, _ := utf8.DecodeRuneInString(s[start:])
	if IsWordRune(first) && start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(s[:start])
		if IsWordRune(prev) {
			return false
		}
	}

	last, _ := utf8.DecodeLastRuneInString(s[:end])
	if IsWordRune(last) && end < len(s) {
		next, _ := utf8.DecodeRuneInString(s[end:])
		if IsWordRune(next) {
			return false
		}
	}

	return true
}

// CollapseSpaces trims s and reduces every whitespace run to one space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
