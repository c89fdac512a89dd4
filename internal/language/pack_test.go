package language_test

import (
	"errors"
	"testing"

	"tasknotes-nlp/internal/language"
)

func TestNewUnsupported(t *testing.T) {
	_, err := language.New("fr", language.Options{})
	if !errors.Is(err, language.ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func firstPriority(t *testing.T, p language.Pack, text string) string {
	t.Helper()
	best, bestStart := "", -1
	for _, pat := range p.PriorityPatterns() {
		idx := pat.Matcher.FindIndex(text)
		if idx == nil {
			continue
		}
		if bestStart < 0 || idx[0] < bestStart {
			best, bestStart = pat.Value, idx[0]
		}
	}
	return best
}

func TestBuiltinPriorities(t *testing.T) {
	tests := []struct {
		name string
		code language.Code
		text string
		want string
	}{
		{"English high", language.English, "call mom high priority", "high"},
		{"English critical", language.English, "Critical bug", "urgent"},
		{"English word inside word", language.English, "highlight the text", ""},
		{"Spanish accented", language.Spanish, "revisar informe crítica", "urgent"},
		{"Spanish leading prioridad", language.Spanish, "llamar prioridad alta", "high"},
		{"Spanish word inside word", language.Spanish, "multimedia", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := language.Default(tt.code)
			if err != nil {
				t.Fatalf("Default: %v", err)
			}
			if got := firstPriority(t, p, tt.text); got != tt.want {
				t.Errorf("priority = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOverridesReplaceFallback(t *testing.T) {
	p, err := language.New(language.English, language.Options{
		Priorities: []language.Term{
			{ID: "p1", Label: "Top Priority"},
			{ID: "p2", Label: "p2"},
			{ID: "  ", Label: "ignored"},
		},
		Statuses: []language.Term{{ID: "review", Label: "In Review (QA)"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := len(p.PriorityPatterns()); got != 3 {
		t.Fatalf("priority patterns = %d, want 3", got)
	}
	if got := firstPriority(t, p, "ship it  top   priority"); got != "p1" {
		t.Errorf("label match = %q, want p1", got)
	}
	if got := firstPriority(t, p, "fix P2 bug"); got != "p2" {
		t.Errorf("id match = %q, want p2", got)
	}
	if got := firstPriority(t, p, "urgent fix"); got != "" {
		t.Errorf("built-in word matched with overrides present: %q", got)
	}

	statuses := p.StatusPatterns()
	if len(statuses) != 2 {
		t.Fatalf("status patterns = %d, want 2", len(statuses))
	}
	if !statuses[0].Matcher.MatchString("card in review (qa) now") {
		t.Errorf("label with regexp metacharacters did not match literally")
	}
}

func TestMatcherUnicodeBoundary(t *testing.T) {
	m, err := language.NewMatcher(`último`)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	if !m.MatchString("el Último viernes") {
		t.Errorf("expected case-insensitive match")
	}
	if m.MatchString("penúltimo") {
		t.Errorf("matched inside a word")
	}

	all := m.FindAllIndex("último y último")
	if len(all) != 2 {
		t.Fatalf("FindAllIndex = %d matches, want 2", len(all))
	}
	if g := language.Groups("último y último", all[1]); g[0] != "último" {
		t.Errorf("Groups = %q", g)
	}
}

func TestLexicon(t *testing.T) {
	es, _ := language.Default(language.Spanish)
	lex := es.Lexicon()

	if v, ok := lex.Weekday("Miércoles"); !ok || v != "WE" {
		t.Errorf("Weekday(Miércoles) = %q, %v", v, ok)
	}
	if v, ok := lex.Weekday("sábados"); !ok || v != "SA" {
		t.Errorf("Weekday(sábados) = %q, %v", v, ok)
	}
	if v, ok := lex.Ordinal("Último"); !ok || v != -1 {
		t.Errorf("Ordinal(Último) = %d, %v", v, ok)
	}
	if v, ok := lex.Frequency("años"); !ok || v != "YEARLY" {
		t.Errorf("Frequency(años) = %q, %v", v, ok)
	}
	if v, ok := lex.Count("dos"); !ok || v != 2 {
		t.Errorf("Count(dos) = %d, %v", v, ok)
	}

	got := lex.SplitList("lunes, miércoles y viernes")
	want := []string{"lunes", "miércoles", "viernes"}
	if len(got) != len(want) {
		t.Fatalf("SplitList = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SplitList[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
