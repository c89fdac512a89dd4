package http

import (
	"testing"

	"tasknotes-nlp/internal/language"
)

func TestPackCache(t *testing.T) {
	pc, err := newPackCache(2)
	if err != nil {
		t.Fatalf("newPackCache: %v", err)
	}

	a := language.Options{Priorities: []language.Term{{ID: "p1", Label: "Top"}}}
	b := language.Options{Priorities: []language.Term{{ID: "p1", Label: "Top2"}}}

	first, err := pc.get(language.English, a)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	again, _ := pc.get(language.English, a)
	if first != again {
		t.Errorf("expected the cached pack to be reused")
	}

	pc.get(language.English, b)
	pc.get(language.Spanish, a)
	if pc.len() != 2 {
		t.Errorf("len = %d, want 2", pc.len())
	}

	if cacheKey(language.English, a) == cacheKey(language.English, b) {
		t.Errorf("distinct vocabularies share a key")
	}
	if cacheKey(language.English, a) == cacheKey(language.Spanish, a) {
		t.Errorf("distinct languages share a key")
	}
}
