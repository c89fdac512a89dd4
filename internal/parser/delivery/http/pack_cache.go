package http

import (
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"tasknotes-nlp/internal/language"
)

const defaultPackCacheSize = 64

// packCache keeps packs compiled for request vocabularies, keyed by language and terms.
type packCache struct {
	cache *lru.Cache[string, language.Pack]
}

func newPackCache(size int) (*packCache, error) {
	if size <= 0 {
		size = defaultPackCacheSize
	}
	c, err := lru.New[string, language.Pack](size)
	if err != nil {
		return nil, fmt.Errorf("pack cache: %w", err)
	}
	return &packCache{cache: c}, nil
}

func (pc *packCache) get(code language.Code, opts language.Options) (language.Pack, error) {
	key := cacheKey(code, opts)
	if p, ok := pc.cache.Get(key); ok {
		return p, nil
	}

	p, err := language.New(code, opts)
	if err != nil {
		return nil, err
	}
	pc.cache.Add(key, p)
	return p, nil
}

func (pc *packCache) len() int {
	return pc.cache.Len()
}

// cacheKey is the language code followed by the JSON form of the terms, which keeps
// distinct vocabularies from colliding.
func cacheKey(code language.Code, opts language.Options) string {
	terms, _ := json.Marshal([2][]language.Term{opts.Priorities, opts.Statuses})
	return string(code) + ":" + string(terms)
}
