package language

import (
	"fmt"
	"strings"
	"sync"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Codes lists the supported languages in display order.
var Codes = []Code{English, Spanish}

// Info describes a supported language.
type Info struct {
	Code       Code   `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

// Registry holds one pack per supported language and the active selection.
// Selection is last-write-wins; callers snapshot a pack with Pack before a parse.
type Registry struct {
	mu      sync.RWMutex
	current Code
	packs   map[Code]Pack
}

// NewRegistry builds every supported pack with opts and selects code.
func NewRegistry(code string, opts Options) (*Registry, error) {
	packs := make(map[Code]Pack, len(Codes))
	for _, c := range Codes {
		p, err := New(c, opts)
		if err != nil {
			return nil, fmt.Errorf("language %s: %w", c, err)
		}
		packs[c] = p
	}

	r := &Registry{packs: packs, current: English}
	if code != "" {
		if _, err := r.Select(code); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Normalize maps a BCP 47 tag ("es-MX", "EN_us") to a supported code.
func Normalize(code string) (Code, error) {
	tag, err := xlanguage.Parse(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	base, conf := tag.Base()
	if conf != xlanguage.Exact {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	c := Code(base.String())
	for _, supported := range Codes {
		if c == supported {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}

// Select makes code the active language and returns its normalized form.
func (r *Registry) Select(code string) (Code, error) {
	c, err := Normalize(code)
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	r.current = c
	r.mu.Unlock()
	return c, nil
}

// Current returns the active language code.
func (r *Registry) Current() Code {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Pack returns the active pack.
func (r *Registry) Pack() Pack {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.packs[r.current]
}

// Lookup returns the pack for code without changing the selection.
func (r *Registry) Lookup(code string) (Pack, error) {
	c, err := Normalize(code)
	if err != nil {
		return nil, err
	}
	return r.packs[c], nil
}

// Supported lists every language with its English and native name.
func (r *Registry) Supported() []Info {
	out := make([]Info, 0, len(Codes))
	for _, c := range Codes {
		tag := xlanguage.Make(string(c))
		out = append(out, Info{
			Code:       c,
			Name:       display.English.Languages().Name(tag),
			NativeName: display.Self.Name(tag),
		})
	}
	return out
}
