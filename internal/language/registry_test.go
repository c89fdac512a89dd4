package language_test

import (
	"errors"
	"sync"
	"testing"

	"tasknotes-nlp/internal/language"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want language.Code
		err  bool
	}{
		{"en", language.English, false},
		{"es-MX", language.Spanish, false},
		{"ES_es", language.Spanish, false},
		{" en-GB ", language.English, false},
		{"fr", "", true},
		{"", "", true},
		{"not a tag", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := language.Normalize(tt.in)
			if tt.err {
				if !errors.Is(err, language.ErrUnsupportedLanguage) {
					t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegistrySelection(t *testing.T) {
	r, err := language.NewRegistry("", language.Options{})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if r.Current() != language.English {
		t.Fatalf("default language = %q, want en", r.Current())
	}

	snapshot := r.Pack()
	if code, err := r.Select("es-AR"); err != nil || code != language.Spanish {
		t.Fatalf("Select = %q, %v", code, err)
	}
	if snapshot.Code() != language.English {
		t.Errorf("snapshot changed after Select")
	}
	if r.Pack().Code() != language.Spanish {
		t.Errorf("active pack = %q, want es", r.Pack().Code())
	}

	if _, err := r.Select("de"); !errors.Is(err, language.ErrUnsupportedLanguage) {
		t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if r.Current() != language.Spanish {
		t.Errorf("failed Select changed the selection")
	}

	p, err := r.Lookup("en")
	if err != nil || p.Code() != language.English {
		t.Errorf("Lookup(en) = %v, %v", p, err)
	}
	if r.Current() != language.Spanish {
		t.Errorf("Lookup changed the selection")
	}
}

func TestRegistrySupported(t *testing.T) {
	r, _ := language.NewRegistry("en", language.Options{})
	got := r.Supported()
	want := []language.Info{
		{Code: language.English, Name: "English", NativeName: "English"},
		{Code: language.Spanish, Name: "Spanish", NativeName: "español"},
	}
	if len(got) != len(want) {
		t.Fatalf("Supported = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Supported[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRegistryConcurrentSelect(t *testing.T) {
	r, _ := language.NewRegistry("en", language.Options{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			code := "en"
			if i%2 == 0 {
				code = "es"
			}
			_, _ = r.Select(code)
		}(i)
		go func() {
			defer wg.Done()
			if p := r.Pack(); p == nil {
				t.Error("nil pack")
			}
		}()
	}
	wg.Wait()
}
