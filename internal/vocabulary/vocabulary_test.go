package vocabulary_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tasknotes-nlp/internal/vocabulary"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		format     vocabulary.Format
		doc        string
		priorities int
		statuses   int
		err        error
	}{
		{
			name:   "JSON",
			format: vocabulary.FormatJSON,
			doc: `{"priorities":[{"id":"p1","label":"Top"},{"id":"p2"}],
			       "statuses":[{"id":"review","label":"In Review"}]}`,
			priorities: 2,
			statuses:   1,
		},
		{
			name:   "TOML",
			format: vocabulary.FormatTOML,
			doc: `
[[priorities]]
id = "p1"
label = "Top"

[[statuses]]
id = "review"
label = "In Review"

[[statuses]]
id = "qa"
`,
			priorities: 1,
			statuses:   2,
		},
		{
			name:   "Empty document",
			format: vocabulary.FormatJSON,
			doc:    `{}`,
		},
		{
			name:   "Unknown field",
			format: vocabulary.FormatJSON,
			doc:    `{"priorities":[{"id":"p1","colour":"red"}]}`,
			err:    vocabulary.ErrInvalid,
		},
		{
			name:   "Missing id",
			format: vocabulary.FormatTOML,
			doc:    "[[statuses]]\nlabel = \"Done\"\n",
			err:    vocabulary.ErrInvalid,
		},
		{
			name:   "Blank id",
			format: vocabulary.FormatJSON,
			doc:    `{"statuses":[{"id":"  "}]}`,
			err:    vocabulary.ErrInvalid,
		},
		{
			name:   "Broken JSON",
			format: vocabulary.FormatJSON,
			doc:    `{"priorities":`,
			err:    vocabulary.ErrInvalid,
		},
		{
			name:   "Unknown format",
			format: "yaml",
			doc:    `priorities: []`,
			err:    vocabulary.ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vocabulary.Decode(strings.NewReader(tt.doc), tt.format)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("error = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if len(got.Priorities) != tt.priorities || len(got.Statuses) != tt.statuses {
				t.Errorf("got %d priorities, %d statuses; want %d, %d",
					len(got.Priorities), len(got.Statuses), tt.priorities, tt.statuses)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.toml")
	if err := os.WriteFile(path, []byte("[[priorities]]\nid = \"p1\"\nlabel = \"Top\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := vocabulary.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	opts := f.Options()
	if len(opts.Priorities) != 1 || opts.Priorities[0].ID != "p1" || opts.Priorities[0].Label != "Top" {
		t.Errorf("options = %+v", opts)
	}

	if _, err := vocabulary.Load(filepath.Join(dir, "vocab.yaml")); !errors.Is(err, vocabulary.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := vocabulary.Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
