package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"tasknotes-nlp/internal/model"
)

type parseOutput struct {
	Task     model.ParsedTask     `json:"task"`
	Preview  []model.PreviewEntry `json:"preview"`
	Language string               `json:"language"`
}

type previewOutput struct {
	Preview  []model.PreviewEntry `json:"preview"`
	Language string               `json:"language"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePreview(w io.Writer, entries []model.PreviewEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.Text); err != nil {
			return err
		}
	}
	return nil
}
