package parser

import (
	"context"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse turns one raw line (plus optional detail lines) into a task using pack.
	// Malformed or empty text never fails; an error means the call itself was unusable.
	Parse(ctx context.Context, pack language.Pack, input ParseInput) (model.ParsedTask, error)
	// Preview describes the populated fields of task in pack's words.
	Preview(ctx context.Context, pack language.Pack, task model.ParsedTask) ([]model.PreviewEntry, error)
}
