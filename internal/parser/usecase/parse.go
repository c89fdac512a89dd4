package usecase

import (
	"context"
	"strings"
	"time"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/model"
	"tasknotes-nlp/internal/parser"
	"tasknotes-nlp/pkg/textnorm"
)

// run holds the state of one Parse call.
type run struct {
	ctx   context.Context
	pack  language.Pack
	rec   recognizer
	now   time.Time
	input parser.ParseInput

	text string
	task model.ParsedTask
}

// step consumes what it recognizes from r.text and fills r.task.
type step func(uc *implUseCase, r *run)

// pipeline is the fixed extraction order. Recurrence runs after explicit dates and before the
// fallback pass so weekday names in "every Monday" are not read as a calendar date.
var pipeline = []step{
	(*implUseCase).extractTags,
	(*implUseCase).extractContexts,
	(*implUseCase).extractProjects,
	(*implUseCase).extractPriority,
	(*implUseCase).extractStatus,
	(*implUseCase).extractTriggeredDate,
	(*implUseCase).extractRecurrence,
	(*implUseCase).extractEstimate,
	(*implUseCase).extractFallbackDate,
}

// Parse runs the extraction pipeline over the first line of input.Text.
func (uc *implUseCase) Parse(ctx context.Context, pack language.Pack, input parser.ParseInput) (model.ParsedTask, error) {
	if pack == nil {
		return model.ParsedTask{}, parser.ErrNilPack
	}
	rec, ok := uc.recognizers[pack.Code()]
	if !ok {
		uc.l.Errorf(ctx, "parser.usecase.Parse: language %q", pack.Code())
		return model.ParsedTask{}, parser.ErrNoRecognizer
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	first, details := splitLines(input.Text)
	r := &run{
		ctx:   ctx,
		pack:  pack,
		rec:   rec,
		now:   now,
		input: input,
		text:  textnorm.CollapseSpaces(first),
		task:  model.NewParsedTask(),
	}
	r.task.Details = details

	for _, s := range pipeline {
		s(uc, r)
	}

	r.task.Title = strings.TrimSpace(r.text)
	return normalize(pack, r.task), nil
}
