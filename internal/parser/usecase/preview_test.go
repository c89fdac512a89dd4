package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/model"
	"tasknotes-nlp/internal/parser"
)

func TestPreview(t *testing.T) {
	uc := newUseCase(t)
	en := mustPack(t, language.English, language.Options{})
	es := mustPack(t, language.Spanish, language.Options{})

	details := strings.Repeat("x", 60)

	tests := []struct {
		name string
		pack language.Pack
		task model.ParsedTask
		want []model.PreviewEntry
	}{
		{
			name: "All fields in order",
			pack: en,
			task: model.ParsedTask{
				Title:           "Call",
				Details:         details,
				DueDate:         "2024-05-03",
				DueTime:         "15:00",
				ScheduledDate:   "2024-05-02",
				Priority:        "high",
				Status:          "open",
				Contexts:        []string{"office", "home"},
				Projects:        []string{"web-project", "inbox"},
				Tags:            []string{"work"},
				Recurrence:      "FREQ=WEEKLY;BYDAY=MO",
				EstimateMinutes: 90,
			},
			want: []model.PreviewEntry{
				{Category: model.PreviewTitle, Text: `Title: "Call"`},
				{Category: model.PreviewDetails, Text: "Details: " + strings.Repeat("x", 50) + "..."},
				{Category: model.PreviewDue, Text: "Due: 2024-05-03 at 15:00"},
				{Category: model.PreviewScheduled, Text: "Scheduled: 2024-05-02"},
				{Category: model.PreviewPriority, Text: "Priority: high"},
				{Category: model.PreviewStatus, Text: "Status: open"},
				{Category: model.PreviewContexts, Text: "Contexts: @office, @home"},
				{Category: model.PreviewProjects, Text: "Projects: +[[web-project]], +inbox"},
				{Category: model.PreviewTags, Text: "Tags: #work"},
				{Category: model.PreviewRecurrence, Text: "Recurrence: every Monday"},
				{Category: model.PreviewEstimate, Text: "Estimate: 90 min"},
			},
		},
		{
			name: "Absent fields are omitted",
			pack: en,
			task: model.NewParsedTask(),
			want: nil,
		},
		{
			name: "Invalid recurrence falls back",
			pack: en,
			task: model.ParsedTask{Title: "Run", Recurrence: "FREQ=WEEKLY;BYDAY="},
			want: []model.PreviewEntry{
				{Category: model.PreviewTitle, Text: `Title: "Run"`},
				{Category: model.PreviewRecurrence, Text: "Recurrence: Invalid recurrence"},
			},
		},
		{
			name: "Spanish labels",
			pack: es,
			task: model.ParsedTask{Title: "Correr", ScheduledDate: "2024-05-02", ScheduledTime: "07:00", Recurrence: "FREQ=DAILY"},
			want: []model.PreviewEntry{
				{Category: model.PreviewTitle, Text: `Título: "Correr"`},
				{Category: model.PreviewScheduled, Text: "Programado: 2024-05-02 a las 07:00"},
				{Category: model.PreviewRecurrence, Text: "Recurrencia: cada día"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Preview(context.Background(), tt.pack, tt.task)
			if err != nil {
				t.Fatalf("Preview: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Preview mismatch\n got: %+v\nwant: %+v", got, tt.want)
			}
		})
	}
}

func TestPreviewOfParsedTask(t *testing.T) {
	uc := newUseCase(t)
	en := mustPack(t, language.English, language.Options{})

	task := parse(t, uc, en, "Call the doctor tomorrow high priority #health", true)
	got, err := uc.Preview(context.Background(), en, task)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	var cats []model.PreviewCategory
	for _, e := range got {
		cats = append(cats, e.Category)
	}
	want := []model.PreviewCategory{model.PreviewTitle, model.PreviewScheduled, model.PreviewPriority, model.PreviewTags}
	if !reflect.DeepEqual(cats, want) {
		t.Errorf("categories = %v, want %v", cats, want)
	}
}

func TestPreviewNilPack(t *testing.T) {
	uc := newUseCase(t)
	if _, err := uc.Preview(context.Background(), nil, model.NewParsedTask()); !errors.Is(err, parser.ErrNilPack) {
		t.Fatalf("expected ErrNilPack, got %v", err)
	}
}
