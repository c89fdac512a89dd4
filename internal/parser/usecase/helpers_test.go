package usecase_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/model"
	"tasknotes-nlp/internal/parser"
	"tasknotes-nlp/internal/parser/usecase"
)

// Wednesday, May 1, 2024
var baseTime = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newUseCase(t *testing.T) parser.UseCase {
	t.Helper()
	uc, err := usecase.New(&mockLogger{}, "UTC")
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}
	return uc
}

func mustPack(t *testing.T, code language.Code, opts language.Options) language.Pack {
	t.Helper()
	p, err := language.New(code, opts)
	if err != nil {
		t.Fatalf("language.New(%s): %v", code, err)
	}
	return p
}

func parse(t *testing.T, uc parser.UseCase, pack language.Pack, text string, toScheduled bool) model.ParsedTask {
	t.Helper()
	task, err := uc.Parse(context.Background(), pack, parser.ParseInput{
		Text:               text,
		Now:                baseTime,
		DefaultToScheduled: toScheduled,
	})
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return task
}

// withCollections fills nil collections so expected tasks can omit them.
func withCollections(task model.ParsedTask) model.ParsedTask {
	if task.Tags == nil {
		task.Tags = []string{}
	}
	if task.Contexts == nil {
		task.Contexts = []string{}
	}
	if task.Projects == nil {
		task.Projects = []string{}
	}
	return task
}

func assertTask(t *testing.T, got, want model.ParsedTask) {
	t.Helper()
	want = withCollections(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("task mismatch\n got: %+v\nwant: %+v", got, want)
	}
}
