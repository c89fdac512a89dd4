package http

import (
	"time"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/model"
	"tasknotes-nlp/internal/parser"
)

// --- Request DTOs ---

type termReq struct {
	ID    string `json:"id"    binding:"required,notblank,max=64"`
	Label string `json:"label" binding:"max=128"`
}

func toTerms(in []termReq) []language.Term {
	if len(in) == 0 {
		return nil
	}
	out := make([]language.Term, len(in))
	for i, t := range in {
		out[i] = language.Term{ID: t.ID, Label: t.Label}
	}
	return out
}

type parseReq struct {
	Text               string     `json:"text"                 binding:"max=4096"`
	Language           string     `json:"language"             binding:"omitempty,bcp47"`
	DefaultToScheduled *bool      `json:"default_to_scheduled"`
	ReferenceTime      *time.Time `json:"reference_time"`
	Priorities         []termReq  `json:"priorities"           binding:"omitempty,max=50,dive"`
	Statuses           []termReq  `json:"statuses"             binding:"omitempty,max=50,dive"`
}

func (r parseReq) vocabulary() language.Options {
	return language.Options{
		Priorities: toTerms(r.Priorities),
		Statuses:   toTerms(r.Statuses),
	}
}

func (r parseReq) toInput(defaultToScheduled bool) parser.ParseInput {
	in := parser.ParseInput{
		Text:               r.Text,
		DefaultToScheduled: defaultToScheduled,
	}
	if r.DefaultToScheduled != nil {
		in.DefaultToScheduled = *r.DefaultToScheduled
	}
	if r.ReferenceTime != nil {
		in.Now = *r.ReferenceTime
	}
	return in
}

// ---

type taskReq struct {
	Title           string   `json:"title"            binding:"max=4096"`
	Details         string   `json:"details"          binding:"max=16384"`
	DueDate         string   `json:"due_date"         binding:"omitempty,datetime=2006-01-02"`
	DueTime         string   `json:"due_time"         binding:"omitempty,datetime=15:04"`
	ScheduledDate   string   `json:"scheduled_date"   binding:"omitempty,datetime=2006-01-02"`
	ScheduledTime   string   `json:"scheduled_time"   binding:"omitempty,datetime=15:04"`
	Priority        string   `json:"priority"`
	Status          string   `json:"status"`
	Tags            []string `json:"tags"`
	Contexts        []string `json:"contexts"`
	Projects        []string `json:"projects"`
	Recurrence      string   `json:"recurrence"`
	EstimateMinutes int      `json:"estimate_minutes" binding:"min=0"`
}

func (r taskReq) toModel() model.ParsedTask {
	task := model.NewParsedTask()
	task.Title = r.Title
	task.Details = r.Details
	task.DueDate = r.DueDate
	task.DueTime = r.DueTime
	task.ScheduledDate = r.ScheduledDate
	task.ScheduledTime = r.ScheduledTime
	task.Priority = r.Priority
	task.Status = r.Status
	task.Recurrence = r.Recurrence
	task.EstimateMinutes = r.EstimateMinutes
	task.Tags = append(task.Tags, r.Tags...)
	task.Contexts = append(task.Contexts, r.Contexts...)
	task.Projects = append(task.Projects, r.Projects...)
	return task
}

type previewReq struct {
	Task     taskReq `json:"task"`
	Language string  `json:"language" binding:"omitempty,bcp47"`
}

// ---

type selectLanguageReq struct {
	Code string `json:"code" binding:"required,bcp47"`
}

// --- Response DTOs ---

type taskResp struct {
	Title           string   `json:"title"`
	Details         string   `json:"details,omitempty"`
	DueDate         string   `json:"due_date,omitempty"`
	DueTime         string   `json:"due_time,omitempty"`
	ScheduledDate   string   `json:"scheduled_date,omitempty"`
	ScheduledTime   string   `json:"scheduled_time,omitempty"`
	Priority        string   `json:"priority,omitempty"`
	Status          string   `json:"status,omitempty"`
	Tags            []string `json:"tags"`
	Contexts        []string `json:"contexts"`
	Projects        []string `json:"projects"`
	Recurrence      string   `json:"recurrence,omitempty"`
	EstimateMinutes int      `json:"estimate_minutes,omitempty"`
}

func newTaskResp(t model.ParsedTask) taskResp {
	return taskResp{
		Title:           t.Title,
		Details:         t.Details,
		DueDate:         t.DueDate,
		DueTime:         t.DueTime,
		ScheduledDate:   t.ScheduledDate,
		ScheduledTime:   t.ScheduledTime,
		Priority:        t.Priority,
		Status:          t.Status,
		Tags:            t.Tags,
		Contexts:        t.Contexts,
		Projects:        t.Projects,
		Recurrence:      t.Recurrence,
		EstimateMinutes: t.EstimateMinutes,
	}
}

type previewEntryResp struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

func newPreviewResp(entries []model.PreviewEntry) []previewEntryResp {
	out := make([]previewEntryResp, len(entries))
	for i, e := range entries {
		out[i] = previewEntryResp{Category: string(e.Category), Text: e.Text}
	}
	return out
}

type parseResp struct {
	Task     taskResp           `json:"task"`
	Preview  []previewEntryResp `json:"preview"`
	Language language.Code      `json:"language"`
}

func (h *handler) newParseResp(code language.Code, task model.ParsedTask, preview []model.PreviewEntry) parseResp {
	return parseResp{
		Task:     newTaskResp(task),
		Preview:  newPreviewResp(preview),
		Language: code,
	}
}

type previewResp struct {
	Preview  []previewEntryResp `json:"preview"`
	Language language.Code      `json:"language"`
}

type languagesResp struct {
	Current   language.Code   `json:"current"`
	Supported []language.Info `json:"supported"`
}

type selectLanguageResp struct {
	Current language.Code `json:"current"`
}
