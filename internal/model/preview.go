package model

// PreviewCategory names the ParsedTask field a preview line describes.
type PreviewCategory string

const (
	PreviewTitle      PreviewCategory = "title"
	PreviewDetails    PreviewCategory = "details"
	PreviewDue        PreviewCategory = "due"
	PreviewScheduled  PreviewCategory = "scheduled"
	PreviewPriority   PreviewCategory = "priority"
	PreviewStatus     PreviewCategory = "status"
	PreviewContexts   PreviewCategory = "contexts"
	PreviewProjects   PreviewCategory = "projects"
	PreviewTags       PreviewCategory = "tags"
	PreviewRecurrence PreviewCategory = "recurrence"
	PreviewEstimate   PreviewCategory = "estimate"
)

// PreviewEntry is one human-readable line of a task preview.
type PreviewEntry struct {
	Category PreviewCategory `json:"category"`
	Text     string          `json:"text"`
}
