package model

// ParsedTask is the structured record produced from one natural-language task line.
// Optional string fields are empty when absent and EstimateMinutes is 0 when no duration was found.
type ParsedTask struct {
	Title         string `json:"title"`
	Details       string `json:"details,omitempty"`
	DueDate       string `json:"due_date,omitempty"`       // YYYY-MM-DD
	DueTime       string `json:"due_time,omitempty"`       // HH:MM, only with DueDate
	ScheduledDate string `json:"scheduled_date,omitempty"` // YYYY-MM-DD
	ScheduledTime string `json:"scheduled_time,omitempty"` // HH:MM, only with ScheduledDate
	Priority      string `json:"priority,omitempty"`
	Status        string `json:"status,omitempty"`

	Tags     []string `json:"tags"`
	Contexts []string `json:"contexts"`
	Projects []string `json:"projects"`

	Recurrence      string `json:"recurrence,omitempty"` // RRULE body, e.g. FREQ=WEEKLY;BYDAY=MO
	EstimateMinutes int    `json:"estimate_minutes,omitempty"`

	// IsCompleted is reserved for callers; the parser never sets it.
	IsCompleted *bool `json:"is_completed,omitempty"`
}

// NewParsedTask returns an empty task with non-nil collections.
func NewParsedTask() ParsedTask {
	return ParsedTask{
		Tags:     []string{},
		Contexts: []string{},
		Projects: []string{},
	}
}

// HasDate reports whether either date slot is filled.
func (t ParsedTask) HasDate() bool {
	return t.DueDate != "" || t.ScheduledDate != ""
}
