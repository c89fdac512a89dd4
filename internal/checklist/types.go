package checklist

// Item is one markdown checkbox line.
type Item struct {
	Line    int    // 1-based line number in the source
	Indent  string // leading whitespace
	Checked bool   // [x] or [X]
	Text    string // text after the checkbox, trimmed
}

// Stats summarizes checklist progress.
type Stats struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"` // 0-100
}
