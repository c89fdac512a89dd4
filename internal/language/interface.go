package language

// Pack is the vocabulary of one supported language.
// A Pack is immutable once built; its patterns are compiled once and shared by concurrent parses.
type Pack interface {
	Code() Code

	// PriorityPatterns are evaluated together; the leftmost match wins, ties go to the earlier pattern.
	PriorityPatterns() []Pattern
	// StatusPatterns are evaluated in order; the first pattern matching anywhere wins.
	StatusPatterns() []Pattern
	DateTriggers() []Trigger
	// RecurrencePatterns are tried in order; the first match wins.
	RecurrencePatterns() []RecurrencePattern
	EstimatePatterns() []EstimatePattern
	// DateCues decide the slot of an untriggered date ("until Friday" is a deadline).
	DateCues() Cues
	Lexicon() *Lexicon

	// Placeholder is the title used when nothing else is left.
	Placeholder() string
	Labels() Labels

	// Describe renders a recurrence rule as a phrase. Rules built by RecurrencePatterns parse back
	// to the same rule.
	Describe(rule string) (string, error)
}
