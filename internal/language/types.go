package language

import "regexp"

// Code is a supported language code.
type Code string

const (
	English Code = "en"
	Spanish Code = "es"
)

// Term is one caller-supplied vocabulary entry, e.g. {ID: "p1", Label: "Top priority"}.
type Term struct {
	ID    string `json:"id" toml:"id" mapstructure:"id"`
	Label string `json:"label" toml:"label" mapstructure:"label"`
}

// Options customizes pack construction. Non-empty lists replace the built-in vocabulary.
type Options struct {
	Priorities []Term
	Statuses   []Term
}

// Pattern maps a vocabulary match to its identifier.
type Pattern struct {
	Matcher *Matcher
	Value   string
}

// DateKind is the slot a date fills.
type DateKind string

const (
	DateDue       DateKind = "due"
	DateScheduled DateKind = "scheduled"
)

// Trigger marks the text right after it as a date of Kind ("due by", "programado para").
type Trigger struct {
	Matcher *Matcher
	Kind    DateKind
}

// RuleKind selects how a recurrence match becomes a rule.
type RuleKind int

const (
	// RuleStatic returns Template unchanged.
	RuleStatic RuleKind = iota
	// RuleInterval reads (count, unit) groups: FREQ=<unit>;INTERVAL=<count>.
	RuleInterval
	// RuleWeekday reads one group holding a weekday or a list of weekdays: FREQ=WEEKLY;BYDAY=<days>.
	RuleWeekday
	// RuleOrdinalWeekday reads (ordinal, weekday) groups: FREQ=MONTHLY;BYDAY=<day>;BYSETPOS=<n>.
	RuleOrdinalWeekday
)

// RecurrencePattern is one recurrence phrase of a pack.
type RecurrencePattern struct {
	Matcher  *Matcher
	Kind     RuleKind
	Template string
}

// EstimateKind selects how an estimate match is converted to minutes.
type EstimateKind int

const (
	EstimateHoursMinutes EstimateKind = iota // (hours, minutes)
	EstimateHours                            // (hours), decimals allowed
	EstimateMinutes                          // (minutes)
	EstimateClock                            // (hours, minutes) written H:MM
)

// EstimatePattern is one duration notation. A match whose preceding text matches Guard
// belongs to a date expression ("in 2 hours") and is skipped.
type EstimatePattern struct {
	Matcher *Matcher
	Kind    EstimateKind
	Guard   *regexp.Regexp
}

// Cues holds the words that decide the slot of a date found without a trigger.
type Cues struct {
	Due       *Matcher
	Scheduled *Matcher
}

// Labels are the words a pack uses when describing a task.
type Labels struct {
	Title             string
	Details           string
	Due               string
	Scheduled         string
	Priority          string
	Status            string
	Contexts          string
	Projects          string
	Tags              string
	Recurrence        string
	Estimate          string
	At                string // joins a date and a time
	Minutes           string
	InvalidRecurrence string
}
