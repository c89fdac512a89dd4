package language

import (
	"regexp"

	"github.com/teambition/rrule-go"
)

const (
	enWeekday  = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	enWeekdays = `mondays|tuesdays|wednesdays|thursdays|fridays|saturdays|sundays`
	enOrdinal  = `first|second|third|fourth|last|1st|2nd|3rd|4th`
	enCount    = `\d+|two|three|four|five|six|seven|eight|nine|ten`
	enUnit     = `days?|weeks?|months?|years?`
	enListSep  = `\s*,\s*(?:and\s+)?|\s+and\s+|\s*&\s*`
)

// a count directly after one of these words is a date offset ("in 2 hours"), not an estimate
var enEstimateGuard = regexp.MustCompile(`(?i)(?:^|\s)(?:in|within|after)\s+$`)

func englishTable() *table {
	return &table{
		code: English,
		priorities: []vocab{
			{value: "urgent", words: `urgent|critical|highest`},
			{value: "high", words: `high`},
			{value: "high", words: `important`},
			{value: "normal", words: `medium|normal`},
			{value: "low", words: `lowest|low|minor`},
		},
		priorityForm: `(?:priority\s+)?(?:%s)(?:\s+priority)?`,
		statuses: []vocab{
			{value: "open", words: `todo|to\s+do|open`},
			{value: "in-progress", words: `in\s+progress|in-progress|doing`},
			{value: "done", words: `done|completed|finished`},
			{value: "cancelled", words: `cancelled|canceled`},
			{value: "waiting", words: `waiting|blocked|on\s+hold`},
		},
		triggers: []Trigger{
			trigger(`due(?:\s*:)?\s+(?:(?:on|by)\s+)?`, DateDue),
			trigger(`deadline(?:\s*:)?\s+(?:(?:is|of)\s+)?`, DateDue),
			trigger(`by\s+`, DateDue),
			trigger(`scheduled(?:\s*:)?\s+(?:(?:for|on)\s+)?`, DateScheduled),
			trigger(`start(?:s|ing)?\s+(?:(?:on|at)\s+)?`, DateScheduled),
			trigger(`on\s+`, DateScheduled),
			trigger(`at\s+`, DateScheduled),
		},
		recurrence: []RecurrencePattern{
			handler(`every\s+(`+enOrdinal+`)\s+(`+enWeekday+`)(?:\s+of\s+(?:the|every|each)\s+month)?`, RuleOrdinalWeekday),
			handler(`(?:on\s+)?the\s+(`+enOrdinal+`)\s+(`+enWeekday+`)\s+of\s+(?:every|each|the)\s+month`, RuleOrdinalWeekday),
			handler(`every\s+(`+enCount+`)\s+(`+enUnit+`)`, RuleInterval),
			static(`every\s+other\s+day`, "FREQ=DAILY;INTERVAL=2"),
			static(`every\s+other\s+week|biweekly|fortnightly`, "FREQ=WEEKLY;INTERVAL=2"),
			static(`every\s+other\s+month|bimonthly`, "FREQ=MONTHLY;INTERVAL=2"),
			static(`every\s+other\s+year|biennially`, "FREQ=YEARLY;INTERVAL=2"),
			static(`every\s+weekday|on\s+weekdays|weekdays\s+only`, "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"),
			handler(`(?:every|each)\s+(`+list(enWeekday, enListSep)+`)`, RuleWeekday),
			handler(`on\s+(`+list(enWeekdays, enListSep)+`)`, RuleWeekday),
			static(`daily|every\s+day|each\s+day|every\s+(?:morning|evening|night)`, "FREQ=DAILY"),
			static(`weekly|every\s+week|each\s+week`, "FREQ=WEEKLY"),
			static(`monthly|every\s+month|each\s+month`, "FREQ=MONTHLY"),
			static(`yearly|annually|every\s+year|each\s+year`, "FREQ=YEARLY"),
		},
		estimates: []EstimatePattern{
			estimate(`(?:~\s*)?(\d+)\s*h(?:ours?|rs?)?\s*(\d+)\s*m(?:inutes?|ins?)?`, EstimateHoursMinutes, enEstimateGuard),
			estimate(`(?:~\s*)?(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|h)`, EstimateHours, enEstimateGuard),
			estimate(`(?:~\s*)?(\d+)\s*(?:minutes?|mins?|m)`, EstimateMinutes, enEstimateGuard),
			estimate(`(?:~\s*|(?:est\.?|estimated?|duration|takes)\s*:?\s*)(\d{1,2}):([0-5]\d)`, EstimateClock, nil),
		},
		cues: Cues{
			Due:       mustMatcher(`due|deadline|until|till|before`),
			Scheduled: mustMatcher(`from|starting|start|since|beginning|begin`),
		},
		lexicon: &Lexicon{
			weekdays: map[string]string{
				"monday": "MO", "tuesday": "TU", "wednesday": "WE", "thursday": "TH", "friday": "FR", "saturday": "SA", "sunday": "SU",
				"mondays": "MO", "tuesdays": "TU", "wednesdays": "WE", "thursdays": "TH", "fridays": "FR", "saturdays": "SA", "sundays": "SU",
			},
			ordinals: map[string]int{
				"first": 1, "1st": 1, "second": 2, "2nd": 2, "third": 3, "3rd": 3, "fourth": 4, "4th": 4, "last": -1,
			},
			units: map[string]string{
				"day": "DAILY", "days": "DAILY", "week": "WEEKLY", "weeks": "WEEKLY",
				"month": "MONTHLY", "months": "MONTHLY", "year": "YEARLY", "years": "YEARLY",
			},
			counts: map[string]int{
				"two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
			},
			listSep: regexp.MustCompile(`(?i)` + enListSep),
		},
		placeholder: "Untitled task",
		labels: Labels{
			Title:             "Title",
			Details:           "Details",
			Due:               "Due",
			Scheduled:         "Scheduled",
			Priority:          "Priority",
			Status:            "Status",
			Contexts:          "Contexts",
			Projects:          "Projects",
			Tags:              "Tags",
			Recurrence:        "Recurrence",
			Estimate:          "Estimate",
			At:                "at",
			Minutes:           "min",
			InvalidRecurrence: "Invalid recurrence",
		},
		phrases: phrases{
			every: "every",
			units: map[rrule.Frequency][2]string{
				rrule.DAILY:   {"day", "days"},
				rrule.WEEKLY:  {"week", "weeks"},
				rrule.MONTHLY: {"month", "months"},
				rrule.YEARLY:  {"year", "years"},
			},
			weekdays: [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
			ordinals: map[int]string{1: "first", 2: "second", 3: "third", 4: "fourth", -1: "last"},
			and:      "and",
			on:       "on",
			workdays: "every weekday",
		},
	}
}
