package datemath

import (
	"regexp"
	"time"

	"tasknotes-nlp/pkg/textnorm"
)

const (
	enMonthAlt   = `january|february|march|april|may|june|july|august|september|october|november|december|sept|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`
	enWeekdayAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	enCountAlt   = `\d+|an?|one|two|three|four|five|six|seven|eight|nine|ten|a\s+couple\s+of`
	enUnitAlt    = `minutes?|mins?|hours?|hrs?|days?|weeks?|months?|years?`
	enMeridiem   = `a\.?m\.?|p\.?m\.?`
)

var enMonths = map[string]int{
	"january": 1, "jan": 1, "february": 2, "feb": 2, "march": 3, "mar": 3, "april": 4, "apr": 4,
	"may": 5, "june": 6, "jun": 6, "july": 7, "jul": 7, "august": 8, "aug": 8,
	"september": 9, "sept": 9, "sep": 9, "october": 10, "oct": 10, "november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

var enWeekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
}

func englishRules() *ruleSet {
	return &ruleSet{
		dates: []rule{
			newRule(`(\d{4})-(\d{1,2})-(\d{1,2})(?:T(\d{2}):(\d{2}))?`, buildISO),
			newRule(`(`+enMonthAlt+`)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\s*(?:-|–|to)\s*(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?`,
				func(s *scan, g []string, _ int) (part, bool) {
					month := enMonths[textnorm.Fold(g[1])]
					p := s.calendar(g[4], month, atoi(g[2]))
					end := p.comp
					end.Day = atoi(g[3])
					p.end = &end
					return p, true
				}),
			newRule(`(`+enMonthAlt+`)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?`,
				func(s *scan, g []string, _ int) (part, bool) {
					return s.calendar(g[3], enMonths[textnorm.Fold(g[1])], atoi(g[2])), true
				}),
			newRule(`(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(`+enMonthAlt+`)\.?(?:,?\s+(\d{4}))?`,
				func(s *scan, g []string, _ int) (part, bool) {
					return s.calendar(g[3], enMonths[textnorm.Fold(g[2])], atoi(g[1])), true
				}),
			newRule(`(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?`,
				func(s *scan, g []string, _ int) (part, bool) {
					return s.calendar(g[3], atoi(g[1]), atoi(g[2])), true
				}),
			newRule(`(?:the\s+)?day\s+after\s+tomorrow`,
				func(s *scan, _ []string, _ int) (part, bool) {
					return part{comp: fromDate(s.day(2)), hasDate: true}, true
				}),
			newRule(`today|tonight|tomorrow|tmrw|tmr|yesterday`,
				func(s *scan, g []string, _ int) (part, bool) {
					switch textnorm.Fold(g[0]) {
					case "today":
						return part{comp: fromDate(s.day(0)), hasDate: true}, true
					case "tonight":
						c := fromDate(s.day(0))
						c.Hour = 20
						return part{comp: c, hasDate: true}, true
					case "yesterday":
						return part{comp: fromDate(s.day(-1)), hasDate: true}, true
					}
					return part{comp: fromDate(s.day(1)), hasDate: true}, true
				}),
			newRule(`(?:(this|next|last|coming)\s+)?(`+enWeekdayAlt+`)`,
				func(s *scan, g []string, _ int) (part, bool) {
					mode := weekdayNearest
					switch textnorm.Fold(g[1]) {
					case "next":
						mode = weekdayNext
					case "last":
						mode = weekdayLast
					}
					return s.weekday(enWeekdays[textnorm.Fold(g[2])], mode), true
				}),
			newRule(`(?:in|within)\s+(`+enCountAlt+`)\s+(`+enUnitAlt+`)`,
				func(s *scan, g []string, _ int) (part, bool) {
					n, ok := parseCount(g[1])
					if !ok {
						return part{}, false
					}
					return s.shift(n, g[2])
				}),
			newRule(`(`+enCountAlt+`)\s+(days?|weeks?|months?|years?)\s+from\s+(?:now|today)`,
				func(s *scan, g []string, _ int) (part, bool) {
					n, ok := parseCount(g[1])
					if !ok {
						return part{}, false
					}
					return s.shift(n, g[2])
				}),
			newRule(`(next|this)\s+(week|month|year)`,
				func(s *scan, g []string, _ int) (part, bool) {
					if textnorm.Fold(g[1]) == "this" {
						return part{comp: fromDate(s.day(0)), hasDate: true}, true
					}
					return s.shift(1, g[2])
				}),
		},
		times: []rule{
			newRule(`(\d{1,2}):(\d{2})(?:\s*(`+enMeridiem+`))?`, buildClock),
			newRule(`(\d{1,2})()\s*(`+enMeridiem+`)`, buildClock),
			newRule(`noon|midday|midnight`,
				func(s *scan, g []string, _ int) (part, bool) {
					if textnorm.Fold(g[0]) == "midnight" {
						return s.clock(0, 0, true), true
					}
					return s.clock(12, 0, true), true
				}),
			newRule(`(?:in\s+the\s+|this\s+)?(morning|afternoon|evening)`,
				func(s *scan, g []string, _ int) (part, bool) {
					hour := map[string]int{"morning": 9, "afternoon": 15, "evening": 19}[textnorm.Fold(g[1])]
					return s.clock(hour, 0, false), true
				}),
		},
		timeLead:     regexp.MustCompile(`(?i)^\s*(?:at\s+|,\s*)?`),
		dateLead:     regexp.MustCompile(`(?i)^\s*(?:on\s+|,\s*)?`),
		rangeOpen:    regexp.MustCompile(`(?i)(?:^|\s)(from|between)\s+$`),
		rangeSep:     regexp.MustCompile(`(?i)^\s*(?:(?:-|–)\s*|(?:to|until|till|through|thru)\s+)`),
		betweenSep:   regexp.MustCompile(`(?i)^\s*and\s+`),
		betweenWords: map[string]bool{"between": true},
	}
}

func buildISO(s *scan, g []string, _ int) (part, bool) {
	p := part{
		comp:    Components{Year: atoi(g[1]), Month: atoi(g[2]), Day: atoi(g[3])},
		hasDate: true,
	}
	if g[4] != "" {
		hour, minute := atoi(g[4]), atoi(g[5])
		if !validClock(hour, minute) {
			return part{}, false
		}
		p.comp.Hour, p.comp.Minute, p.comp.HourCertain = hour, minute, true
		p.hasTime = true
	}
	return p, true
}

// buildClock expects groups (hour, minute, meridiem).
func buildClock(s *scan, g []string, _ int) (part, bool) {
	hour, ok := meridiem(atoi(g[1]), g[3])
	minute := atoi(g[2])
	if !ok || !validClock(hour, minute) {
		return part{}, false
	}
	return s.clock(hour, minute, true), true
}
