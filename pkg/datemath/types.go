package datemath

import (
	"errors"
	"fmt"
	"time"
)

// Locale selects the rule set a Recognizer uses.
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

var ErrUnsupportedLocale = errors.New("unsupported locale")

// Components is a recognized calendar point.
// Fields are copied from the text as-is and are not validated; call Date to check them.
type Components struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int

	// HourCertain is true when the text stated a clock time ("Friday at 3pm"), false for a bare date.
	HourCertain bool
}

// Date converts c to a time in loc. ok is false when the day does not exist (2024-02-30)
// or a certain hour is out of range.
func (c Components) Date(loc *time.Location) (t time.Time, ok bool) {
	if loc == nil {
		loc = time.UTC
	}
	if c.Month < 1 || c.Month > 12 || c.Day < 1 || c.Day > 31 {
		return time.Time{}, false
	}
	if c.HourCertain && (c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59) {
		return time.Time{}, false
	}

	t = time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, 0, 0, loc)
	if t.Year() != c.Year || int(t.Month()) != c.Month || t.Day() != c.Day {
		return time.Time{}, false
	}
	return t, true
}

// DateString formats the calendar date as YYYY-MM-DD.
func (c Components) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, c.Month, c.Day)
}

// TimeString formats the clock time as HH:MM.
func (c Components) TimeString() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Match is one date/time expression found in a text.
type Match struct {
	Index int    // byte offset of Text in the searched string
	Text  string // matched span
	Start Components
	End   *Components // set only for ranges ("from Monday to Friday")
}

// EndIndex returns the byte offset right after the match.
func (m Match) EndIndex() int {
	return m.Index + len(m.Text)
}

func fromDate(t time.Time) Components {
	return Components{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func fromDateTime(t time.Time) Components {
	c := fromDate(t)
	c.Hour, c.Minute, c.HourCertain = t.Hour(), t.Minute(), true
	return c
}
