package datemath

import (
	"strconv"
	"strings"
	"time"

	"tasknotes-nlp/pkg/textnorm"
)

type weekdayMode int

const (
	weekdayNearest weekdayMode = iota // today or the next occurrence
	weekdayNext                       // strictly after today
	weekdayLast                       // strictly before today
)

var countWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "a couple of": 2, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"un": 1, "una": 1, "uno": 1, "dos": 2, "tres": 3, "cuatro": 4, "cinco": 5,
	"seis": 6, "siete": 7, "ocho": 8, "nueve": 9, "diez": 10,
}

func parseCount(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	n, ok := countWords[textnorm.Fold(s)]
	return n, ok
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// shift moves ref forward by n units. Minute and hour shifts carry a certain clock time.
func (s *scan) shift(n int, unit string) (part, bool) {
	u := textnorm.Fold(unit)
	switch {
	case strings.HasPrefix(u, "min"):
		return part{comp: fromDateTime(s.ref.Add(time.Duration(n) * time.Minute)), hasDate: true, hasTime: true}, true
	case strings.HasPrefix(u, "h"):
		return part{comp: fromDateTime(s.ref.Add(time.Duration(n) * time.Hour)), hasDate: true, hasTime: true}, true
	case strings.HasPrefix(u, "d"):
		return part{comp: fromDate(s.day(n)), hasDate: true}, true
	case strings.HasPrefix(u, "w"), strings.HasPrefix(u, "semana"):
		return part{comp: fromDate(s.day(7 * n)), hasDate: true}, true
	case strings.HasPrefix(u, "month"), strings.HasPrefix(u, "mes"):
		return part{comp: fromDate(s.day(0).AddDate(0, n, 0)), hasDate: true}, true
	case strings.HasPrefix(u, "y"), strings.HasPrefix(u, "ano"):
		return part{comp: fromDate(s.day(0).AddDate(n, 0, 0)), hasDate: true}, true
	}
	return part{}, false
}

func (s *scan) weekday(target time.Weekday, mode weekdayMode) part {
	d := int(target - s.ref.Weekday())
	switch mode {
	case weekdayNext:
		if d <= 0 {
			d += 7
		}
	case weekdayLast:
		if d >= 0 {
			d -= 7
		}
	default:
		if d < 0 {
			d += 7
		}
	}
	return part{comp: fromDate(s.day(d)), hasDate: true, weekday: true}
}

// calendar builds an explicit date. Without a year the next occurrence on or after the
// reference day is used. Impossible days are passed through for the caller to reject.
func (s *scan) calendar(year string, month, day int) part {
	c := Components{Month: month, Day: day}
	switch {
	case year == "":
		c.Year = s.ref.Year()
		if t, ok := c.Date(s.loc); ok && t.Before(s.day(0)) {
			c.Year++
		}
	case len(year) == 2:
		c.Year = 2000 + atoi(year)
	default:
		c.Year = atoi(year)
	}
	return part{comp: c, hasDate: true}
}

// meridiem applies an am/pm marker to a 12-hour clock value.
func meridiem(hour int, marker string) (int, bool) {
	m := strings.NewReplacer(".", "", " ", "").Replace(textnorm.Fold(marker))
	if m == "" {
		return hour, hour <= 23
	}
	if hour < 1 || hour > 12 {
		return 0, false
	}
	switch m {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour, true
}

// dayPeriod applies a Spanish period of the day ("de la tarde") to a clock value.
func dayPeriod(hour int, period string) int {
	switch textnorm.Fold(period) {
	case "tarde":
		if hour < 12 {
			hour += 12
		}
	case "noche":
		if hour >= 6 && hour < 12 {
			hour += 12
		}
	case "manana":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}

func validClock(hour, minute int) bool {
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

// previousWord returns the folded word right before offset i.
func previousWord(text string, i int) string {
	fields := strings.Fields(text[:i])
	if len(fields) == 0 {
		return ""
	}
	return textnorm.Fold(fields[len(fields)-1])
}
