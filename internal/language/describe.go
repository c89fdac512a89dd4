package language

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teambition/rrule-go"
)

// phrases are the words a pack uses to read a recurrence rule back to the user.
type phrases struct {
	every    string
	units    map[rrule.Frequency][2]string // singular, plural
	weekdays [7]string                     // indexed from Monday, as rrule numbers them
	ordinals map[int]string
	and      string
	on       string
	workdays string
}

// describe renders rule in the pack's words. Rules the pack's own recurrence patterns build read
// back to the same rule; an interval combined with weekdays is described but not parsed back.
func (ph phrases) describe(rule string) (string, error) {
	if !strings.Contains(rule, "FREQ=") {
		return "", fmt.Errorf("%w: missing FREQ", ErrInvalidRule)
	}
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	if len(opt.Bymonth)+len(opt.Bymonthday)+len(opt.Byyearday)+len(opt.Byweekno)+len(opt.Byhour)+len(opt.Byminute) > 0 ||
		len(opt.Bysetpos) > 1 {
		return "", ErrUnsupportedRule
	}

	unit, ok := ph.units[opt.Freq]
	if !ok {
		return "", ErrUnsupportedRule
	}

	pos := 0
	if len(opt.Bysetpos) == 1 {
		pos = opt.Bysetpos[0]
	}
	days := make([]string, 0, len(opt.Byweekday))
	for _, wd := range opt.Byweekday {
		if n := wd.N(); n != 0 {
			if pos != 0 && pos != n {
				return "", ErrUnsupportedRule
			}
			pos = n
		}
		days = append(days, ph.weekdays[wd.Day()])
	}

	switch {
	case len(days) == 0:
		return ph.span(opt.Interval, unit), nil
	case pos != 0:
		ord, ok := ph.ordinals[pos]
		if !ok || len(days) != 1 || opt.Freq != rrule.MONTHLY || opt.Interval > 1 {
			return "", ErrUnsupportedRule
		}
		return ph.every + " " + ord + " " + days[0], nil
	case opt.Freq == rrule.WEEKLY && opt.Interval <= 1:
		if workdays(opt.Byweekday) {
			return ph.workdays, nil
		}
		return ph.every + " " + ph.join(days), nil
	default:
		return ph.span(opt.Interval, unit) + " " + ph.on + " " + ph.join(days), nil
	}
}

func (ph phrases) span(interval int, unit [2]string) string {
	if interval <= 1 {
		return ph.every + " " + unit[0]
	}
	return ph.every + " " + strconv.Itoa(interval) + " " + unit[1]
}

func (ph phrases) join(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " " + ph.and + " " + items[len(items)-1]
}

// workdays reports whether days is exactly Monday to Friday.
func workdays(days []rrule.Weekday) bool {
	if len(days) != 5 {
		return false
	}
	for i, wd := range days {
		if wd.Day() != i || wd.N() != 0 {
			return false
		}
	}
	return true
}
