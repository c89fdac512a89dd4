package datemath

import (
	"regexp"
	"strings"
	"time"

	"tasknotes-nlp/pkg/textnorm"
)

const (
	esMonthAlt   = `enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|setiembre|octubre|noviembre|diciembre`
	esWeekdayAlt = `lunes|martes|miércoles|miercoles|jueves|viernes|sábado|sabado|domingo`
	esCountAlt   = `\d+|un|una|uno|dos|tres|cuatro|cinco|seis|siete|ocho|nueve|diez`
	esUnitAlt    = `minutos?|mins?|horas?|días?|dias?|semanas?|meses|mes|años?|anos?`
	esMeridiem   = `a\.?\s?m\.?|p\.?\s?m\.?`
	esPeriodAlt  = `mañana|manana|tarde|noche`
)

var esMonths = map[string]int{
	"enero": 1, "febrero": 2, "marzo": 3, "abril": 4, "mayo": 5, "junio": 6, "julio": 7,
	"agosto": 8, "septiembre": 9, "setiembre": 9, "octubre": 10, "noviembre": 11, "diciembre": 12,
}

// keys are folded
var esWeekdays = map[string]time.Weekday{
	"domingo": time.Sunday, "lunes": time.Monday, "martes": time.Tuesday, "miercoles": time.Wednesday,
	"jueves": time.Thursday, "viernes": time.Friday, "sabado": time.Saturday,
}

func spanishRules() *ruleSet {
	return &ruleSet{
		dates: []rule{
			newRule(`(\d{4})-(\d{1,2})-(\d{1,2})(?:T(\d{2}):(\d{2}))?`, buildISO),
			newRule(`(?:del?\s+)?(\d{1,2})\s+(?:al?|-|–)\s+(\d{1,2})\s+de\s+(`+esMonthAlt+`)(?:\s+(?:de|del)\s+(\d{4}))?`,
				func(s *scan, g []string, _ int) (part, bool) {
					p := s.calendar(g[4], esMonths[textnorm.Fold(g[3])], atoi(g[1]))
					end := p.comp
					end.Day = atoi(g[2])
					p.end = &end
					return p, true
				}),
			newRule(`(?:el\s+)?(?:(?:día|dia)\s+)?(\d{1,2})\s+de\s+(`+esMonthAlt+`)(?:\s+(?:de|del)\s+(\d{4}))?`,
				func(s *scan, g []string, _ int) (part, bool) {
					return s.calendar(g[3], esMonths[textnorm.Fold(g[2])], atoi(g[1])), true
				}),
			newRule(`(?:el\s+)?(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?`,
				func(s *scan, g []string, _ int) (part, bool) {
					return s.calendar(g[3], atoi(g[2]), atoi(g[1])), true
				}),
			newRule(`pasado\s+(?:mañana|manana)|mañana|manana|hoy|ayer|esta\s+noche`,
				func(s *scan, g []string, start int) (part, bool) {
					word := textnorm.Fold(g[0])
					switch {
					case strings.HasPrefix(word, "pasado"):
						return part{comp: fromDate(s.day(2)), hasDate: true}, true
					case word == "manana":
						// "la mañana" and "esta mañana" name a time of day, not tomorrow
						if prev := previousWord(s.text, start); prev == "la" || prev == "esta" {
							return part{}, false
						}
						return part{comp: fromDate(s.day(1)), hasDate: true}, true
					case word == "ayer":
						return part{comp: fromDate(s.day(-1)), hasDate: true}, true
					case word == "esta noche":
						c := fromDate(s.day(0))
						c.Hour = 20
						return part{comp: c, hasDate: true}, true
					}
					return part{comp: fromDate(s.day(0)), hasDate: true}, true
				}),
			newRule(`(?:(el|este|el\s+próximo|el\s+proximo|próximo|proximo)\s+)?(`+esWeekdayAlt+`)(?:\s+(que\s+viene|próximo|proximo|pasado))?`,
				func(s *scan, g []string, _ int) (part, bool) {
					mode := weekdayNearest
					modifier := textnorm.Fold(g[1] + " " + g[3])
					switch {
					case strings.Contains(modifier, "proximo"), strings.Contains(modifier, "que viene"):
						mode = weekdayNext
					case strings.Contains(modifier, "pasado"):
						mode = weekdayLast
					}
					return s.weekday(esWeekdays[textnorm.Fold(g[2])], mode), true
				}),
			newRule(`(?:en|dentro\s+de)\s+(`+esCountAlt+`)\s+(`+esUnitAlt+`)`,
				func(s *scan, g []string, _ int) (part, bool) {
					n, ok := parseCount(g[1])
					if !ok {
						return part{}, false
					}
					return s.shift(n, g[2])
				}),
			newRule(`(?:la\s+)?(?:próxima|proxima)\s+semana|(?:la\s+)?semana\s+que\s+viene`,
				func(s *scan, _ []string, _ int) (part, bool) {
					return s.shift(1, "semana")
				}),
			newRule(`(?:el\s+)?(?:próximo|proximo)\s+(mes|año|ano)|(?:el\s+)?(mes|año|ano)\s+que\s+viene`,
				func(s *scan, g []string, _ int) (part, bool) {
					return s.shift(1, g[1]+g[2])
				}),
		},
		times: []rule{
			newRule(`a\s+las?\s+(\d{1,2})(?::(\d{2}))?(?:\s*(`+esMeridiem+`)|\s+(?:de|en|por)\s+la\s+(`+esPeriodAlt+`)|\s*h\b)?`, buildSpanishClock),
			newRule(`(\d{1,2}):(\d{2})(?:\s*(`+esMeridiem+`)|\s+(?:de|en|por)\s+la\s+(`+esPeriodAlt+`))?`, buildSpanishClock),
			newRule(`(\d{1,2})()\s*(`+esMeridiem+`)()`, buildSpanishClock),
			newRule(`(?:a\s+)?(?:mediodía|mediodia|medianoche)`,
				func(s *scan, g []string, _ int) (part, bool) {
					if strings.HasSuffix(textnorm.Fold(g[0]), "medianoche") {
						return s.clock(0, 0, true), true
					}
					return s.clock(12, 0, true), true
				}),
			newRule(`(?:por|en|de)\s+la\s+(`+esPeriodAlt+`)`,
				func(s *scan, g []string, _ int) (part, bool) {
					hour := map[string]int{"manana": 9, "tarde": 15, "noche": 20}[textnorm.Fold(g[1])]
					return s.clock(hour, 0, false), true
				}),
		},
		timeLead:     regexp.MustCompile(`(?i)^\s*(?:,\s*)?`),
		dateLead:     regexp.MustCompile(`(?i)^\s*(?:,\s*)?`),
		rangeOpen:    regexp.MustCompile(`(?i)(?:^|\s)(desde|del|de|entre)\s+$`),
		rangeSep:     regexp.MustCompile(`(?i)^\s*(?:(?:-|–)\s*|(?:al|a|hasta)\s+)`),
		betweenSep:   regexp.MustCompile(`(?i)^\s*y\s+`),
		betweenWords: map[string]bool{"entre": true},
	}
}

// buildSpanishClock expects groups (hour, minute, meridiem, period of day).
func buildSpanishClock(s *scan, g []string, _ int) (part, bool) {
	hour, ok := meridiem(atoi(g[1]), g[3])
	if !ok {
		return part{}, false
	}
	if g[4] != "" {
		hour = dayPeriod(hour, g[4])
	}
	minute := atoi(g[2])
	if !validClock(hour, minute) {
		return part{}, false
	}
	return s.clock(hour, minute, true), true
}
