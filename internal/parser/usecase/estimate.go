package usecase

import (
	"math"
	"strconv"
	"strings"

	"tasknotes-nlp/internal/language"
)

// extractEstimate sums every duration found. Each pattern consumes its matches before the next runs,
// so "1h30m" is not counted again as "1h" and "30m".
func (uc *implUseCase) extractEstimate(r *run) {
	total := 0
	for _, p := range r.pack.EstimatePatterns() {
		var spans []span
		for _, idx := range p.Matcher.FindAllIndex(r.text) {
			if p.Guard != nil && p.Guard.MatchString(r.text[:idx[0]]) {
				continue
			}
			minutes, ok := estimateMinutes(p.Kind, language.Groups(r.text, idx))
			if !ok {
				continue
			}
			total += minutes
			spans = append(spans, span{idx[0], idx[1]})
		}
		r.text = cutAll(r.text, spans)
	}

	if total > 0 {
		r.task.EstimateMinutes = total
	}
}

// maxEstimateMinutes bounds one duration; larger counts are left in the text.
const maxEstimateMinutes = 1_000_000

func estimateMinutes(kind language.EstimateKind, g []string) (int, bool) {
	var minutes float64
	switch kind {
	case language.EstimateHoursMinutes, language.EstimateClock:
		h, errH := strconv.ParseFloat(g[1], 64)
		m, errM := strconv.ParseFloat(g[2], 64)
		if errH != nil || errM != nil {
			return 0, false
		}
		minutes = h*60 + m
	case language.EstimateHours:
		h, err := strconv.ParseFloat(strings.Replace(g[1], ",", ".", 1), 64)
		if err != nil {
			return 0, false
		}
		minutes = math.Round(h * 60)
	case language.EstimateMinutes:
		m, err := strconv.ParseFloat(g[1], 64)
		if err != nil {
			return 0, false
		}
		minutes = m
	default:
		return 0, false
	}

	if !(minutes >= 0 && minutes <= maxEstimateMinutes) {
		return 0, false
	}
	return int(minutes), true
}
