package language

import (
	"regexp"

	"github.com/teambition/rrule-go"
)

const (
	esWeekday  = `lunes|martes|miércoles|miercoles|jueves|viernes|sábado|sabado|domingo`
	esWeekdays = `lunes|martes|miércoles|miercoles|jueves|viernes|sábados|sabados|domingos`
	esOrdinal  = `primer|primero|primera|segundo|segunda|tercer|tercero|tercera|cuarto|cuarta|último|ultimo|última|ultima`
	esCount    = `\d+|dos|tres|cuatro|cinco|seis|siete|ocho|nueve|diez`
	esUnit     = `días|dias|día|dia|semanas|semana|meses|mes|años|año`
	esListSep  = `\s*,\s*(?:y\s+)?|\s+y\s+`
)

var esEstimateGuard = regexp.MustCompile(`(?i)(?:^|\s)(?:en|dentro\s+de|a\s+las?|las)\s+$`)

func spanishTable() *table {
	return &table{
		code: Spanish,
		priorities: []vocab{
			{value: "urgent", words: `urgente|crítico|crítica|critico|critica|máxima|maxima|muy\s+alta`},
			{value: "high", words: `alta|alto|importante`},
			{value: "normal", words: `media|medio|normal|regular`},
			{value: "low", words: `baja|bajo|menor|mínima|minima`},
		},
		priorityForm: `(?:prioridad\s+)?(?:%s)(?:\s+(?:de\s+)?prioridad)?`,
		statuses: []vocab{
			{value: "open", words: `pendiente|por\s+hacer|abierto|abierta`},
			{value: "in-progress", words: `en\s+progreso|en\s+proceso|en\s+curso|haciendo|trabajando`},
			{value: "done", words: `hecho|hecha|completado|completada|terminado|terminada|finalizado|finalizada`},
			{value: "cancelled", words: `cancelado|cancelada`},
			{value: "waiting", words: `esperando|bloqueado|bloqueada|en\s+espera`},
		},
		triggers: []Trigger{
			trigger(`vence\s+(?:el\s+)?`, DateDue),
			trigger(`fecha\s+(?:límite|limite)(?:\s*:)?\s+(?:(?:el|del)\s+)?`, DateDue),
			trigger(`debe\s+estar\s+(?:terminad[oa]|list[oa])\s+(?:(?:para\s+)?el\s+)?`, DateDue),
			trigger(`para\s+el\s+`, DateDue),
			trigger(`antes\s+del?\s+`, DateDue),
			trigger(`programad[oa]\s+(?:para\s+)?(?:el\s+)?`, DateScheduled),
			trigger(`(?:empezar|comenzar|trabajar|iniciar)\s+(?:el\s+)?`, DateScheduled),
			trigger(`a\s+partir\s+del?\s+`, DateScheduled),
		},
		recurrence: []RecurrencePattern{
			handler(`cada\s+(`+esOrdinal+`)\s+(`+esWeekday+`)(?:\s+del?\s+mes)?`, RuleOrdinalWeekday),
			handler(`(?:el\s+)?(`+esOrdinal+`)\s+(`+esWeekday+`)\s+de\s+cada\s+mes`, RuleOrdinalWeekday),
			handler(`cada\s+(`+esCount+`)\s+(`+esUnit+`)`, RuleInterval),
			static(`quincenal(?:mente)?`, "FREQ=WEEKLY;INTERVAL=2"),
			static(`cada\s+(?:día|dia)\s+laborable|(?:los\s+)?(?:días|dias)\s+laborables|entre\s+semana`, "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"),
			handler(`cada\s+(`+list(esWeekday, esListSep)+`)`, RuleWeekday),
			handler(`(?:todos\s+)?los\s+(`+list(esWeekdays, esListSep)+`)`, RuleWeekday),
			static(`diariamente|a\s+diario|diario|diaria|cada\s+(?:día|dia)|todos\s+los\s+(?:días|dias)`, "FREQ=DAILY"),
			static(`semanalmente|semanal|cada\s+semana|todas\s+las\s+semanas`, "FREQ=WEEKLY"),
			static(`mensualmente|mensual|cada\s+mes|todos\s+los\s+meses`, "FREQ=MONTHLY"),
			static(`anualmente|anual|cada\s+año|todos\s+los\s+años`, "FREQ=YEARLY"),
		},
		estimates: []EstimatePattern{
			estimate(`(?:~\s*)?(\d+)\s*h(?:oras?|rs?)?\s*(?:y\s+)?(\d+)\s*m(?:inutos?|ins?)?`, EstimateHoursMinutes, esEstimateGuard),
			estimate(`(?:~\s*)?(\d+(?:[.,]\d+)?)\s*(?:horas?|hrs?|h)`, EstimateHours, esEstimateGuard),
			estimate(`(?:~\s*)?(\d+)\s*(?:minutos?|mins?|m)`, EstimateMinutes, esEstimateGuard),
			estimate(`(?:~\s*|(?:duración|duracion|estimado|estimación|estimacion|dura)\s*:?\s*)(\d{1,2}):([0-5]\d)`, EstimateClock, nil),
		},
		cues: Cues{
			Due:       mustMatcher(`vence|vencimiento|límite|limite|para\s+el|antes\s+del?|hasta(?:\s+el)?`),
			Scheduled: mustMatcher(`programad[oa]|empezar|empieza|comenzar|comienza|desde(?:\s+el)?|a\s+partir\s+del?`),
		},
		lexicon: &Lexicon{
			weekdays: map[string]string{
				"lunes": "MO", "martes": "TU", "miercoles": "WE", "jueves": "TH", "viernes": "FR",
				"sabado": "SA", "sabados": "SA", "domingo": "SU", "domingos": "SU",
			},
			ordinals: map[string]int{
				"primer": 1, "primero": 1, "primera": 1, "segundo": 2, "segunda": 2,
				"tercer": 3, "tercero": 3, "tercera": 3, "cuarto": 4, "cuarta": 4,
				"ultimo": -1, "ultima": -1,
			},
			units: map[string]string{
				"dia": "DAILY", "dias": "DAILY", "semana": "WEEKLY", "semanas": "WEEKLY",
				"mes": "MONTHLY", "meses": "MONTHLY", "ano": "YEARLY", "anos": "YEARLY",
			},
			counts: map[string]int{
				"dos": 2, "tres": 3, "cuatro": 4, "cinco": 5, "seis": 6, "siete": 7, "ocho": 8, "nueve": 9, "diez": 10,
			},
			listSep: regexp.MustCompile(`(?i)` + esListSep),
		},
		placeholder: "Tarea sin título",
		labels: Labels{
			Title:             "Título",
			Details:           "Detalles",
			Due:               "Vence",
			Scheduled:         "Programado",
			Priority:          "Prioridad",
			Status:            "Estado",
			Contexts:          "Contextos",
			Projects:          "Proyectos",
			Tags:              "Etiquetas",
			Recurrence:        "Recurrencia",
			Estimate:          "Estimación",
			At:                "a las",
			Minutes:           "min",
			InvalidRecurrence: "Recurrencia inválida",
		},
		phrases: phrases{
			every: "cada",
			units: map[rrule.Frequency][2]string{
				rrule.DAILY:   {"día", "días"},
				rrule.WEEKLY:  {"semana", "semanas"},
				rrule.MONTHLY: {"mes", "meses"},
				rrule.YEARLY:  {"año", "años"},
			},
			weekdays: [7]string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"},
			ordinals: map[int]string{1: "primer", 2: "segundo", 3: "tercer", 4: "cuarto", -1: "último"},
			and:      "y",
			on:       "el",
			workdays: "cada día laborable",
		},
	}
}
