package datemath_test

import (
	"errors"
	"testing"
	"time"

	"tasknotes-nlp/pkg/datemath"
)

// Wednesday, May 1, 2024
var baseTime = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func TestNewRecognizer(t *testing.T) {
	if _, err := datemath.NewRecognizer(datemath.English, "Asia/Ho_Chi_Minh"); err != nil {
		t.Fatalf("unexpected error creating valid recognizer: %v", err)
	}

	if _, err := datemath.NewRecognizer(datemath.English, "Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}

	_, err := datemath.NewRecognizer("fr", "UTC")
	if !errors.Is(err, datemath.ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
}

type want struct {
	text    string
	date    string
	time    string // "" when the hour is not certain
	endDate string
	endTime string
}

func runRecognize(t *testing.T, locale datemath.Locale, tests []struct {
	name  string
	input string
	want  *want
}) {
	t.Helper()

	r, err := datemath.NewRecognizer(locale, "UTC")
	if err != nil {
		t.Fatalf("NewRecognizer: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := r.Recognize(tt.input, baseTime)
			if err != nil {
				t.Fatalf("Recognize: %v", err)
			}

			if tt.want == nil {
				if len(matches) != 0 {
					t.Fatalf("expected no match, got %+v", matches)
				}
				return
			}
			if len(matches) == 0 {
				t.Fatalf("expected a match in %q", tt.input)
			}

			m := matches[0]
			if m.Text != tt.want.text {
				t.Errorf("text = %q, want %q", m.Text, tt.want.text)
			}
			if got := m.Start.DateString(); got != tt.want.date {
				t.Errorf("date = %s, want %s", got, tt.want.date)
			}

			gotTime := ""
			if m.Start.HourCertain {
				gotTime = m.Start.TimeString()
			}
			if gotTime != tt.want.time {
				t.Errorf("time = %q, want %q", gotTime, tt.want.time)
			}

			if tt.want.endDate == "" {
				if m.End != nil {
					t.Errorf("unexpected range end %+v", *m.End)
				}
				return
			}
			if m.End == nil {
				t.Fatalf("expected range end %s", tt.want.endDate)
			}
			if got := m.End.DateString(); got != tt.want.endDate {
				t.Errorf("end date = %s, want %s", got, tt.want.endDate)
			}
			gotEndTime := ""
			if m.End.HourCertain {
				gotEndTime = m.End.TimeString()
			}
			if gotEndTime != tt.want.endTime {
				t.Errorf("end time = %q, want %q", gotEndTime, tt.want.endTime)
			}
		})
	}
}

func TestRecognizeEnglish(t *testing.T) {
	runRecognize(t, datemath.English, []struct {
		name  string
		input string
		want  *want
	}{
		{"Today", "call mom today", &want{text: "today", date: "2024-05-01"}},
		{"Tomorrow", "Call the doctor tomorrow", &want{text: "tomorrow", date: "2024-05-02"}},
		{"Yesterday", "yesterday", &want{text: "yesterday", date: "2024-04-30"}},
		{"Day after tomorrow", "the day after tomorrow", &want{text: "the day after tomorrow", date: "2024-05-03"}},
		{"ISO", "report 2024-03-15 urgent", &want{text: "2024-03-15", date: "2024-03-15"}},
		{"ISO with time", "2024-03-15T09:45", &want{text: "2024-03-15T09:45", date: "2024-03-15", time: "09:45"}},
		{"Invalid day passes through", "2024-02-30", &want{text: "2024-02-30", date: "2024-02-30"}},
		{"Weekday with clock", "Team meeting Friday 15:00", &want{text: "Friday 15:00", date: "2024-05-03", time: "15:00"}},
		{"Weekday at pm", "friday at 3pm", &want{text: "friday at 3pm", date: "2024-05-03", time: "15:00"}},
		{"Same weekday is today", "wednesday", &want{text: "wednesday", date: "2024-05-01"}},
		{"Next Monday (from Wed)", "next monday", &want{text: "next monday", date: "2024-05-06"}},
		{"Next Wednesday (from Wed)", "next wednesday", &want{text: "next wednesday", date: "2024-05-08"}},
		{"Last Friday", "last friday", &want{text: "last friday", date: "2024-04-26"}},
		{"In 3 days", "in 3 days", &want{text: "in 3 days", date: "2024-05-04"}},
		{"In 2 weeks", "in two weeks", &want{text: "in two weeks", date: "2024-05-15"}},
		{"In 1 month", "in a month", &want{text: "in a month", date: "2024-06-01"}},
		{"In 2 hours", "in 2 hours", &want{text: "in 2 hours", date: "2024-05-01", time: "17:30"}},
		{"From now", "3 days from now", &want{text: "3 days from now", date: "2024-05-04"}},
		{"Next week", "next week", &want{text: "next week", date: "2024-05-08"}},
		{"Month day", "March 15th", &want{text: "March 15th", date: "2025-03-15"}},
		{"Month day year", "Mar 15, 2024", &want{text: "Mar 15, 2024", date: "2024-03-15"}},
		{"Day month", "15 of june", &want{text: "15 of june", date: "2024-06-15"}},
		{"Slash US", "6/7", &want{text: "6/7", date: "2024-06-07"}},
		{"Time alone later today", "at 5pm", &want{text: "5pm", date: "2024-05-01", time: "17:00"}},
		{"Time alone already passed", "9:00", &want{text: "9:00", date: "2024-05-02", time: "09:00"}},
		{"Time then date", "3pm tomorrow", &want{text: "3pm tomorrow", date: "2024-05-02", time: "15:00"}},
		{"Noon", "tomorrow at noon", &want{text: "tomorrow at noon", date: "2024-05-02", time: "12:00"}},
		{"Morning is uncertain", "tomorrow morning", &want{text: "tomorrow morning", date: "2024-05-02"}},
		{"Range of weekdays", "from monday to friday", &want{text: "from monday to friday", date: "2024-05-06", endDate: "2024-05-10"}},
		{"Range of times", "tomorrow 10:00-12:00", &want{text: "tomorrow 10:00-12:00", date: "2024-05-02", time: "10:00", endDate: "2024-05-02", endTime: "12:00"}},
		{"Between", "between may 3 and may 5", &want{text: "between may 3 and may 5", date: "2024-05-03", endDate: "2024-05-05"}},
		{"Month day range", "March 3-5", &want{text: "March 3-5", date: "2025-03-03", endDate: "2025-03-05"}},
		{"Word inside other word", "sundayish plans", nil},
		{"Nothing", "buy milk", nil},
	})
}

func TestRecognizeSpanish(t *testing.T) {
	runRecognize(t, datemath.Spanish, []struct {
		name  string
		input string
		want  *want
	}{
		{"Hoy", "llamar hoy", &want{text: "hoy", date: "2024-05-01"}},
		{"Mañana", "Llamar al médico mañana", &want{text: "mañana", date: "2024-05-02"}},
		{"Pasado mañana", "pasado mañana", &want{text: "pasado mañana", date: "2024-05-03"}},
		{"La mañana is not tomorrow", "correr por la mañana", &want{text: "por la mañana", date: "2024-05-01"}},
		{"Viernes a las", "reunión el viernes a las 3 de la tarde", &want{text: "el viernes a las 3 de la tarde", date: "2024-05-03", time: "15:00"}},
		{"Miércoles sin tilde", "miercoles", &want{text: "miercoles", date: "2024-05-01"}},
		{"Próximo lunes", "el próximo lunes", &want{text: "el próximo lunes", date: "2024-05-06"}},
		{"Sábado que viene", "el sábado que viene", &want{text: "el sábado que viene", date: "2024-05-04"}},
		{"Día de mes", "el 15 de marzo de 2025", &want{text: "el 15 de marzo de 2025", date: "2025-03-15"}},
		{"Barra D/M", "7/6", &want{text: "7/6", date: "2024-06-07"}},
		{"En 3 días", "en 3 días", &want{text: "en 3 días", date: "2024-05-04"}},
		{"Semana que viene", "la semana que viene", &want{text: "la semana que viene", date: "2024-05-08"}},
		{"Próximo mes", "el próximo mes", &want{text: "el próximo mes", date: "2024-06-01"}},
		{"Hora 24h", "mañana 15:00", &want{text: "mañana 15:00", date: "2024-05-02", time: "15:00"}},
		{"Mediodía", "hoy a mediodía", &want{text: "hoy a mediodía", date: "2024-05-01", time: "12:00"}},
		{"Rango de días", "del 3 al 5 de junio", &want{text: "del 3 al 5 de junio", date: "2024-06-03", endDate: "2024-06-05"}},
		{"De lunes a viernes", "de lunes a viernes", &want{text: "de lunes a viernes", date: "2024-05-06", endDate: "2024-05-10"}},
		{"Nada", "comprar leche", nil},
	})
}

func TestComponentsDate(t *testing.T) {
	tests := []struct {
		name string
		c    datemath.Components
		ok   bool
	}{
		{"valid", datemath.Components{Year: 2024, Month: 2, Day: 29}, true},
		{"non-existent day", datemath.Components{Year: 2024, Month: 2, Day: 30}, false},
		{"bad month", datemath.Components{Year: 2024, Month: 13, Day: 1}, false},
		{"bad certain hour", datemath.Components{Year: 2024, Month: 1, Day: 1, Hour: 24, HourCertain: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.c.Date(time.UTC); ok != tt.ok {
				t.Errorf("Date() ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}
