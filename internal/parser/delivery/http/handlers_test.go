package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/middleware"
	parserHTTP "tasknotes-nlp/internal/parser/delivery/http"
	"tasknotes-nlp/internal/parser/usecase"
	"tasknotes-nlp/pkg/log"
)

const refTime = "2024-05-01T15:30:00Z" // Wednesday

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Errors    json.RawMessage `json:"errors"`
}

type task struct {
	Title         string   `json:"title"`
	DueDate       string   `json:"due_date"`
	ScheduledDate string   `json:"scheduled_date"`
	ScheduledTime string   `json:"scheduled_time"`
	Priority      string   `json:"priority"`
	Status        string   `json:"status"`
	Tags          []string `json:"tags"`
	Contexts      []string `json:"contexts"`
	Projects      []string `json:"projects"`
}

type entry struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type parsed struct {
	Task     task    `json:"task"`
	Preview  []entry `json:"preview"`
	Language string  `json:"language"`
}

func setup(t *testing.T) (*gin.Engine, *language.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	uc, err := usecase.New(l, "UTC")
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}
	reg, err := language.NewRegistry("en", language.Options{})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	h, err := parserHTTP.New(l, uc, reg, parserHTTP.Config{DefaultToScheduled: true, PackCacheSize: 4})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := gin.New()
	parserHTTP.RegisterRoutes(r.Group("/api/v1"), h, middleware.New(l, middleware.Config{}))
	return r, reg
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return w.Code, env
}

func TestParse(t *testing.T) {
	r, _ := setup(t)

	tests := []struct {
		name string
		body string
		want parsed
	}{
		{
			name: "Default slot comes from config",
			body: `{"text":"Call the doctor tomorrow high priority #health","reference_time":"` + refTime + `"}`,
			want: parsed{
				Task:     task{Title: "Call the doctor", ScheduledDate: "2024-05-02", Priority: "high", Tags: []string{"health"}},
				Language: "en",
			},
		},
		{
			name: "Request overrides the default slot",
			body: `{"text":"Call mom tomorrow","default_to_scheduled":false,"reference_time":"` + refTime + `"}`,
			want: parsed{Task: task{Title: "Call mom", DueDate: "2024-05-02"}, Language: "en"},
		},
		{
			name: "Regional language tag",
			body: `{"text":"Entregar informe vence el viernes","language":"es-MX","reference_time":"` + refTime + `"}`,
			want: parsed{Task: task{Title: "Entregar informe", DueDate: "2024-05-03"}, Language: "es"},
		},
		{
			name: "Request vocabulary",
			body: `{"text":"Fix top bug urgent in review","reference_time":"` + refTime + `",
				"priorities":[{"id":"p1","label":"Top"}],"statuses":[{"id":"review","label":"In Review"}]}`,
			want: parsed{Task: task{Title: "Fix bug urgent", Priority: "p1", Status: "review"}, Language: "en"},
		},
		{
			name: "Empty text",
			body: `{"text":""}`,
			want: parsed{Task: task{Title: "Untitled task"}, Language: "en"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, r, http.MethodPost, "/api/v1/tasks/parse", tt.body)
			if code != http.StatusOK {
				t.Fatalf("status = %d, body %+v", code, env)
			}

			var got parsed
			if err := json.Unmarshal(env.Data, &got); err != nil {
				t.Fatalf("unmarshal data: %v", err)
			}

			g, w := got.Task, tt.want.Task
			if g.Title != w.Title || g.DueDate != w.DueDate || g.ScheduledDate != w.ScheduledDate ||
				g.Priority != w.Priority || g.Status != w.Status {
				t.Errorf("task = %+v, want %+v", g, w)
			}
			if len(g.Tags) != len(w.Tags) {
				t.Errorf("tags = %v, want %v", g.Tags, w.Tags)
			}
			if g.Contexts == nil || g.Projects == nil {
				t.Errorf("collections must encode as arrays: %+v", g)
			}
			if got.Language != tt.want.Language {
				t.Errorf("language = %q, want %q", got.Language, tt.want.Language)
			}
			if len(got.Preview) == 0 || got.Preview[0].Category != "title" {
				t.Errorf("preview = %+v", got.Preview)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	r, _ := setup(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Unsupported language", `{"text":"x","language":"fr"}`, http.StatusBadRequest},
		{"Ill-formed language", `{"text":"x","language":"not a code"}`, http.StatusUnprocessableEntity},
		{"Blank term id", `{"text":"x","priorities":[{"id":"  "}]}`, http.StatusUnprocessableEntity},
		{"Malformed JSON", `{"text":`, http.StatusBadRequest},
		{"Bad reference time", `{"text":"x","reference_time":"yesterday"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, r, http.MethodPost, "/api/v1/tasks/parse", tt.body)
			if code != tt.status {
				t.Errorf("status = %d, want %d (%+v)", code, tt.status, env)
			}
			if env.ErrorCode == 0 {
				t.Errorf("expected a non-zero error_code")
			}
			if code == http.StatusUnprocessableEntity && len(env.Errors) == 0 {
				t.Errorf("expected field errors")
			}
		})
	}
}

func TestPreview(t *testing.T) {
	r, _ := setup(t)

	body := `{"language":"es","task":{"title":"Correr","scheduled_date":"2024-05-02","scheduled_time":"07:00","recurrence":"FREQ=DAILY"}}`
	code, env := do(t, r, http.MethodPost, "/api/v1/tasks/preview", body)
	if code != http.StatusOK {
		t.Fatalf("status = %d, body %+v", code, env)
	}

	var got struct {
		Preview  []entry `json:"preview"`
		Language string  `json:"language"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}

	want := []entry{
		{"title", `Título: "Correr"`},
		{"scheduled", "Programado: 2024-05-02 a las 07:00"},
	}
	if got.Language != "es" || len(got.Preview) < len(want) {
		t.Fatalf("got %+v", got)
	}
	for i, w := range want {
		if got.Preview[i] != w {
			t.Errorf("entry %d = %+v, want %+v", i, got.Preview[i], w)
		}
	}

	code, _ = do(t, r, http.MethodPost, "/api/v1/tasks/preview", `{"task":{"due_date":"05/02/2024"}}`)
	if code != http.StatusUnprocessableEntity {
		t.Errorf("bad date status = %d, want 422", code)
	}
}

func TestLanguages(t *testing.T) {
	r, reg := setup(t)

	code, env := do(t, r, http.MethodGet, "/api/v1/languages", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var list struct {
		Current   string          `json:"current"`
		Supported []language.Info `json:"supported"`
	}
	json.Unmarshal(env.Data, &list)
	if list.Current != "en" || len(list.Supported) != len(language.Codes) {
		t.Errorf("languages = %+v", list)
	}

	code, env = do(t, r, http.MethodPut, "/api/v1/languages/current", `{"code":"es_ES"}`)
	if code != http.StatusOK {
		t.Fatalf("select status = %d (%+v)", code, env)
	}
	if reg.Current() != language.Spanish {
		t.Errorf("current = %s, want es", reg.Current())
	}

	// parse now uses Spanish when the request names no language
	code, env = do(t, r, http.MethodPost, "/api/v1/tasks/parse", `{"text":""}`)
	var got parsed
	json.Unmarshal(env.Data, &got)
	if code != http.StatusOK || got.Task.Title != "Tarea sin título" || got.Language != "es" {
		t.Errorf("parse after select = %d %+v", code, got)
	}

	code, _ = do(t, r, http.MethodPut, "/api/v1/languages/current", `{"code":"de"}`)
	if code != http.StatusBadRequest {
		t.Errorf("unsupported select status = %d, want 400", code)
	}
	if reg.Current() != language.Spanish {
		t.Errorf("failed select changed the language to %s", reg.Current())
	}
}
