package telegram_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/parser/delivery/telegram"
	"tasknotes-nlp/internal/parser/usecase"
	"tasknotes-nlp/pkg/log"
	pkgTelegram "tasknotes-nlp/pkg/telegram"
)

type captured struct {
	mu   sync.Mutex
	msgs []string
}

func (c *captured) add(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, s)
}

func (c *captured) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}

// wait blocks until at least n messages arrived or the timeout passed.
func (c *captured) wait(n int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if msgs := c.snapshot(); len(msgs) >= n {
			return msgs
		}
		time.Sleep(10 * time.Millisecond)
	}
	return c.snapshot()
}

type testEnv struct {
	engine   *gin.Engine
	messages *captured
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	messages := &captured{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			var payload pkgTelegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&payload)
			messages.add(payload.Text)
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	l := log.NewNop()
	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	uc, err := usecase.New(l, "UTC")
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}
	reg, err := language.NewRegistry("en", language.Options{})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	engine := gin.New()
	h := telegram.New(l, uc, reg, bot, telegram.Config{DefaultToScheduled: true})
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{engine: engine, messages: messages}
}

func (env *testEnv) send(t *testing.T, text, userLang string) {
	t.Helper()
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456, LanguageCode: userLang},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env := newTestEnv(t)

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 1})
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if msgs := env.messages.wait(1, 100*time.Millisecond); len(msgs) != 0 {
		t.Errorf("expected no reply, got %v", msgs)
	}
}

func TestHandleCommands(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		userLang string
		want     string
	}{
		{"Start", "/start", "", "Welcome!"},
		{"Start in the sender's language", "/start", "es-419", "¡Hola!"},
		{"Help lists languages", "/help@tasknotes_bot", "", "(en, es)"},
		{"Current language", "/lang", "", "Current language: en"},
		{"Unknown language", "/lang klingon", "", `Unsupported language "klingon"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.send(t, tt.text, tt.userLang)
			assertContains(t, env.messages.wait(1, time.Second), tt.want)
		})
	}
}

func TestHandlePreview(t *testing.T) {
	env := newTestEnv(t)

	env.send(t, "Buy milk #shopping high priority", "")
	msgs := env.messages.wait(1, time.Second)
	assertContains(t, msgs, `Title: "Buy milk"`)
	assertContains(t, msgs, "Priority: high")
	assertContains(t, msgs, "Tags: #shopping")
}

func TestHandleLangSwitch(t *testing.T) {
	env := newTestEnv(t)

	env.send(t, "/lang es-MX", "en")
	assertContains(t, env.messages.wait(1, time.Second), "Idioma cambiado a es")

	env.send(t, "Gimnasio los lunes y miércoles", "en")
	msgs := env.messages.wait(2, time.Second)
	assertContains(t, msgs, `Título: "Gimnasio"`)
	assertContains(t, msgs, "Recurrencia:")
}
