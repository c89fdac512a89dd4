package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/parser"
	pkgLog "tasknotes-nlp/pkg/log"
	pkgResponse "tasknotes-nlp/pkg/response"
	pkgTelegram "tasknotes-nlp/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges at once and replies to the chat from a background goroutine.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	requestID := pkgLog.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	go func() {
		// the request context is cancelled once the response is written
		bgCtx := pkgLog.WithRequestID(context.Background(), requestID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, messages[h.chatLanguage(msg)].failed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage answers commands or replies with the preview of the parsed task.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	code := h.chatLanguage(msg)
	r := messages[code]

	cmd, arg := splitCommand(text)
	switch cmd {
	case "/start":
		return h.bot.SendMessage(ctx, msg.Chat.ID, r.welcome)
	case "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID, fmt.Sprintf(r.help, h.supportedCodes()))
	case "/lang":
		return h.selectLanguage(ctx, msg.Chat.ID, code, arg)
	}

	pack, err := h.registry.Lookup(string(code))
	if err != nil {
		return err
	}

	task, err := h.uc.Parse(ctx, pack, parser.ParseInput{
		Text:               text,
		DefaultToScheduled: h.defaultToScheduled,
	})
	if err != nil {
		return fmt.Errorf("uc.Parse: %w", err)
	}

	entries, err := h.uc.Preview(ctx, pack, task)
	if err != nil {
		return fmt.Errorf("uc.Preview: %w", err)
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Text
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, strings.Join(lines, "\n"))
}

func (h *handler) selectLanguage(ctx context.Context, chatID int64, current language.Code, arg string) error {
	r := messages[current]
	if arg == "" {
		return h.bot.SendMessage(ctx, chatID, fmt.Sprintf(r.langCurrent, current, h.supportedCodes()))
	}

	code, err := language.Normalize(arg)
	if err != nil {
		return h.bot.SendMessage(ctx, chatID, fmt.Sprintf(r.langUnknown, arg, h.supportedCodes()))
	}

	h.chatLangs.Add(chatID, code)
	h.l.Infof(ctx, "telegram handler: chat %d language set to %s", chatID, code)
	return h.bot.SendMessage(ctx, chatID, fmt.Sprintf(messages[code].langSet, code))
}

// chatLanguage is the language chosen with /lang, else the sender's Telegram language when
// supported, else the service default.
func (h *handler) chatLanguage(msg *pkgTelegram.Message) language.Code {
	if code, ok := h.chatLangs.Get(msg.Chat.ID); ok {
		return code
	}
	if msg.From != nil && msg.From.LanguageCode != "" {
		if code, err := language.Normalize(msg.From.LanguageCode); err == nil {
			return code
		}
	}
	return h.registry.Current()
}

func (h *handler) supportedCodes() string {
	codes := make([]string, len(language.Codes))
	for i, c := range language.Codes {
		codes[i] = string(c)
	}
	return strings.Join(codes, ", ")
}

// splitCommand splits "/lang@my_bot es" into ("/lang", "es"). Non-commands return ("", "").
func splitCommand(text string) (string, string) {
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}
	cmd, arg, _ := strings.Cut(text, " ")
	if at := strings.Index(cmd, "@"); at >= 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}
