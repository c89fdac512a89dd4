package telegram

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/parser"
	pkgLog "tasknotes-nlp/pkg/log"
	pkgTelegram "tasknotes-nlp/pkg/telegram"
)

const (
	maxChats    = 10000
	chatLangTTL = 24 * time.Hour
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config carries the parse defaults the bot applies to every message.
type Config struct {
	DefaultToScheduled bool
}

type handler struct {
	l                  pkgLog.Logger
	uc                 parser.UseCase
	registry           *language.Registry
	bot                *pkgTelegram.Bot
	chatLangs          *expirable.LRU[int64, language.Code]
	defaultToScheduled bool
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc parser.UseCase, registry *language.Registry, bot *pkgTelegram.Bot, cfg Config) Handler {
	return &handler{
		l:                  l,
		uc:                 uc,
		registry:           registry,
		bot:                bot,
		chatLangs:          expirable.NewLRU[int64, language.Code](maxChats, nil, chatLangTTL),
		defaultToScheduled: cfg.DefaultToScheduled,
	}
}
