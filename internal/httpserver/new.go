package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/middleware"
	"tasknotes-nlp/internal/parser"
	tgDelivery "tasknotes-nlp/internal/parser/delivery/telegram"
	"tasknotes-nlp/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Parser domain
	parserUC           parser.UseCase
	registry           *language.Registry
	middleware         middleware.Middleware
	defaultToScheduled bool
	packCacheSize      int

	// Telegram preview bot
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Parser domain
	ParserUC           parser.UseCase
	Registry           *language.Registry
	Middleware         middleware.Middleware
	DefaultToScheduled bool
	PackCacheSize      int

	// Telegram preview bot (optional)
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		parserUC:           cfg.ParserUC,
		registry:           cfg.Registry,
		middleware:         cfg.Middleware,
		defaultToScheduled: cfg.DefaultToScheduled,
		packCacheSize:      cfg.PackCacheSize,
		telegramHandler:    cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.parserUC == nil {
		return errors.New("parser usecase is required")
	}
	if srv.registry == nil {
		return errors.New("language registry is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
