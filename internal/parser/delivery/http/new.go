package http

import (
	"github.com/gin-gonic/gin"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/parser"
	"tasknotes-nlp/pkg/binding"
	"tasknotes-nlp/pkg/log"
)

// Handler is the public interface for the parser HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Preview(c *gin.Context)
	Languages(c *gin.Context)
	SelectLanguage(c *gin.Context)
}

// Config carries service-wide parse defaults.
type Config struct {
	// DefaultToScheduled applies when a request leaves default_to_scheduled unset.
	DefaultToScheduled bool
	// PackCacheSize bounds the packs compiled for request vocabularies.
	PackCacheSize int
}

type handler struct {
	l                  log.Logger
	uc                 parser.UseCase
	registry           *language.Registry
	packs              *packCache
	defaultToScheduled bool
}

// New creates a new HTTP handler for the parser domain.
func New(l log.Logger, uc parser.UseCase, registry *language.Registry, cfg Config) (Handler, error) {
	packs, err := newPackCache(cfg.PackCacheSize)
	if err != nil {
		return nil, err
	}

	binding.Init()

	return &handler{
		l:                  l,
		uc:                 uc,
		registry:           registry,
		packs:              packs,
		defaultToScheduled: cfg.DefaultToScheduled,
	}, nil
}
