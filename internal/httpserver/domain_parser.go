package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	parserHTTP "tasknotes-nlp/internal/parser/delivery/http"
)

// setupParserDomain registers /api/v1/tasks and /api/v1/languages.
func (srv HTTPServer) setupParserDomain(ctx context.Context, api *gin.RouterGroup) error {
	h, err := parserHTTP.New(srv.l, srv.parserUC, srv.registry, parserHTTP.Config{
		DefaultToScheduled: srv.defaultToScheduled,
		PackCacheSize:      srv.packCacheSize,
	})
	if err != nil {
		return err
	}

	parserHTTP.RegisterRoutes(api, h, srv.middleware)

	srv.l.Infof(ctx, "Parser domain registered (language: %s)", srv.registry.Current())
	return nil
}
