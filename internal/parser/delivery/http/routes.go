package http

import (
	"github.com/gin-gonic/gin"

	"tasknotes-nlp/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Parsing routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.POST("/parse", h.Parse)
		tasks.POST("/preview", h.Preview)
	}

	languages := rg.Group("/languages")
	{
		languages.GET("", h.Languages)
		languages.PUT("/current", h.SelectLanguage)
	}
}
