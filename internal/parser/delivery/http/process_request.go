package http

import (
	"github.com/gin-gonic/gin"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/pkg/binding"
	"tasknotes-nlp/pkg/response"
)

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// processPreviewReq binds and validates the preview request body.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// processSelectLanguageReq binds and validates the language selection body.
func (h *handler) processSelectLanguageReq(c *gin.Context) (selectLanguageReq, error) {
	var req selectLanguageReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// bindError answers a failed bind: 422 with field messages, or 400 for a malformed body.
func (h *handler) bindError(c *gin.Context, err error) {
	h.l.Debugf(c.Request.Context(), "parser.delivery.http.bind: %v", err)
	if binding.IsValidation(err) {
		response.ValidationError(c, binding.Translate(err))
		return
	}
	response.Error(c, errInvalidBody, nil)
}

// resolvePack picks the pack for a request: the named or active language, compiled with the
// request's vocabulary when it carries one.
func (h *handler) resolvePack(lang string, opts language.Options) (language.Pack, language.Code, error) {
	code := h.registry.Current()
	if lang != "" {
		c, err := language.Normalize(lang)
		if err != nil {
			return nil, "", err
		}
		code = c
	}

	if len(opts.Priorities) == 0 && len(opts.Statuses) == 0 {
		p, err := h.registry.Lookup(string(code))
		return p, code, err
	}

	p, err := h.packs.get(code, opts)
	return p, code, err
}
