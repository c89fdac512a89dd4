package http

import (
	"github.com/gin-gonic/gin"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/pkg/response"
)

// Parse godoc
// @Summary     Parse a task line
// @Description Extracts title, dates, priority, status, tags, contexts, projects, recurrence and estimate
// @Description from natural-language text. Lines after the first become the details.
// @Tags        Parser
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Validation failed"
// @Failure     429  {object} response.Resp "Too many requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		h.bindError(c, err)
		return
	}

	pack, code, err := h.resolvePack(req.Language, req.vocabulary())
	if err != nil {
		h.l.Warnf(ctx, "parser.delivery.http.Parse.resolvePack: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	task, err := h.uc.Parse(ctx, pack, req.toInput(h.defaultToScheduled))
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	preview, err := h.uc.Preview(ctx, pack, task)
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(code, task, preview))
}

// Preview godoc
// @Summary     Preview a task
// @Description Describes the populated fields of a parsed task in the chosen language.
// @Tags        Parser
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Task to describe"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Validation failed"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		h.bindError(c, err)
		return
	}

	pack, code, err := h.resolvePack(req.Language, language.Options{})
	if err != nil {
		h.l.Warnf(ctx, "parser.delivery.http.Preview.resolvePack: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	entries, err := h.uc.Preview(ctx, pack, req.Task.toModel())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, previewResp{Preview: newPreviewResp(entries), Language: code})
}

// Languages godoc
// @Summary     List languages
// @Description Returns the active language and every supported language.
// @Tags        Languages
// @Produce     json
// @Success     200 {object} languagesResp
// @Router      /api/v1/languages [GET]
func (h *handler) Languages(c *gin.Context) {
	response.OK(c, languagesResp{
		Current:   h.registry.Current(),
		Supported: h.registry.Supported(),
	})
}

// SelectLanguage godoc
// @Summary     Select the active language
// @Description Sets the language used when a request names none. Regional tags such as es-MX are accepted.
// @Tags        Languages
// @Accept      json
// @Produce     json
// @Param       body body selectLanguageReq true "Language code"
// @Success     200  {object} selectLanguageResp
// @Failure     400  {object} response.Resp "Unsupported language"
// @Failure     422  {object} response.Resp "Validation failed"
// @Router      /api/v1/languages/current [PUT]
func (h *handler) SelectLanguage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectLanguageReq(c)
	if err != nil {
		h.bindError(c, err)
		return
	}

	code, err := h.registry.Select(req.Code)
	if err != nil {
		h.l.Warnf(ctx, "parser.delivery.http.SelectLanguage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.l.Infof(ctx, "active language set to %s", code)
	response.OK(c, selectLanguageResp{Current: code})
}
