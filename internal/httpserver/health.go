package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/parser"
	pkgErrors "tasknotes-nlp/pkg/errors"
	"tasknotes-nlp/pkg/response"
)

const (
	ServiceName    = "tasknotes-nlp"
	ServiceVersion = "1.0.0"

	// readySample must parse to a task with a scheduled date in every language.
	readySample = "2024-01-02"
)

var errSampleMissed = errors.New("sample date not recognized")

type healthResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type readyResp struct {
	healthResp
	Language  language.Code   `json:"language"`
	Languages []language.Code `json:"languages"`
	Telegram  bool            `json:"telegram"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Service: ServiceName, Version: ServiceVersion}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck parses a sample date with the active pack, so a broken recognizer reports not ready.
// @Summary Readiness Check
// @Description Parses a sample line with the active language and reports the parser setup
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Parser is not usable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	pack := srv.registry.Pack()
	task, err := srv.parserUC.Parse(c.Request.Context(), pack, parser.ParseInput{
		Text:               readySample,
		Now:                time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DefaultToScheduled: true,
	})
	if err == nil && task.ScheduledDate != readySample {
		err = errSampleMissed
	}
	if err != nil {
		srv.l.Errorf(c.Request.Context(), "httpserver.readyCheck: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "parser not ready"), nil)
		return
	}

	supported := srv.registry.Supported()
	codes := make([]language.Code, 0, len(supported))
	for _, info := range supported {
		codes = append(codes, info.Code)
	}

	response.OK(c, readyResp{
		healthResp: newHealthResp("ready"),
		Language:   pack.Code(),
		Languages:  codes,
		Telegram:   srv.telegramHandler != nil,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
