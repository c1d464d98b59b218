package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/pkg/logger"
)

// ErrorResponse é o formato único de erro da API: um campo erro com a mensagem.
type ErrorResponse struct {
	Erro string `json:"erro"`
}

// CustomHTTPErrorHandler traduz erros não tratados pelos handlers.
// Rotas inexistentes viram 404 com a mensagem padrão da API.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code     = http.StatusInternalServerError
		mensagem = "Erro interno do servidor"
	)

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			mensagem = m
		} else {
			mensagem = http.StatusText(code)
		}
	}

	if code == http.StatusNotFound || code == http.StatusMethodNotAllowed {
		code = http.StatusNotFound
		mensagem = "Rota não encontrada"
	}

	if code >= 500 {
		logger.Error("erro do servidor",
			zap.Int("status", code),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	if err := c.JSON(code, ErrorResponse{Erro: mensagem}); err != nil {
		logger.Error("falha ao enviar resposta de erro", zap.Error(err))
	}
}
