package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/api"
)

// NewTestEcho cria uma instância do Echo para testes de handler.
func NewTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	return e
}
