package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupMiddleware registra os middlewares comuns da aplicação.
func SetupMiddleware(e *echo.Echo) {
	// ID de requisição
	e.Use(middleware.RequestID())

	// Log estruturado das requisições (zap)
	e.Use(RequestLogger())

	// Recuperação de pânico
	e.Use(middleware.Recover())

	// CORS liberado para o frontend
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.HEAD, echo.PUT, echo.PATCH, echo.POST, echo.DELETE},
	}))
}
