package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator integra o validator ao Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator cria o validador usado pelos handlers.
// As mensagens usam o nome do campo da tag json, igual ao contrato da API.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		nome := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if nome == "-" {
			return ""
		}
		return nome
	})
	return &CustomValidator{validator: v}
}

// Validate valida a requisição e devolve a primeira falha em português.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return echo.NewHTTPError(http.StatusBadRequest, traduzirErro(verrs[0]))
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// traduzirErro converte o erro de campo do validator para mensagem em português.
func traduzirErro(fe validator.FieldError) string {
	campo := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Campo %s é obrigatório", campo)
	case "email":
		return "Email válido é obrigatório"
	case "gte", "min":
		return fmt.Sprintf("Campo %s não pode ser negativo", campo)
	default:
		return fmt.Sprintf("Campo %s é inválido", campo)
	}
}
