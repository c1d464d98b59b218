package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/application"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/participante"
)

type ParticipanteHandler struct {
	participanteService ParticipanteServiceInterface
}

func NewParticipanteHandler(participanteService ParticipanteServiceInterface) *ParticipanteHandler {
	return &ParticipanteHandler{participanteService: participanteService}
}

type CriarParticipanteRequest struct {
	Nome  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type AtualizarParticipanteRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type ParticipanteResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type EventoInscritoResponse struct {
	InscricaoID   string `json:"inscricao_id"`
	DataInscricao string `json:"data_inscricao"`
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	Data          string `json:"data"`
	Local         string `json:"local"`
	NumeroVagas   int    `json:"numero_vagas"`
	Descricao     string `json:"descricao"`
}

func toParticipanteResponse(p *participante.Participante) *ParticipanteResponse {
	return &ParticipanteResponse{
		ID:    p.ID,
		Nome:  p.Nome,
		Email: p.Email,
	}
}

// Criar cadastra um novo participante.
func (h *ParticipanteHandler) Criar(c echo.Context) error {
	var req CriarParticipanteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": "Requisição inválida"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := application.CriarParticipanteInput{
		Nome:  req.Nome,
		Email: req.Email,
	}

	p, err := h.participanteService.CriarParticipante(c.Request().Context(), input)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": err.Error()})
	}

	return c.JSON(http.StatusCreated, toParticipanteResponse(p))
}

// Listar lista todos os participantes ordenados por nome.
func (h *ParticipanteHandler) Listar(c echo.Context) error {
	participantes, err := h.participanteService.ListarParticipantes(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"erro": err.Error()})
	}

	responses := make([]*ParticipanteResponse, len(participantes))
	for i, p := range participantes {
		responses[i] = toParticipanteResponse(p)
	}
	return c.JSON(http.StatusOK, responses)
}

// BuscarPorID busca um participante pelo ID.
func (h *ParticipanteHandler) BuscarPorID(c echo.Context) error {
	id := c.Param("id")
	p, err := h.participanteService.BuscarParticipante(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, participante.ErrParticipanteNaoEncontrado) {
			return c.JSON(http.StatusNotFound, map[string]string{"erro": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"erro": err.Error()})
	}
	return c.JSON(http.StatusOK, toParticipanteResponse(p))
}

// Atualizar aplica uma atualização parcial sobre o participante.
func (h *ParticipanteHandler) Atualizar(c echo.Context) error {
	id := c.Param("id")
	var req AtualizarParticipanteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": "Requisição inválida"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := application.AtualizarParticipanteInput{
		ID:    id,
		Nome:  req.Nome,
		Email: req.Email,
	}

	p, err := h.participanteService.AtualizarParticipante(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, participante.ErrParticipanteNaoEncontrado) {
			return c.JSON(http.StatusNotFound, map[string]string{"erro": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": err.Error()})
	}
	return c.JSON(http.StatusOK, toParticipanteResponse(p))
}

// Remover remove o participante e suas inscrições.
func (h *ParticipanteHandler) Remover(c echo.Context) error {
	id := c.Param("id")
	if err := h.participanteService.RemoverParticipante(c.Request().Context(), id); err != nil {
		if errors.Is(err, participante.ErrParticipanteNaoEncontrado) {
			return c.JSON(http.StatusNotFound, map[string]string{"erro": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"mensagem": "Participante removido com sucesso"})
}

// ListarEventos lista os eventos em que o participante está inscrito.
func (h *ParticipanteHandler) ListarEventos(c echo.Context) error {
	id := c.Param("id")
	eventos, err := h.participanteService.ListarEventos(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"erro": err.Error()})
	}

	responses := make([]*EventoInscritoResponse, len(eventos))
	for i, e := range eventos {
		responses[i] = &EventoInscritoResponse{
			InscricaoID:   e.InscricaoID,
			DataInscricao: e.DataInscricao.Format(time.RFC3339),
			ID:            e.ID,
			Nome:          e.Nome,
			Data:          e.Data.Format(dataLayout),
			Local:         e.Local,
			NumeroVagas:   e.NumeroVagas,
			Descricao:     e.Descricao,
		}
	}
	return c.JSON(http.StatusOK, responses)
}
