package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/application"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/evento"
)

// dataLayout é o formato de data do contrato da API (coluna date no banco).
const dataLayout = "2006-01-02"

type EventoHandler struct {
	eventoService EventoServiceInterface
}

func NewEventoHandler(eventoService EventoServiceInterface) *EventoHandler {
	return &EventoHandler{eventoService: eventoService}
}

type CriarEventoRequest struct {
	Nome        string `json:"nome" validate:"required"`
	Data        string `json:"data" validate:"required"`
	Local       string `json:"local" validate:"required"`
	NumeroVagas int    `json:"numero_vagas" validate:"gte=0"`
	Descricao   string `json:"descricao"`
}

type AtualizarEventoRequest struct {
	Nome        *string `json:"nome"`
	Data        *string `json:"data"`
	Local       *string `json:"local"`
	NumeroVagas *int    `json:"numero_vagas" validate:"omitempty,gte=0"`
	Descricao   *string `json:"descricao"`
}

type EventoResponse struct {
	ID          string `json:"id"`
	Nome        string `json:"nome"`
	Data        string `json:"data"`
	Local       string `json:"local"`
	NumeroVagas int    `json:"numero_vagas"`
	Descricao   string `json:"descricao"`
}

type VagasResponse struct {
	TotalVagas       int  `json:"total_vagas"`
	VagasOcupadas    int  `json:"vagas_ocupadas"`
	VagasDisponiveis int  `json:"vagas_disponiveis"`
	TemVagas         bool `json:"tem_vagas"`
}

type ParticipanteInscritoResponse struct {
	InscricaoID   string `json:"inscricao_id"`
	DataInscricao string `json:"data_inscricao"`
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	Email         string `json:"email"`
}

func toEventoResponse(e *evento.Evento) *EventoResponse {
	return &EventoResponse{
		ID:          e.ID,
		Nome:        e.Nome,
		Data:        e.Data.Format(dataLayout),
		Local:       e.Local,
		NumeroVagas: e.NumeroVagas,
		Descricao:   e.Descricao,
	}
}

// Criar cria um novo evento.
func (h *EventoHandler) Criar(c echo.Context) error {
	var req CriarEventoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": "Requisição inválida"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	data, err := time.Parse(dataLayout, req.Data)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": evento.ErrDataInvalida.Error()})
	}

	input := application.CriarEventoInput{
		Nome:        req.Nome,
		Data:        data,
		Local:       req.Local,
		NumeroVagas: req.NumeroVagas,
		Descricao:   req.Descricao,
	}

	e, err := h.eventoService.CriarEvento(c.Request().Context(), input)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": err.Error()})
	}

	return c.JSON(http.StatusCreated, toEventoResponse(e))
}

// Listar lista todos os eventos ordenados por data.
func (h *EventoHandler) Listar(c echo.Context) error {
	eventos, err := h.eventoService.ListarEventos(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"erro": err.Error()})
	}

	responses := make([]*EventoResponse, len(eventos))
	for i, e := range eventos {
		responses[i] = toEventoResponse(e)
	}
	return c.JSON(http.StatusOK, responses)
}

// BuscarPorID busca um evento pelo ID.
func (h *EventoHandler) BuscarPorID(c echo.Context) error {
	id := c.Param("id")
	e, err := h.eventoService.BuscarEvento(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, evento.ErrEventoNaoEncontrado) {
			return c.JSON(http.StatusNotFound, map[string]string{"erro": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"erro": err.Error()})
	}
	return c.JSON(http.StatusOK, toEventoResponse(e))
}

// Atualizar aplica uma atualização parcial sobre o evento.
func (h *EventoHandler) Atualizar(c echo.Context) error {
	id := c.Param("id")
	var req AtualizarEventoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": "Requisição inválida"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := application.AtualizarEventoInput{
		ID:          id,
		Nome:        req.Nome,
		Local:       req.Local,
		NumeroVagas: req.NumeroVagas,
		Descricao:   req.Descricao,
	}
	if req.Data != nil {
		data, err := time.Parse(dataLayout, *req.Data)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"erro": evento.ErrDataInvalida.Error()})
		}
		input.Data = &data
	}

	e, err := h.eventoService.AtualizarEvento(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, evento.ErrEventoNaoEncontrado) {
			return c.JSON(http.StatusNotFound, map[string]string{"erro": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": err.Error()})
	}
	return c.JSON(http.StatusOK, toEventoResponse(e))
}

// Remover remove o evento e suas inscrições (cascata na camada de negócio).
func (h *EventoHandler) Remover(c echo.Context) error {
	id := c.Param("id")
	if err := h.eventoService.RemoverEvento(c.Request().Context(), id); err != nil {
		if errors.Is(err, evento.ErrEventoNaoEncontrado) {
			return c.JSON(http.StatusNotFound, map[string]string{"erro": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"mensagem": "Evento removido com sucesso"})
}

// ListarParticipantes lista os participantes inscritos no evento.
func (h *EventoHandler) ListarParticipantes(c echo.Context) error {
	id := c.Param("id")
	participantes, err := h.eventoService.ListarParticipantes(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"erro": err.Error()})
	}

	responses := make([]*ParticipanteInscritoResponse, len(participantes))
	for i, p := range participantes {
		responses[i] = &ParticipanteInscritoResponse{
			InscricaoID:   p.InscricaoID,
			DataInscricao: p.DataInscricao.Format(time.RFC3339),
			ID:            p.ID,
			Nome:          p.Nome,
			Email:         p.Email,
		}
	}
	return c.JSON(http.StatusOK, responses)
}

// VerificarVagas devolve o status de ocupação do evento.
func (h *EventoHandler) VerificarVagas(c echo.Context) error {
	id := c.Param("id")
	status, err := h.eventoService.VerificarVagas(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, evento.ErrEventoNaoEncontrado) {
			return c.JSON(http.StatusNotFound, map[string]string{"erro": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"erro": err.Error()})
	}

	return c.JSON(http.StatusOK, &VagasResponse{
		TotalVagas:       status.TotalVagas,
		VagasOcupadas:    status.VagasOcupadas,
		VagasDisponiveis: status.VagasDisponiveis,
		TemVagas:         status.TemVagas,
	})
}
