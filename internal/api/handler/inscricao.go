package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/inscricao"
)

type InscricaoHandler struct {
	inscricaoService InscricaoServiceInterface
}

func NewInscricaoHandler(inscricaoService InscricaoServiceInterface) *InscricaoHandler {
	return &InscricaoHandler{inscricaoService: inscricaoService}
}

type InscreverRequest struct {
	EventoID       string `json:"evento_id" validate:"required"`
	ParticipanteID string `json:"participante_id" validate:"required"`
}

type InscricaoResponse struct {
	ID             string `json:"id"`
	EventoID       string `json:"evento_id"`
	ParticipanteID string `json:"participante_id"`
	DataInscricao  string `json:"data_inscricao"`
}

type InscreverResponse struct {
	Mensagem     string                `json:"mensagem"`
	Inscricao    *InscricaoResponse    `json:"inscricao"`
	Evento       *EventoResponse       `json:"evento"`
	Participante *ParticipanteResponse `json:"participante"`
}

type EventoResumoResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Data  string `json:"data"`
	Local string `json:"local"`
}

type DetalheInscricaoResponse struct {
	ID            string                `json:"id"`
	DataInscricao string                `json:"data_inscricao"`
	Evento        *EventoResumoResponse `json:"evento"`
	Participante  *ParticipanteResponse `json:"participante"`
}

// Inscrever registra um participante em um evento.
func (h *InscricaoHandler) Inscrever(c echo.Context) error {
	var req InscreverRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": "Requisição inválida"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resultado, err := h.inscricaoService.Inscrever(c.Request().Context(), req.EventoID, req.ParticipanteID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": err.Error()})
	}

	return c.JSON(http.StatusCreated, &InscreverResponse{
		Mensagem: resultado.Mensagem,
		Inscricao: &InscricaoResponse{
			ID:             resultado.Inscricao.ID,
			EventoID:       resultado.Inscricao.EventoID,
			ParticipanteID: resultado.Inscricao.ParticipanteID,
			DataInscricao:  resultado.Inscricao.DataInscricao.Format(time.RFC3339),
		},
		Evento:       toEventoResponse(resultado.Evento),
		Participante: toParticipanteResponse(resultado.Participante),
	})
}

// Cancelar cancela uma inscrição pelo seu ID.
func (h *InscricaoHandler) Cancelar(c echo.Context) error {
	id := c.Param("id")
	if err := h.inscricaoService.Cancelar(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"mensagem": "Inscrição cancelada com sucesso"})
}

// CancelarPorEventoParticipante cancela a inscrição do par evento/participante.
func (h *InscricaoHandler) CancelarPorEventoParticipante(c echo.Context) error {
	eventoID := c.Param("eventoId")
	participanteID := c.Param("participanteId")
	if err := h.inscricaoService.CancelarPorEventoParticipante(c.Request().Context(), eventoID, participanteID); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"erro": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"mensagem": "Inscrição cancelada com sucesso"})
}

// Listar lista todas as inscrições com evento e participante aninhados.
func (h *InscricaoHandler) Listar(c echo.Context) error {
	detalhes, err := h.inscricaoService.ListarTodas(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"erro": err.Error()})
	}

	responses := make([]*DetalheInscricaoResponse, len(detalhes))
	for i, d := range detalhes {
		responses[i] = toDetalheResponse(d)
	}
	return c.JSON(http.StatusOK, responses)
}

func toDetalheResponse(d *inscricao.Detalhe) *DetalheInscricaoResponse {
	return &DetalheInscricaoResponse{
		ID:            d.ID,
		DataInscricao: d.DataInscricao.Format(time.RFC3339),
		Evento: &EventoResumoResponse{
			ID:    d.Evento.ID,
			Nome:  d.Evento.Nome,
			Data:  d.Evento.Data.Format(dataLayout),
			Local: d.Evento.Local,
		},
		Participante: &ParticipanteResponse{
			ID:    d.Participante.ID,
			Nome:  d.Participante.Nome,
			Email: d.Participante.Email,
		},
	}
}
