package handler

import (
	"context"

	"github.com/rodrigues-yn/Gestao-de-eventos/internal/application"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/evento"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/inscricao"
	"github.com/rodrigues-yn/Gestao-de-eventos/internal/domain/participante"
)

// EventoServiceInterface é a interface do serviço de eventos.
type EventoServiceInterface interface {
	CriarEvento(ctx context.Context, input application.CriarEventoInput) (*evento.Evento, error)
	BuscarEvento(ctx context.Context, id string) (*evento.Evento, error)
	ListarEventos(ctx context.Context) ([]*evento.Evento, error)
	AtualizarEvento(ctx context.Context, input application.AtualizarEventoInput) (*evento.Evento, error)
	RemoverEvento(ctx context.Context, id string) error
	ListarParticipantes(ctx context.Context, eventoID string) ([]*evento.ParticipanteInscrito, error)
	VerificarVagas(ctx context.Context, eventoID string) (*evento.StatusVagas, error)
}

// ParticipanteServiceInterface é a interface do serviço de participantes.
type ParticipanteServiceInterface interface {
	CriarParticipante(ctx context.Context, input application.CriarParticipanteInput) (*participante.Participante, error)
	BuscarParticipante(ctx context.Context, id string) (*participante.Participante, error)
	ListarParticipantes(ctx context.Context) ([]*participante.Participante, error)
	AtualizarParticipante(ctx context.Context, input application.AtualizarParticipanteInput) (*participante.Participante, error)
	RemoverParticipante(ctx context.Context, id string) error
	ListarEventos(ctx context.Context, participanteID string) ([]*participante.EventoInscrito, error)
}

// InscricaoServiceInterface é a interface do serviço de inscrições.
type InscricaoServiceInterface interface {
	Inscrever(ctx context.Context, eventoID, participanteID string) (*application.ResultadoInscricao, error)
	Cancelar(ctx context.Context, inscricaoID string) error
	CancelarPorEventoParticipante(ctx context.Context, eventoID, participanteID string) error
	ListarTodas(ctx context.Context) ([]*inscricao.Detalhe, error)
}
