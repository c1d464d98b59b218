package evento

import (
	"strings"
	"time"
)

// Evento representa um evento com limite de vagas.
type Evento struct {
	ID          string
	Nome        string
	Data        time.Time
	Local       string
	NumeroVagas int
	Descricao   string
}

// NewEvento cria um novo evento ainda sem ID (o banco gera o identificador).
func NewEvento(nome string, data time.Time, local string, numeroVagas int, descricao string) *Evento {
	return &Evento{
		Nome:        nome,
		Data:        data,
		Local:       local,
		NumeroVagas: numeroVagas,
		Descricao:   descricao,
	}
}

// Validar verifica as invariantes do evento.
func (e *Evento) Validar() error {
	if strings.TrimSpace(e.Nome) == "" {
		return ErrNomeObrigatorio
	}
	if e.Data.IsZero() {
		return ErrDataObrigatoria
	}
	if strings.TrimSpace(e.Local) == "" {
		return ErrLocalObrigatorio
	}
	if e.NumeroVagas < 0 {
		return ErrVagasNegativas
	}
	return nil
}

// TemVagasDisponiveis indica se ainda cabem inscrições dado o total ocupado.
func (e *Evento) TemVagasDisponiveis(vagasOcupadas int) bool {
	return vagasOcupadas < e.NumeroVagas
}

// StatusVagas é o resumo de ocupação de um evento.
type StatusVagas struct {
	TotalVagas       int
	VagasOcupadas    int
	VagasDisponiveis int
	TemVagas         bool
}

// NovoStatusVagas calcula o status de vagas a partir do evento e da contagem de inscrições.
func NovoStatusVagas(e *Evento, vagasOcupadas int) *StatusVagas {
	return &StatusVagas{
		TotalVagas:       e.NumeroVagas,
		VagasOcupadas:    vagasOcupadas,
		VagasDisponiveis: e.NumeroVagas - vagasOcupadas,
		TemVagas:         e.TemVagasDisponiveis(vagasOcupadas),
	}
}
