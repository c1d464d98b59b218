package inscricao

import "time"

// Inscricao liga um participante a um evento em um instante no tempo.
// Não há ciclo de vida além de existir ou não: cancelar é remover a linha.
type Inscricao struct {
	ID             string
	EventoID       string
	ParticipanteID string
	DataInscricao  time.Time
}

// NewInscricao cria uma nova inscrição com a data de agora.
func NewInscricao(eventoID, participanteID string) *Inscricao {
	return &Inscricao{
		EventoID:       eventoID,
		ParticipanteID: participanteID,
		DataInscricao:  time.Now(),
	}
}

// Validar verifica as invariantes da inscrição.
func (i *Inscricao) Validar() error {
	if i.EventoID == "" {
		return ErrEventoObrigatorio
	}
	if i.ParticipanteID == "" {
		return ErrParticipanteObrigatorio
	}
	return nil
}

// EventoResumo é o recorte do evento devolvido junto com a listagem de inscrições.
type EventoResumo struct {
	ID    string
	Nome  string
	Data  time.Time
	Local string
}

// ParticipanteResumo é o recorte do participante devolvido junto com a listagem.
type ParticipanteResumo struct {
	ID    string
	Nome  string
	Email string
}

// Detalhe é uma inscrição acompanhada dos dados do evento e do participante.
type Detalhe struct {
	ID            string
	DataInscricao time.Time
	Evento        EventoResumo
	Participante  ParticipanteResumo
}
