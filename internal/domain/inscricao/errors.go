package inscricao

import "errors"

// Erros do domínio de inscrições.
var (
	ErrInscricaoNaoEncontrada  = errors.New("Inscrição não encontrada")
	ErrJaInscrito              = errors.New("Participante já inscrito neste evento")
	ErrSemVagas                = errors.New("Não há vagas disponíveis para este evento")
	ErrEventoObrigatorio       = errors.New("Evento é obrigatório")
	ErrParticipanteObrigatorio = errors.New("Participante é obrigatório")
)
