package participante

import "errors"

// Erros do domínio de participantes.
var (
	ErrParticipanteNaoEncontrado = errors.New("Participante não encontrado")
	ErrNomeObrigatorio           = errors.New("Nome do participante é obrigatório")
	ErrEmailInvalido             = errors.New("Email válido é obrigatório")
	ErrEmailJaCadastrado         = errors.New("Email já cadastrado")
	ErrEmailDeOutroParticipante  = errors.New("Email já cadastrado para outro participante")
)
