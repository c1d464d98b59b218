package evento

import "errors"

// Erros do domínio de eventos.
var (
	ErrEventoNaoEncontrado = errors.New("Evento não encontrado")
	ErrNomeObrigatorio     = errors.New("Nome do evento é obrigatório")
	ErrDataObrigatoria     = errors.New("Data do evento é obrigatória")
	ErrDataInvalida        = errors.New("Data inválida")
	ErrLocalObrigatorio    = errors.New("Local do evento é obrigatório")
	ErrVagasNegativas      = errors.New("Número de vagas não pode ser negativo")
)
