package participante

import (
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Participante representa uma pessoa que pode se inscrever em eventos.
type Participante struct {
	ID    string
	Nome  string
	Email string
}

// NewParticipante cria um novo participante ainda sem ID.
func NewParticipante(nome, email string) *Participante {
	return &Participante{Nome: nome, Email: email}
}

// Validar verifica as invariantes do participante.
func (p *Participante) Validar() error {
	if strings.TrimSpace(p.Nome) == "" {
		return ErrNomeObrigatorio
	}
	if !emailRegexp.MatchString(p.Email) {
		return ErrEmailInvalido
	}
	return nil
}
