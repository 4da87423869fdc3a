package chatting

import (
	"errors"
	"fmt"
)

var (
	ErrConversationNotFound = errors.New("conversa não encontrada")
	ErrParticipantNotFound  = errors.New("participante não encontrado")
	ErrInvalidMessage       = errors.New("mensagem inválida")
	ErrForbiddenOperation   = errors.New("operação não permitida")
	ErrUnknownEvent         = errors.New("evento desconhecido")
)

type DomainError struct {
	Err     error
	Code    string
	Details string
}

func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) ErrorCode() string {
	return e.Code
}

func newError(err error, code, details string) *DomainError {
	return &DomainError{Err: err, Code: code, Details: details}
}
