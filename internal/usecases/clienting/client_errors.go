package clienting

import (
	"errors"
	"fmt"
)

var (
	ErrClientNotFound     = errors.New("cliente não encontrado")
	ErrInvalidClient      = errors.New("dados do cliente inválidos")
	ErrInvalidClientUser  = errors.New("usuário cliente inválido")
	ErrInvalidCustomerID  = errors.New("ID de cliente Google Ads inválido")
	ErrForbiddenOperation = errors.New("operação não permitida")
)

// DomainError carrega o código de erro da API junto do erro base
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
