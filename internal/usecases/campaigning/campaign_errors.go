package campaigning

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound   = errors.New("campanha não encontrada")
	ErrClientNotFound     = errors.New("cliente não encontrado")
	ErrAssetGroupNotFound = errors.New("grupo de recursos não encontrado")
	ErrInvalidCampaign    = errors.New("dados da campanha inválidos")
	ErrInvalidMetric      = errors.New("métrica inválida")
	ErrInvalidAssetGroup  = errors.New("grupo de recursos inválido")
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
