package recommending

import (
	"errors"
	"fmt"
)

var (
	ErrRecommendationNotFound = errors.New("recomendação não encontrada")
	ErrCampaignNotFound       = errors.New("campanha não encontrada")
	ErrAssetGroupNotFound     = errors.New("grupo de recursos não encontrado")
	ErrInvalidTransition      = errors.New("transição de status inválida")
	ErrInvalidRequest         = errors.New("requisição inválida")
	ErrForbiddenOperation     = errors.New("operação não permitida")
	ErrAdvisorUnavailable     = errors.New("assistente de IA indisponível")
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
