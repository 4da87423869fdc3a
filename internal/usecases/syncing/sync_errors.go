package syncing

import (
	"errors"
	"fmt"
)

var (
	ErrClientNotFound     = errors.New("cliente não encontrado")
	ErrCampaignNotFound   = errors.New("campanha não encontrada")
	ErrMissingCustomerID  = errors.New("cliente sem conta Google Ads vinculada")
	ErrCampaignNotLinked  = errors.New("campanha não vinculada ao Google Ads")
	ErrInvalidPeriod      = errors.New("período inválido")
	ErrForbiddenOperation = errors.New("operação não permitida")
	ErrGoogleAds          = errors.New("erro na API do Google Ads")
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
