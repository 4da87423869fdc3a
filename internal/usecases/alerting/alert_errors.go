package alerting

import "errors"

var (
	ErrAlertNotFound    = errors.New("alerta não encontrado")
	ErrCampaignNotFound = errors.New("campanha não encontrada")
	ErrInvalidFilters   = errors.New("filtros de alerta inválidos")
)
