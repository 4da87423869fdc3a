package auditing

import (
	"context"
	"fmt"

	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
)

// Auditor registra e consulta o histórico de alterações
type Auditor interface {
	Record(ctx context.Context, entry *domain.ChangeHistory)
	List(ctx context.Context, requester *domain.Claims, filters domain.HistoryFilters) (*domain.HistoryPage, error)
}

type Service struct {
	historyRepo repository.HistoryRepository
}

func NewService(historyRepo repository.HistoryRepository) Auditor {
	return &Service{historyRepo: historyRepo}
}

// Record grava a entrada sem interromper a operação que a originou
func (s *Service) Record(ctx context.Context, entry *domain.ChangeHistory) {
	if entry == nil {
		return
	}

	if err := s.historyRepo.Create(ctx, entry); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"entity_type": entry.EntityType,
			"entity_id":   entry.EntityID,
			"action":      entry.Action,
		}).Error("Erro ao registrar histórico")
	}
}

func (s *Service) List(ctx context.Context, requester *domain.Claims, filters domain.HistoryFilters) (*domain.HistoryPage, error) {
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, fmt.Errorf("%w: data final anterior à inicial", ErrInvalidFilters)
	}

	filters.Normalize()

	items, total, err := s.historyRepo.List(ctx, filters, domain.ScopeFor(requester))
	if err != nil {
		return nil, err
	}

	return &domain.HistoryPage{
		Items:    items,
		Total:    total,
		Page:     filters.Page,
		PageSize: filters.PageSize,
	}, nil
}

// Entry monta uma entrada de histórico feita pelo usuário autenticado
func Entry(requester *domain.Claims, entityType, entityID string, action domain.HistoryAction, description string, changes map[string]any) *domain.ChangeHistory {
	entry := &domain.ChangeHistory{
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		Description: description,
		Changes:     changes,
	}
	if requester != nil {
		id := requester.UserID
		entry.UserID = &id
	}
	return entry
}
