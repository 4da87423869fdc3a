package campaigning

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing"
	errorcodes "github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
)

const defaultAssetGroupStatus = "ENABLED"

func (s *Service) ListAssetGroups(ctx context.Context, requester *domain.Claims, campaignID string) ([]*domain.AssetGroup, error) {
	if _, err := s.Get(ctx, requester, campaignID); err != nil {
		return nil, err
	}

	groups, err := s.assetGroupRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao listar grupos de recursos")
	}

	return groups, nil
}

// GetAssetGroup valida o acesso pela campanha dona do grupo
func (s *Service) GetAssetGroup(ctx context.Context, requester *domain.Claims, id int64) (*domain.AssetGroup, error) {
	group, err := s.assetGroupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar grupo de recursos")
	}

	notFound := newError(ErrAssetGroupNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Grupo de recursos %d não encontrado", id))
	if group == nil {
		return nil, notFound
	}

	if _, err := s.Get(ctx, requester, group.CampaignID); err != nil {
		if isNotFound(err) {
			return nil, notFound
		}
		return nil, err
	}

	return group, nil
}

func (s *Service) CreateAssetGroup(ctx context.Context, requester *domain.Claims, campaignID string, req *domain.AssetGroupRequest) (*domain.AssetGroup, error) {
	if requester.IsClient() {
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não alteram grupos de recursos")
	}

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, newError(ErrInvalidAssetGroup, errorcodes.ErrMissingRequiredData, "Nome é obrigatório")
	}

	if _, err := s.Get(ctx, requester, campaignID); err != nil {
		return nil, err
	}

	group := &domain.AssetGroup{CampaignID: campaignID, Status: defaultAssetGroupStatus}
	if err := applyAssetGroupRequest(group, req); err != nil {
		return nil, err
	}

	if err := s.assetGroupRepo.Create(ctx, group); err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao criar grupo de recursos")
	}

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityAssetGroup, strconv.FormatInt(group.ID, 10), domain.ActionCreate,
		fmt.Sprintf("Grupo de recursos %s criado", group.Name), map[string]any{"campaign_id": campaignID}))

	return group, nil
}

func (s *Service) UpdateAssetGroup(ctx context.Context, requester *domain.Claims, id int64, req *domain.AssetGroupRequest) (*domain.AssetGroup, error) {
	if requester.IsClient() {
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não alteram grupos de recursos")
	}

	group, err := s.GetAssetGroup(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	if err := applyAssetGroupRequest(group, req); err != nil {
		return nil, err
	}

	err = s.assetGroupRepo.Update(ctx, group)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(ErrAssetGroupNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Grupo de recursos %d não encontrado", id))
	}
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao atualizar grupo de recursos")
	}

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityAssetGroup, strconv.FormatInt(id, 10), domain.ActionUpdate,
		fmt.Sprintf("Grupo de recursos %s atualizado", group.Name), nil))

	return group, nil
}

func (s *Service) DeleteAssetGroup(ctx context.Context, requester *domain.Claims, id int64) error {
	if requester.IsClient() {
		return newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não alteram grupos de recursos")
	}

	group, err := s.GetAssetGroup(ctx, requester, id)
	if err != nil {
		return err
	}

	err = s.assetGroupRepo.Delete(ctx, group.CampaignID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return newError(ErrAssetGroupNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Grupo de recursos %d não encontrado", id))
	}
	if err != nil {
		return newError(err, errorcodes.ErrDatabaseOperation, "Erro ao remover grupo de recursos")
	}

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityAssetGroup, strconv.FormatInt(id, 10), domain.ActionDelete,
		fmt.Sprintf("Grupo de recursos %s removido", group.Name), nil))

	return nil
}

func applyAssetGroupRequest(g *domain.AssetGroup, req *domain.AssetGroupRequest) error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return newError(ErrInvalidAssetGroup, errorcodes.ErrMissingRequiredData, "Nome é obrigatório")
		}
		g.Name = name
	}

	if req.Status != nil {
		g.Status = strings.ToUpper(*req.Status)
	}

	if req.FinalURL != nil {
		g.FinalURL = req.FinalURL
	}

	if req.Headlines != nil {
		if err := checkTexts("headlines", *req.Headlines, domain.MaxHeadlines, domain.MaxHeadlineLength); err != nil {
			return err
		}
		g.Headlines = *req.Headlines
	}

	if req.LongHeadlines != nil {
		if err := checkTexts("long_headlines", *req.LongHeadlines, domain.MaxLongHeadlines, domain.MaxLongHeadlineLen); err != nil {
			return err
		}
		g.LongHeadlines = *req.LongHeadlines
	}

	if req.Descriptions != nil {
		if err := checkTexts("descriptions", *req.Descriptions, domain.MaxDescriptions, domain.MaxDescriptionLen); err != nil {
			return err
		}
		g.Descriptions = *req.Descriptions
	}

	if req.Images != nil {
		g.Images = *req.Images
	}

	if req.Videos != nil {
		g.Videos = *req.Videos
	}

	return nil
}

// checkTexts aplica os limites de quantidade e tamanho do Google Ads
func checkTexts(field string, values []string, maxCount, maxLen int) error {
	if len(values) > maxCount {
		return newError(ErrInvalidAssetGroup, errorcodes.ErrInvalidFormat, fmt.Sprintf("%s aceita no máximo %d itens", field, maxCount))
	}

	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return newError(ErrInvalidAssetGroup, errorcodes.ErrInvalidFormat, fmt.Sprintf("%s não aceita itens vazios", field))
		}
		if utf8.RuneCountInString(v) > maxLen {
			return newError(ErrInvalidAssetGroup, errorcodes.ErrInvalidFormat, fmt.Sprintf("%s aceita no máximo %d caracteres por item", field, maxLen))
		}
	}

	return nil
}
