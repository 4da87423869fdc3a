package clienting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing"
	errorcodes "github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

type ClientManager interface {
	Create(ctx context.Context, requester *domain.Claims, req *domain.ClientRequest) (*domain.Client, error)
	Get(ctx context.Context, requester *domain.Claims, id string) (*domain.Client, error)
	List(ctx context.Context, requester *domain.Claims) ([]*domain.Client, error)
	Update(ctx context.Context, requester *domain.Claims, id string, req *domain.ClientRequest) (*domain.Client, error)
	Delete(ctx context.Context, requester *domain.Claims, id string) error
}

type Service struct {
	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
	auditor    auditing.Auditor
}

func NewService(clientRepo repository.ClientRepository, userRepo repository.UserRepository, auditor auditing.Auditor) ClientManager {
	return &Service{
		clientRepo: clientRepo,
		userRepo:   userRepo,
		auditor:    auditor,
	}
}

func (s *Service) Create(ctx context.Context, requester *domain.Claims, req *domain.ClientRequest) (*domain.Client, error) {
	if !requester.IsAdmin() && !requester.IsManager() {
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Apenas gerentes cadastram clientes")
	}

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, newError(ErrInvalidClient, errorcodes.ErrMissingRequiredData, "Nome é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		ID:        id,
		ManagerID: requester.UserID,
		Name:      strings.TrimSpace(*req.Name),
		Company:   req.Company,
		Email:     req.Email,
		Phone:     req.Phone,
		Active:    true,
	}

	if requester.IsAdmin() && req.ManagerID != nil {
		if err := s.checkManager(ctx, *req.ManagerID); err != nil {
			return nil, err
		}
		client.ManagerID = *req.ManagerID
	}

	if req.Active != nil {
		client.Active = *req.Active
	}

	if client.GoogleAdsCustomerID, err = normalizeCustomerID(req.GoogleAdsCustomerID); err != nil {
		return nil, err
	}

	if req.UserID != nil {
		if err := s.checkClientUser(ctx, client.ManagerID, *req.UserID); err != nil {
			return nil, err
		}
		client.UserID = req.UserID
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao criar cliente")
	}

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityClient, client.ID, domain.ActionCreate,
		fmt.Sprintf("Cliente %s criado", client.Name), nil))

	return client, nil
}

func (s *Service) Get(ctx context.Context, requester *domain.Claims, id string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id, domain.ScopeFor(requester))
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar cliente")
	}
	if client == nil {
		return nil, newError(ErrClientNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Cliente %s não encontrado", id))
	}

	return client, nil
}

func (s *Service) List(ctx context.Context, requester *domain.Claims) ([]*domain.Client, error) {
	clients, err := s.clientRepo.List(ctx, domain.ScopeFor(requester))
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao listar clientes")
	}

	return clients, nil
}

func (s *Service) Update(ctx context.Context, requester *domain.Claims, id string, req *domain.ClientRequest) (*domain.Client, error) {
	if requester.IsClient() {
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não alteram cadastro")
	}

	client, err := s.Get(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, newError(ErrInvalidClient, errorcodes.ErrMissingRequiredData, "Nome é obrigatório")
		}
		if name != client.Name {
			changes["name"] = name
			client.Name = name
		}
	}

	if req.Company != nil {
		changes["company"] = *req.Company
		client.Company = req.Company
	}

	if req.Email != nil {
		changes["email"] = *req.Email
		client.Email = req.Email
	}

	if req.Phone != nil {
		changes["phone"] = *req.Phone
		client.Phone = req.Phone
	}

	if req.Active != nil && *req.Active != client.Active {
		changes["active"] = *req.Active
		client.Active = *req.Active
	}

	if req.GoogleAdsCustomerID != nil {
		customerID, err := normalizeCustomerID(req.GoogleAdsCustomerID)
		if err != nil {
			return nil, err
		}
		changes["google_ads_customer_id"] = customerID
		client.GoogleAdsCustomerID = customerID
	}

	if req.ManagerID != nil && *req.ManagerID != client.ManagerID {
		if !requester.IsAdmin() {
			return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Apenas administradores transferem clientes")
		}
		if err := s.checkManager(ctx, *req.ManagerID); err != nil {
			return nil, err
		}
		changes["manager_id"] = *req.ManagerID
		client.ManagerID = *req.ManagerID
	}

	if req.UserID != nil {
		if err := s.checkClientUser(ctx, client.ManagerID, *req.UserID); err != nil {
			return nil, err
		}
		changes["user_id"] = *req.UserID
		client.UserID = req.UserID
	}

	err = s.clientRepo.Update(ctx, client)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(ErrClientNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Cliente %s não encontrado", id))
	}
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao atualizar cliente")
	}

	if len(changes) > 0 {
		s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityClient, client.ID, domain.ActionUpdate,
			fmt.Sprintf("Cliente %s atualizado", client.Name), changes))
	}

	return client, nil
}

func (s *Service) Delete(ctx context.Context, requester *domain.Claims, id string) error {
	if requester.IsClient() {
		return newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Usuários clientes não removem cadastro")
	}

	client, err := s.Get(ctx, requester, id)
	if err != nil {
		return err
	}

	err = s.clientRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return newError(ErrClientNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Cliente %s não encontrado", id))
	}
	if err != nil {
		return newError(err, errorcodes.ErrDatabaseOperation, "Erro ao remover cliente")
	}

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityClient, id, domain.ActionDelete,
		fmt.Sprintf("Cliente %s removido", client.Name), nil))

	return nil
}

func (s *Service) checkManager(ctx context.Context, managerID int) error {
	user, err := s.userRepo.GetUserByID(ctx, managerID)
	if err != nil {
		return newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar gerente")
	}
	if user == nil || user.RoleID != domain.RoleManager {
		return newError(ErrInvalidClient, errorcodes.ErrInvalidRequest, fmt.Sprintf("Usuário %d não é um gerente", managerID))
	}
	return nil
}

// checkClientUser exige um usuário com perfil cliente pertencente ao gerente do cliente
func (s *Service) checkClientUser(ctx context.Context, managerID, userID int) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário")
	}

	if user == nil || user.RoleID != domain.RoleClient {
		return newError(ErrInvalidClientUser, errorcodes.ErrInvalidRequest, fmt.Sprintf("Usuário %d não é um usuário cliente", userID))
	}

	if user.ManagerID == nil || *user.ManagerID != managerID {
		return newError(ErrInvalidClientUser, errorcodes.ErrInvalidRequest, fmt.Sprintf("Usuário %d pertence a outro gerente", userID))
	}

	return nil
}

// normalizeCustomerID aceita 123-456-7890 ou 1234567890; vazio remove o vínculo
func normalizeCustomerID(id *string) (*string, error) {
	if id == nil {
		return nil, nil
	}

	normalized := config.NormalizeCustomerID(*id)
	if normalized == "" {
		return nil, nil
	}

	if len(normalized) != 10 {
		return nil, newError(ErrInvalidCustomerID, errorcodes.ErrInvalidFormat, "O ID deve ter 10 dígitos")
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return nil, newError(ErrInvalidCustomerID, errorcodes.ErrInvalidFormat, "O ID deve ter 10 dígitos")
		}
	}

	return &normalized, nil
}
