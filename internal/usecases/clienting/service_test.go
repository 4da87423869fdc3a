package clienting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	auditmocks "github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing/mocks"
	errorcodes "github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	clients *mocks.MockClientRepository
	users   *mocks.MockUserRepository
	auditor *auditmocks.MockAuditor
	svc     ClientManager
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		clients: mocks.NewMockClientRepository(ctrl),
		users:   mocks.NewMockUserRepository(ctrl),
		auditor: auditmocks.NewMockAuditor(ctrl),
	}
	f.svc = NewService(f.clients, f.users, f.auditor)
	return f
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

var (
	manager = &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}
	admin   = &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
	client  = &domain.Claims{UserID: 3, UserRoleID: domain.RoleClient}
)

func codeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("gerente cria cliente próprio", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 30).Return(&domain.User{ID: 30, RoleID: domain.RoleClient, ManagerID: intPtr(2)}, nil)
		f.clients.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Client) error {
			assert.Len(t, c.ID, 6)
			assert.Equal(t, 2, c.ManagerID)
			assert.Equal(t, "Loja X", c.Name)
			require.NotNil(t, c.GoogleAdsCustomerID)
			assert.Equal(t, "1234567890", *c.GoogleAdsCustomerID)
			assert.True(t, c.Active)
			return nil
		})
		f.auditor.EXPECT().Record(ctx, gomock.Any())

		created, err := f.svc.Create(ctx, manager, &domain.ClientRequest{
			Name:                strPtr("  Loja X "),
			GoogleAdsCustomerID: strPtr("123-456-7890"),
			UserID:              intPtr(30),
			ManagerID:           intPtr(99),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, created.ManagerID)
	})

	t.Run("nome obrigatório", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, manager, &domain.ClientRequest{Name: strPtr(" ")})
		assert.ErrorIs(t, err, ErrInvalidClient)
		assert.Equal(t, errorcodes.ErrMissingRequiredData, codeOf(err))
	})

	t.Run("customer id inválido", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, manager, &domain.ClientRequest{Name: strPtr("X"), GoogleAdsCustomerID: strPtr("12-34")})
		assert.ErrorIs(t, err, ErrInvalidCustomerID)
	})

	t.Run("usuário cliente de outro gerente", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 31).Return(&domain.User{ID: 31, RoleID: domain.RoleClient, ManagerID: intPtr(8)}, nil)

		_, err := f.svc.Create(ctx, manager, &domain.ClientRequest{Name: strPtr("X"), UserID: intPtr(31)})
		assert.ErrorIs(t, err, ErrInvalidClientUser)
	})

	t.Run("usuário cliente não cria", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Create(ctx, client, &domain.ClientRequest{Name: strPtr("X")})
		assert.Equal(t, errorcodes.ErrInsufficientPrivilege, codeOf(err))
	})

	t.Run("admin atribui gerente", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 2).Return(&domain.User{ID: 2, RoleID: domain.RoleManager}, nil)
		f.clients.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		f.auditor.EXPECT().Record(ctx, gomock.Any())

		created, err := f.svc.Create(ctx, admin, &domain.ClientRequest{Name: strPtr("X"), ManagerID: intPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, 2, created.ManagerID)
	})
}

func TestService_Get_OutOfScopeIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.clients.EXPECT().GetByID(ctx, "abc", domain.ScopeFor(manager)).Return(nil, nil)

	_, err := f.svc.Get(ctx, manager, "abc")
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Equal(t, errorcodes.ErrResourceNotFound, codeOf(err))
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("registra alterações", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().GetByID(ctx, "abc", domain.ScopeFor(manager)).Return(&domain.Client{ID: "abc", ManagerID: 2, Name: "Antigo", Active: true}, nil)
		f.clients.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.auditor.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, e *domain.ChangeHistory) {
			assert.Equal(t, "Novo", e.Changes["name"])
			assert.Equal(t, false, e.Changes["active"])
		})

		updated, err := f.svc.Update(ctx, manager, "abc", &domain.ClientRequest{Name: strPtr("Novo"), Active: new(bool)})
		require.NoError(t, err)
		assert.Equal(t, "Novo", updated.Name)
		assert.False(t, updated.Active)
	})

	t.Run("gerente não transfere cliente", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().GetByID(ctx, "abc", domain.ScopeFor(manager)).Return(&domain.Client{ID: "abc", ManagerID: 2, Name: "X"}, nil)

		_, err := f.svc.Update(ctx, manager, "abc", &domain.ClientRequest{ManagerID: intPtr(5)})
		assert.ErrorIs(t, err, ErrForbiddenOperation)
	})

	t.Run("cliente não altera", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Update(ctx, client, "abc", &domain.ClientRequest{})
		assert.ErrorIs(t, err, ErrForbiddenOperation)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.clients.EXPECT().GetByID(ctx, "abc", domain.Scope{}).Return(&domain.Client{ID: "abc", Name: "X"}, nil)
	f.clients.EXPECT().Delete(ctx, "abc").Return(nil)
	f.auditor.EXPECT().Record(ctx, gomock.Any())
	assert.NoError(t, f.svc.Delete(ctx, admin, "abc"))

	f.clients.EXPECT().GetByID(ctx, "gone", domain.Scope{}).Return(&domain.Client{ID: "gone"}, nil)
	f.clients.EXPECT().Delete(ctx, "gone").Return(repository.ErrNotFound)
	assert.ErrorIs(t, f.svc.Delete(ctx, admin, "gone"), ErrClientNotFound)
}
