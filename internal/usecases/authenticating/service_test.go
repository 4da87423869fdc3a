package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	auditmocks "github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing/mocks"
	errorcodes "github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const strongPassword = "Senha@123"

type fixture struct {
	users   *mocks.MockUserRepository
	auditor *auditmocks.MockAuditor
	svc     Authenticator
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		users:   mocks.NewMockUserRepository(ctrl),
		auditor: auditmocks.NewMockAuditor(ctrl),
	}
	cfg := &config.Config{SecretKey: "test-secret", Auth: config.Auth{TokenTTL: time.Hour}}
	f.svc = NewService(f.users, f.auditor, cfg)
	return f
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "esperava AuthError, recebeu %v", err)
	assert.Equal(t, code, authErr.Code)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("cria gerente ativo com senha hasheada", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(nil, nil)
		f.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleManager, u.RoleID)
			assert.True(t, u.Active)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strongPassword)))
			u.ID = 10
			return u, nil
		})
		f.auditor.EXPECT().Record(ctx, gomock.Any())

		user, err := f.svc.Register(ctx, &domain.User{Name: "Ana", Email: " Ana@Example.com ", PasswordHash: strongPassword, RoleID: domain.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("email duplicado", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(&domain.User{ID: 1}, nil)

		_, err := f.svc.Register(ctx, &domain.User{Name: "Ana", Email: "ana@example.com", PasswordHash: strongPassword})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assertCode(t, err, errorcodes.ErrUserAlreadyExists)
	})

	t.Run("senha fraca", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Register(ctx, &domain.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "123"})
		assertCode(t, err, errorcodes.ErrWeakPassword)
	})
}

func TestService_LoginUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		user     *domain.User
		password string
		code     string
	}{
		{name: "usuário inexistente", user: nil, password: strongPassword, code: errorcodes.ErrUserNotFound},
		{name: "usuário inativo", user: &domain.User{ID: 1, Active: false}, password: strongPassword, code: errorcodes.ErrUserDisabled},
		{name: "senha errada", user: &domain.User{ID: 1, Active: true}, password: "Outra@123", code: errorcodes.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.user != nil {
				tt.user.PasswordHash = hashed(t, strongPassword)
			}
			f.users.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(tt.user, nil)

			_, err := f.svc.LoginUser(ctx, "ana@example.com", tt.password)
			assertCode(t, err, tt.code)
		})
	}

	t.Run("sucesso gera token válido", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(&domain.User{
			ID: 5, Name: "Ana", Email: "ana@example.com", Active: true, RoleID: domain.RoleManager,
			PasswordHash: hashed(t, strongPassword),
		}, nil)

		token, err := f.svc.LoginUser(ctx, "ANA@example.com", strongPassword)
		require.NoError(t, err)

		claims, err := f.svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 5, claims.UserID)
		assert.Equal(t, domain.RoleManager, claims.UserRoleID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("campos obrigatórios", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.LoginUser(ctx, "", "")
		assertCode(t, err, errorcodes.ErrMissingRequiredData)
	})
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ValidateToken("not-a-token")
	assertCode(t, err, errorcodes.ErrInvalidToken)

	other := &Service{cfg: &config.Config{SecretKey: "other"}}
	token, err := generateJWT(&domain.User{ID: 1}, "other", time.Hour)
	require.NoError(t, err)
	_, err = other.ValidateToken(token)
	require.NoError(t, err)

	_, err = f.svc.ValidateToken(token)
	assertCode(t, err, errorcodes.ErrInvalidToken)
}

func TestService_ValidateSession(t *testing.T) {
	ctx := context.Background()
	token, err := generateJWT(&domain.User{ID: 5, RoleID: domain.RoleAdmin, Active: true}, "test-secret", time.Hour)
	require.NoError(t, err)

	t.Run("usuário ativo usa o perfil atual do banco", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 5).Return(&domain.User{ID: 5, RoleID: domain.RoleManager, Active: true}, nil)

		claims, err := f.svc.ValidateSession(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, 5, claims.UserID)
		assert.Equal(t, domain.RoleManager, claims.UserRoleID)
	})

	t.Run("usuário desativado perde o acesso", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 5).Return(&domain.User{ID: 5, RoleID: domain.RoleAdmin, Active: false}, nil)

		_, err := f.svc.ValidateSession(ctx, token)
		assert.ErrorIs(t, err, ErrUserDisabled)
		assertCode(t, err, errorcodes.ErrUserDisabled)
	})

	t.Run("usuário removido perde o acesso", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 5).Return(nil, nil)

		_, err := f.svc.ValidateSession(ctx, token)
		assertCode(t, err, errorcodes.ErrUserDisabled)
	})

	t.Run("falha no banco", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 5).Return(nil, errors.New("conexão recusada"))

		_, err := f.svc.ValidateSession(ctx, token)
		assertCode(t, err, errorcodes.ErrDatabaseOperation)
	})

	t.Run("token inválido não consulta o banco", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ValidateSession(ctx, "not-a-token")
		assertCode(t, err, errorcodes.ErrInvalidToken)
	})
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()
	manager := &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}

	t.Run("gerente cria usuário cliente vinculado a ele", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByEmail(ctx, "cli@example.com").Return(nil, nil)
		f.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleClient, u.RoleID)
			require.NotNil(t, u.ManagerID)
			assert.Equal(t, 2, *u.ManagerID)
			u.ID = 30
			return u, nil
		})
		f.auditor.EXPECT().Record(ctx, gomock.Any())

		_, err := f.svc.CreateUser(ctx, manager, &domain.User{Name: "Cli", Email: "cli@example.com", PasswordHash: strongPassword})
		require.NoError(t, err)
	})

	t.Run("gerente não cria admin", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateUser(ctx, manager, &domain.User{Name: "X", Email: "x@example.com", PasswordHash: strongPassword, RoleID: domain.RoleAdmin})
		assert.ErrorIs(t, err, ErrInsufficientPrivilege)
	})

	t.Run("cliente não cria usuários", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateUser(ctx, &domain.Claims{UserID: 3, UserRoleID: domain.RoleClient}, &domain.User{})
		assertCode(t, err, errorcodes.ErrInsufficientPrivilege)
	})

	t.Run("admin com perfil inválido", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateUser(ctx, &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, &domain.User{RoleID: 9})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	role := domain.RoleAdmin
	name := "Novo"

	t.Run("não admin não altera perfil", func(t *testing.T) {
		f := newFixture(t)
		requester := &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}
		_, err := f.svc.UpdateUser(ctx, requester, &domain.UpdateUserRequest{ID: 2, RoleID: &role})
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("não altera outro usuário", func(t *testing.T) {
		f := newFixture(t)
		requester := &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}
		_, err := f.svc.UpdateUser(ctx, requester, &domain.UpdateUserRequest{ID: 3, Name: &name})
		assert.ErrorIs(t, err, ErrInsufficientPrivilege)
	})

	t.Run("altera o próprio nome e registra histórico", func(t *testing.T) {
		f := newFixture(t)
		requester := &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}
		f.users.EXPECT().GetUserByID(ctx, 2).Return(&domain.User{ID: 2, Name: "Antigo", Email: "a@example.com"}, nil)
		f.users.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)
		f.auditor.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.ChangeHistory) {
			assert.Equal(t, domain.ActionUpdate, entry.Action)
			assert.Equal(t, "Novo", entry.Changes["name"])
		})

		user, err := f.svc.UpdateUser(ctx, requester, &domain.UpdateUserRequest{ID: 2, Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Novo", user.Name)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		f := newFixture(t)
		requester := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
		f.users.EXPECT().GetUserByID(ctx, 9).Return(nil, nil)

		_, err := f.svc.UpdateUser(ctx, requester, &domain.UpdateUserRequest{ID: 9, Name: &name})
		assertCode(t, err, errorcodes.ErrResourceNotFound)
	})
}

func TestService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	admin := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}

	f := newFixture(t)
	assert.ErrorIs(t, f.svc.DeleteUser(ctx, admin, 1), ErrCannotDeleteSelf)
	assert.ErrorIs(t, f.svc.DeleteUser(ctx, &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}, 3), ErrNoAdminPrivileges)

	f.users.EXPECT().DeleteUser(ctx, 7).Return(repository.ErrNotFound)
	assertCode(t, f.svc.DeleteUser(ctx, admin, 7), errorcodes.ErrResourceNotFound)

	f.users.EXPECT().DeleteUser(ctx, 8).Return(nil)
	f.auditor.EXPECT().Record(ctx, gomock.Any())
	assert.NoError(t, f.svc.DeleteUser(ctx, admin, 8))
}

func TestService_GetUser_Scope(t *testing.T) {
	ctx := context.Background()
	managerID := 2
	otherManager := 5

	f := newFixture(t)
	manager := &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}

	f.users.EXPECT().GetUserByID(ctx, 30).Return(&domain.User{ID: 30, ManagerID: &managerID, PasswordHash: "x"}, nil)
	user, err := f.svc.GetUser(ctx, manager, 30)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	f.users.EXPECT().GetUserByID(ctx, 31).Return(&domain.User{ID: 31, ManagerID: &otherManager}, nil)
	_, err = f.svc.GetUser(ctx, manager, 31)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("senha atual incorreta", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 1).Return(&domain.User{ID: 1, PasswordHash: hashed(t, strongPassword)}, nil)

		err := f.svc.ChangePassword(ctx, 1, "Errada@123", "Nova@1234")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("nova senha igual", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 1).Return(&domain.User{ID: 1, PasswordHash: hashed(t, strongPassword)}, nil)

		err := f.svc.ChangePassword(ctx, 1, strongPassword, strongPassword)
		assert.ErrorIs(t, err, ErrSamePassword)
	})

	t.Run("sucesso", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 1).Return(&domain.User{ID: 1, PasswordHash: hashed(t, strongPassword)}, nil)
		f.users.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Nova@1234")))
			return nil
		})

		assert.NoError(t, f.svc.ChangePassword(ctx, 1, strongPassword, "Nova@1234"))
	})
}

func TestService_GenerateStrongPassword(t *testing.T) {
	ctx := context.Background()
	admin := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}

	f := newFixture(t)
	f.users.EXPECT().GetUserByID(ctx, 4).Return(&domain.User{ID: 4}, nil)
	f.users.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)
	f.auditor.EXPECT().Record(ctx, gomock.Any())

	password, err := f.svc.GenerateStrongPassword(ctx, admin, 4)
	require.NoError(t, err)
	assert.Len(t, password, 12)
	assert.NoError(t, f.svc.ValidatePasswordStrength(password))

	_, err = f.svc.GenerateStrongPassword(ctx, &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}, 4)
	assert.ErrorIs(t, err, ErrNoAdminPrivileges)
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	f := newFixture(t)

	weak := []string{"Curta@1", "semmaius@1", "SEMMINUS@1", "SemNumero@", "SemEspec1a"}
	for _, password := range weak {
		assert.ErrorIs(t, f.svc.ValidatePasswordStrength(password), ErrWeakPassword, password)
	}

	assert.NoError(t, f.svc.ValidatePasswordStrength(strongPassword))
}
