package authenticating

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/auditing"
	errorcodes "github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	CreateUser(ctx context.Context, requester *domain.Claims, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, requester *domain.Claims, req *domain.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, requester *domain.Claims, userID int) error
	ListUsers(ctx context.Context, requester *domain.Claims) ([]*domain.User, error)
	GetUser(ctx context.Context, requester *domain.Claims, userID int) (*domain.User, error)
	LoginUser(ctx context.Context, email, password string) (string, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ValidateSession(ctx context.Context, tokenString string) (*domain.Claims, error)
	GenerateStrongPassword(ctx context.Context, requester *domain.Claims, targetUserID int) (string, error)
	ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo repository.UserRepository
	auditor  auditing.Auditor
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, auditor auditing.Auditor, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		auditor:  auditor,
		cfg:      cfg,
	}
}

// Register é o cadastro público e sempre cria um gerente
func (s *Service) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.RoleID = domain.RoleManager
	user.ManagerID = nil

	created, err := s.create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, &domain.ChangeHistory{
		UserID:      &created.ID,
		EntityType:  domain.EntityUser,
		EntityID:    strconv.Itoa(created.ID),
		Action:      domain.ActionCreate,
		Description: "Cadastro de gerente",
	})

	return created, nil
}

// CreateUser permite ao admin criar qualquer perfil e ao gerente apenas usuários clientes próprios
func (s *Service) CreateUser(ctx context.Context, requester *domain.Claims, user *domain.User) (*domain.User, error) {
	switch {
	case requester.IsAdmin():
		if user.RoleID == 0 {
			user.RoleID = domain.RoleClient
		}
		if !validRole(user.RoleID) {
			return nil, NewAuthError(ErrInvalidRole, errorcodes.ErrInvalidFormat, "Perfil deve ser 1, 2 ou 3")
		}
		if user.RoleID != domain.RoleClient {
			user.ManagerID = nil
		}
	case requester.IsManager():
		if user.RoleID != 0 && user.RoleID != domain.RoleClient {
			return nil, NewUserAuthError(ErrInsufficientPrivilege, errorcodes.ErrInsufficientPrivilege, requester.UserID, "Gerentes só podem criar usuários clientes")
		}
		user.RoleID = domain.RoleClient
		managerID := requester.UserID
		user.ManagerID = &managerID
	default:
		return nil, NewUserAuthError(ErrInsufficientPrivilege, errorcodes.ErrInsufficientPrivilege, requester.UserID, "Sem permissão para criar usuários")
	}

	created, err := s.create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityUser, strconv.Itoa(created.ID), domain.ActionCreate,
		fmt.Sprintf("Usuário %s criado", created.Email), map[string]any{"role_id": created.RoleID}))

	return created, nil
}

func validRole(role int) bool {
	return role == domain.RoleAdmin || role == domain.RoleManager || role == domain.RoleClient
}

func (s *Service) create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	user.Email = handleEmail(user.Email)
	if !strings.Contains(user.Email, "@") {
		return nil, NewAuthError(ErrInvalidFormat, errorcodes.ErrInvalidFormat, "Email inválido")
	}

	if err := s.ValidatePasswordStrength(user.PasswordHash); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, errorcodes.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = string(hashedPassword)
	user.Active = true

	user, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// UpdateUser permite alterar o próprio cadastro; admin altera qualquer um e é o único que muda perfil e status
func (s *Service) UpdateUser(ctx context.Context, requester *domain.Claims, req *domain.UpdateUserRequest) (*domain.User, error) {
	if req.ID == 0 {
		return nil, NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "ID é obrigatório")
	}

	if !requester.IsAdmin() && requester.UserID != req.ID {
		return nil, NewUserAuthError(ErrInsufficientPrivilege, errorcodes.ErrInsufficientPrivilege, requester.UserID, "Só é possível alterar o próprio usuário")
	}

	if !requester.IsAdmin() && (req.RoleID != nil || req.Active != nil) {
		return nil, NewUserAuthError(ErrNoAdminPrivileges, errorcodes.ErrInsufficientPrivilege, requester.UserID, "Perfil e status só podem ser alterados por administradores")
	}

	user, err := s.userRepo.GetUserByID(ctx, req.ID)
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Usuário %d não encontrado", req.ID))
	}

	changes := map[string]any{}

	if req.Name != nil && *req.Name != user.Name {
		changes["name"] = *req.Name
		user.Name = *req.Name
	}

	if req.Lastname != nil && *req.Lastname != user.Lastname {
		changes["lastname"] = *req.Lastname
		user.Lastname = *req.Lastname
	}

	if req.Email != nil {
		email := handleEmail(*req.Email)
		if email != user.Email {
			other, err := s.userRepo.GetUserByEmail(ctx, email)
			if err != nil {
				return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário")
			}
			if other != nil {
				return nil, NewAuthError(ErrUserAlreadyExists, errorcodes.ErrUserAlreadyExists, "Email já cadastrado")
			}
			changes["email"] = email
			user.Email = email
		}
	}

	if req.Active != nil && *req.Active != user.Active {
		changes["active"] = *req.Active
		user.Active = *req.Active
	}

	if req.RoleID != nil && *req.RoleID != user.RoleID {
		if !validRole(*req.RoleID) {
			return nil, NewAuthError(ErrInvalidRole, errorcodes.ErrInvalidFormat, "Perfil deve ser 1, 2 ou 3")
		}
		changes["role_id"] = *req.RoleID
		user.RoleID = *req.RoleID
	}

	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao atualizar usuário")
	}

	if len(changes) > 0 {
		s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityUser, strconv.Itoa(user.ID), domain.ActionUpdate,
			fmt.Sprintf("Usuário %s atualizado", user.Email), changes))
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, requester *domain.Claims, userID int) error {
	if !requester.IsAdmin() {
		return NewUserAuthError(ErrNoAdminPrivileges, errorcodes.ErrInsufficientPrivilege, requester.UserID, "Apenas administradores removem usuários")
	}

	if requester.UserID == userID {
		return NewUserAuthError(ErrCannotDeleteSelf, errorcodes.ErrInvalidRequest, userID, "Não é possível remover o próprio usuário")
	}

	err := s.userRepo.DeleteUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewAuthError(ErrUserNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Usuário %d não encontrado", userID))
	}
	if err != nil {
		return NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao remover usuário")
	}

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityUser, strconv.Itoa(userID), domain.ActionDelete, "Usuário removido", nil))

	return nil
}

// ListUsers devolve todos para admin, os usuários clientes do gerente e o próprio usuário para clientes
func (s *Service) ListUsers(ctx context.Context, requester *domain.Claims) ([]*domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, domain.ScopeFor(requester))
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao listar usuários")
	}

	return users, nil
}

// GetUser aplica a mesma visibilidade de ListUsers; fora do escopo é tratado como inexistente
func (s *Service) GetUser(ctx context.Context, requester *domain.Claims, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário")
	}

	if user == nil || !canSee(requester, user) {
		return nil, NewAuthError(ErrUserNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Usuário %d não encontrado", userID))
	}

	user.PasswordHash = ""
	return user, nil
}

func canSee(requester *domain.Claims, user *domain.User) bool {
	switch {
	case requester.IsAdmin():
		return true
	case requester.UserID == user.ID:
		return true
	case requester.IsManager():
		return user.ManagerID != nil && *user.ManagerID == requester.UserID
	}
	return false
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, errorcodes.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, errorcodes.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := generateJWT(user, s.cfg.SecretKey, s.cfg.Auth.TokenTTL)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("Login realizado")

	return token, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao consultar perfil")
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

func generateJWT(user *domain.User, secretKey string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	claims := domain.Claims{
		UserID:        user.ID,
		UserName:      user.Name,
		UserLastname:  user.Lastname,
		UserEmail:     user.Email,
		UserActive:    user.Active,
		UserRoleID:    user.RoleID,
		UserAvatarURL: user.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, NewAuthError(ErrExpiredToken, errorcodes.ErrExpiredToken, "Token expirado")
	}
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, "Token inválido")
}

// ValidateSession valida o token e confere no banco se o usuário continua ativo.
// O perfil vem do banco, então mudanças de papel valem sem novo login.
func (s *Service) ValidateSession(ctx context.Context, tokenString string) (*domain.Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil || !user.Active {
		return nil, NewUserAuthError(ErrUserDisabled, errorcodes.ErrUserDisabled, claims.UserID, "Usuário removido ou desativado")
	}

	claims.UserRoleID = user.RoleID
	claims.UserActive = user.Active
	return claims, nil
}

// GenerateStrongPassword gera e grava uma nova senha para o usuário alvo. Apenas administradores.
func (s *Service) GenerateStrongPassword(ctx context.Context, requester *domain.Claims, targetUserID int) (string, error) {
	if !requester.IsAdmin() {
		return "", NewUserAuthError(ErrNoAdminPrivileges, errorcodes.ErrInsufficientPrivilege, requester.UserID, "Apenas administradores podem gerar novas senhas")
	}

	targetUser, err := s.userRepo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if targetUser == nil {
		return "", NewAuthError(ErrUserNotFound, errorcodes.ErrResourceNotFound, "Usuário alvo não encontrado")
	}

	newPassword, err := generateStrongPassword(12)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	targetUser.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(ctx, targetUser); err != nil {
		return "", NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao atualizar senha")
	}

	s.auditor.Record(ctx, auditing.Entry(requester, domain.EntityUser, strconv.Itoa(targetUserID), domain.ActionUpdate, "Nova senha gerada", nil))

	return newPassword, nil
}

// generateStrongPassword gera uma senha com pelo menos uma letra maiúscula, uma minúscula,
// um número e um caractere especial
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	sets := []string{lowerChars, upperChars, numberChars, specialChars}
	password := make([]byte, length)

	for i := range password {
		charset := allChars
		if i < len(sets) {
			charset = sets[i]
		}

		c, err := getRandomChar(charset)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	// Embaralhar para os tipos obrigatórios não ficarem no começo
	for i := len(password) - 1; i > 0; i-- {
		j, err := randomInt(int64(i + 1))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	allChars     = lowerChars + upperChars + numberChars + specialChars
)

func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randomInt gera um número aleatório seguro entre 0 e max-1
func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ValidatePasswordStrength exige 8 caracteres com maiúsculas, minúsculas, números e caracteres especiais
func (s *Service) ValidatePasswordStrength(password string) error {
	weak := func(details string) error {
		return NewAuthError(ErrWeakPassword, errorcodes.ErrWeakPassword, details)
	}

	if len(password) < 8 {
		return weak("a senha deve conter pelo menos 8 caracteres")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return weak("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return weak("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return weak("a senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return weak("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}

// ChangePassword altera a senha do próprio usuário após conferir a atual
func (s *Service) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrPasswordMismatch, errorcodes.ErrInvalidCredentials, userID, "Senha atual incorreta")
	}

	if currentPassword == newPassword {
		return NewUserAuthError(ErrSamePassword, errorcodes.ErrWeakPassword, userID, "A nova senha deve ser diferente da atual")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao atualizar senha")
	}

	return nil
}
