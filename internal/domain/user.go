package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin   = 1
	RoleManager = 2
	RoleClient  = 3
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	AvatarURL    *string    `json:"avatar_url"`
	ManagerID    *int       `json:"manager_id,omitempty"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) FullName() string {
	if u.Lastname == "" {
		return u.Name
	}
	return u.Name + " " + u.Lastname
}

type UpdateUserRequest struct {
	ID        int     `json:"id"`
	Name      *string `json:"name"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Active    *bool   `json:"active"`
	RoleID    *int    `json:"role_id"`
	AvatarURL *string `json:"avatar_url"`
}

type Claims struct {
	UserID        int
	UserName      string
	UserLastname  string
	UserEmail     string
	UserActive    bool
	UserRoleID    int
	UserAvatarURL *string
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool   { return c != nil && c.UserRoleID == RoleAdmin }
func (c *Claims) IsManager() bool { return c != nil && c.UserRoleID == RoleManager }
func (c *Claims) IsClient() bool  { return c != nil && c.UserRoleID == RoleClient }

// Scope restringe as consultas ao tenant do usuário autenticado.
// Admin não tem restrição, gerente vê os próprios clientes e o usuário cliente vê apenas o cliente vinculado.
type Scope struct {
	ManagerID    *int
	ClientUserID *int
}

func ScopeFor(c *Claims) Scope {
	switch {
	case c.IsManager():
		id := c.UserID
		return Scope{ManagerID: &id}
	case c.IsClient():
		id := c.UserID
		return Scope{ClientUserID: &id}
	default:
		return Scope{}
	}
}

func (s Scope) Unrestricted() bool {
	return s.ManagerID == nil && s.ClientUserID == nil
}
