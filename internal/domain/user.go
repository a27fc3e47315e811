package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin   = 1
	RoleManager = 2
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

// Claims é o conteúdo do JWT; o ID registrado (jti) é o ID da sessão
type Claims struct {
	UserID     int    `json:"uid"`
	UserName   string `json:"name"`
	UserEmail  string `json:"email"`
	UserRoleID int    `json:"role"`
	jwt.RegisteredClaims
}
