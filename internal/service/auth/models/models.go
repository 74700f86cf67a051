package models

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// RegisterRequest регистрация барбершопа
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	ShopSlug string
}

// LoginRequest вход сотрудника
type LoginRequest struct {
	Email    string
	Password string
}

// UserResponse данные аккаунта без хэша пароля
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ShopSlug string `json:"shopSlug"`
}

// TokenResponse токен доступа
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		ShopSlug: u.ShopSlug,
	}
}
