package register

import (
	"github.com/m04kA/SMC-BarberService/internal/service/auth/models"
)

// RegisterRequest HTTP модель запроса
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	ShopSlug string `json:"shopSlug" validate:"required,max=64"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		ShopSlug: r.ShopSlug,
	}
}
