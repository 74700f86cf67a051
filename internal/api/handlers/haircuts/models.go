package haircuts

import (
	"github.com/m04kA/SMC-BarberService/internal/service/haircuts/models"
)

// CreateHaircutRequest HTTP модель запроса
// Цена и длительность принимаются строками: "R$ 35,00", "35.5", "40 min"
type CreateHaircutRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Price    string `json:"price" validate:"required"`
	Duration string `json:"duration" validate:"required"`
}

func (r *CreateHaircutRequest) ToServiceRequest(userID int64) *models.CreateHaircutRequest {
	return &models.CreateHaircutRequest{
		UserID:   userID,
		Name:     r.Name,
		Price:    r.Price,
		Duration: r.Duration,
	}
}

// UpdateHaircutRequest HTTP модель запроса на изменение стрижки
type UpdateHaircutRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Price    *string `json:"price,omitempty"`
	Duration *string `json:"duration,omitempty"`
	Status   *string `json:"status,omitempty"`
}

func (r *UpdateHaircutRequest) ToServiceRequest(userID, haircutID int64) *models.UpdateHaircutRequest {
	return &models.UpdateHaircutRequest{
		UserID:    userID,
		HaircutID: haircutID,
		Name:      r.Name,
		Price:     r.Price,
		Duration:  r.Duration,
		Status:    r.Status,
	}
}
