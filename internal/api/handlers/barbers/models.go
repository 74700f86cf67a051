package barbers

import (
	"github.com/m04kA/SMC-BarberService/internal/service/barbers/models"
)

// CreateBarberRequest HTTP модель запроса на добавление барбера
type CreateBarberRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	WorkStart   string   `json:"workStart" validate:"required"`
	WorkEnd     string   `json:"workEnd" validate:"required"`
	AvailableAt []string `json:"availableAt,omitempty"`
}

func (r *CreateBarberRequest) ToServiceRequest(userID int64) *models.CreateBarberRequest {
	return &models.CreateBarberRequest{
		UserID:      userID,
		Name:        r.Name,
		WorkStart:   r.WorkStart,
		WorkEnd:     r.WorkEnd,
		AvailableAt: r.AvailableAt,
	}
}

// UpdateBarberRequest HTTP модель запроса на изменение барбера
// Пустой availableAt ([]) сбрасывает явный список слотов
type UpdateBarberRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,max=100"`
	WorkStart   *string   `json:"workStart,omitempty"`
	WorkEnd     *string   `json:"workEnd,omitempty"`
	AvailableAt *[]string `json:"availableAt,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

func (r *UpdateBarberRequest) ToServiceRequest(userID, barberID int64) *models.UpdateBarberRequest {
	return &models.UpdateBarberRequest{
		UserID:      userID,
		BarberID:    barberID,
		Name:        r.Name,
		WorkStart:   r.WorkStart,
		WorkEnd:     r.WorkEnd,
		AvailableAt: r.AvailableAt,
		Status:      r.Status,
	}
}
