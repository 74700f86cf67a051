package models

import "github.com/m04kA/SMC-BarberService/internal/domain"

// ShopResponse публичные данные барбершопа
type ShopResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CatalogBarber барбер на странице записи
type CatalogBarber struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	WorkStart string `json:"workStart"`
	WorkEnd   string `json:"workEnd"`
}

// CatalogHaircut стрижка на странице записи
type CatalogHaircut struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DisplayPrice    string  `json:"displayPrice"`
	DurationMinutes int     `json:"durationMinutes"`
}

// CatalogResponse всё, что нужно клиенту для выбора барбера и стрижки
type CatalogResponse struct {
	Shop     ShopResponse     `json:"shop"`
	Barbers  []CatalogBarber  `json:"barbers"`
	Haircuts []CatalogHaircut `json:"haircuts"`
}

// FromDomainUser конвертирует аккаунт в публичные данные барбершопа
func FromDomainUser(u *domain.User) ShopResponse {
	return ShopResponse{
		ID:   u.ID,
		Name: u.Name,
		Slug: u.ShopSlug,
	}
}
