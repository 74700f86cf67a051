package domain

import "time"

// User - аккаунт барбершопа (владелец каталога барберов и стрижек)
// ShopSlug - публичное имя, по которому клиенты находят барбершоп
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	ShopSlug     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
