package domain

import "time"

// Service бьюти-услуга салона, доступная для бронирования
// Создается сидером; в рантайме только читается
type Service struct {
	ID              int64
	Title           string
	Description     string
	ImageURL        string
	Price           int // Цена в целых единицах валюты
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}
