package domain

import (
	"time"

	"github.com/lumina-salon/reservation-service/pkg/types"
)

// TimeSlot одна бронируемая ячейка (услуга, дата, временной диапазон)
// с конечной вместимостью.
// Инвариант: 0 <= CurrentReservations <= MaxCapacity, в том числе при
// конкурентных бронированиях. CurrentReservations - единственное изменяемое
// поле, инкрементируется строго внутри сериализуемой транзакции.
type TimeSlot struct {
	ID                  int64
	ServiceID           int64
	Date                time.Time // Календарная дата, нормализованная к полуночи UTC
	TimeRange           types.TimeRange
	MaxCapacity         int
	CurrentReservations int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable возвращает true, если в слоте есть свободные места
func (s *TimeSlot) IsAvailable() bool {
	return s.CurrentReservations < s.MaxCapacity
}

// SpotsLeft возвращает количество свободных мест в слоте
func (s *TimeSlot) SpotsLeft() int {
	left := s.MaxCapacity - s.CurrentReservations
	if left < 0 {
		return 0
	}
	return left
}
