package domain

import (
	"time"

	"github.com/lumina-salon/reservation-service/pkg/types"
)

// PaymentStatus статус оплаты бронирования
type PaymentStatus string

const (
	// PaymentStatusPending начальный статус: бронирование создано, оплата не проведена
	// Платежный флоу не реализован, статус остается pending
	PaymentStatusPending PaymentStatus = "pending"
)

// Reservation бронирование клиентом одного временного слота.
// TimeSlotID - прямая ссылка на слот; Date и TimeRange денормализованы
// для чтения истории без JOIN.
type Reservation struct {
	ID         int64
	ServiceID  int64
	TimeSlotID int64

	Name  string
	Email string
	Phone string

	Date          time.Time // Дата слота, нормализованная к полуночи UTC
	TimeRange     types.TimeRange
	PaymentStatus PaymentStatus

	CreatedAt time.Time
}
