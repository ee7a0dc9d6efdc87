package get_available_slots

import (
	"context"
	"time"

	"github.com/lumina-salon/reservation-service/internal/domain"
)

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	ListByServiceAndDate(ctx context.Context, serviceID int64, date time.Time) ([]*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
