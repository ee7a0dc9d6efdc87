package create_reservation

import (
	"time"

	"github.com/lumina-salon/reservation-service/internal/domain"
	"github.com/lumina-salon/reservation-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID int64           // ID услуги
	Name      string          // Имя клиента
	Email     string          // Email клиента
	Phone     string          // Телефон клиента
	Date      time.Time       // Дата бронирования (без времени)
	TimeRange types.TimeRange // Метка временного диапазона (например, "10:00-11:00")
}

// Response модель ответа с созданным бронированием
// Услуга возвращается целиком - клиенту она нужна для экрана подтверждения
type Response struct {
	ID            int64
	Service       *domain.Service
	Name          string
	Email         string
	Phone         string
	Date          time.Time
	TimeRange     types.TimeRange
	PaymentStatus string
	CreatedAt     time.Time
}
