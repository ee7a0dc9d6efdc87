package get_available_slots

import (
	"time"

	"github.com/lumina-salon/reservation-service/pkg/types"
)

// Request модель запроса на получение слотов услуги на дату
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со слотами и их доступностью
type Response struct {
	ServiceID int64
	Date      time.Time
	Slots     []Slot
}

// Slot временной слот с признаком доступности
type Slot struct {
	ID        int64           // ID слота
	TimeRange types.TimeRange // Метка диапазона (например, "10:00-11:00")
	Available bool            // true, если currentReservations < maxCapacity
}
