package get_time_slots

import (
	"time"

	"github.com/lumina-salon/reservation-service/internal/domain"
	getAvailableSlots "github.com/lumina-salon/reservation-service/internal/usecase/get_available_slots"
)

// TimeSlotResponse модель слота с признаком доступности
type TimeSlotResponse struct {
	ID        int64  `json:"id"`
	TimeSlot  string `json:"timeSlot"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметров (с парсингом даты)
func ToUseCaseRequest(serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Клиент получает плоский массив слотов
func FromUseCaseResponse(resp *getAvailableSlots.Response) []TimeSlotResponse {
	slots := make([]TimeSlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = TimeSlotResponse{
			ID:        slot.ID,
			TimeSlot:  slot.TimeRange.String(),
			Available: slot.Available,
		}
	}
	return slots
}
