package get_available_slots

import (
	"context"
	"fmt"

	"github.com/lumina-salon/reservation-service/internal/domain"
)

// UseCase use case получения слотов услуги на дату с признаком доступности
type UseCase struct {
	timeSlotRepo TimeSlotRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(timeSlotRepo TimeSlotRepository, logger Logger) *UseCase {
	return &UseCase{
		timeSlotRepo: timeSlotRepo,
		logger:       logger,
	}
}

// Execute возвращает слоты услуги на дату.
// Дата нормализуется к полуночи UTC перед поиском - тем же правилом, что и
// при создании слотов сидером. Отсутствие строк (дата вне засеянного окна,
// несуществующая услуга) - не ошибка: возвращается пустой список.
// Side effects отсутствуют; результат отражает закоммиченное состояние на
// момент чтения и может устареть к моменту бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.NormalizeDate(req.Date)

	timeSlots, err := uc.timeSlotRepo.ListByServiceAndDate(ctx, req.ServiceID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list time slots: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(timeSlots))
	for i, ts := range timeSlots {
		slots[i] = Slot{
			ID:        ts.ID,
			TimeRange: ts.TimeRange,
			Available: ts.IsAvailable(),
		}
	}

	uc.logger.Info("GetAvailableSlots: found %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, date.Format(domain.DateFormat))

	return &Response{
		ServiceID: req.ServiceID,
		Date:      date,
		Slots:     slots,
	}, nil
}
