package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/lumina-salon/reservation-service/internal/domain"
	serviceRepo "github.com/lumina-salon/reservation-service/internal/infra/storage/services"
	timeSlotRepo "github.com/lumina-salon/reservation-service/internal/infra/storage/timeslots"
)

// Коды ошибок PostgreSQL, означающие проигранную гонку транзакций
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// UseCase use case создания бронирования
type UseCase struct {
	serviceRepo     ServiceRepository
	timeSlotRepo    TimeSlotRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	timeSlotRepo TimeSlotRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		timeSlotRepo:    timeSlotRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Протокол:
//  1. Валидация входных данных (до обращения к хранилищу).
//  2. Резолв услуги по ID.
//  3. Нормализация даты к полуночи UTC и резолв слота по ключу
//     (услуга, дата, диапазон).
//  4. Предварительная проверка вместимости вне транзакции - быстрый отказ
//     для уже заполненного слота без транзакционных накладных расходов.
//     Проверка только консультативная: авторитетная выполняется под блокировкой.
//  5. Сериализуемая транзакция: повторное чтение слота с FOR UPDATE,
//     повторная проверка вместимости, вставка бронирования и условный
//     инкремент счетчика. Два конкурентных бронирования последнего места
//     дают ровно один успех и один отказ.
//
// Автоматического повтора при конфликте нет - клиент получает ErrConflict
// и повторяет запрос сам.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: service=%d, date=%s, timeSlot=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.TimeRange)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолв услуги
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservation: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Нормализация даты и резолв слота
	date := domain.NormalizeDate(req.Date)

	slot, err := uc.timeSlotRepo.GetByServiceDateRange(ctx, req.ServiceID, date, req.TimeRange)
	if err != nil {
		if errors.Is(err, timeSlotRepo.ErrTimeSlotNotFound) {
			uc.logger.Warn("CreateReservation: time slot not found: service=%d, date=%s, timeSlot=%s",
				req.ServiceID, date.Format(domain.DateFormat), req.TimeRange)
			return nil, ErrTimeSlotNotFound
		}
		uc.logger.Error("CreateReservation: failed to get time slot: %v", err)
		return nil, fmt.Errorf("%w: failed to get time slot: %v", ErrInternal, err)
	}

	// 4. Предварительная проверка вместимости (вне транзакции)
	if !slot.IsAvailable() {
		uc.logger.Warn("CreateReservation: slot id=%d is full (%d/%d)",
			slot.ID, slot.CurrentReservations, slot.MaxCapacity)
		return nil, ErrSlotFull
	}

	var result *domain.Reservation

	// 5. Атомарный коммит: вставка бронирования + инкремент счетчика слота
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Перечитываем слот под блокировкой FOR UPDATE
		lockedSlot, err := uc.timeSlotRepo.GetByServiceDateRange(txCtx, req.ServiceID, date, req.TimeRange)
		if err != nil {
			if errors.Is(err, timeSlotRepo.ErrTimeSlotNotFound) {
				return ErrTimeSlotNotFound
			}
			return fmt.Errorf("%w: failed to lock time slot: %v", ErrInternal, err)
		}

		// 5.2. Авторитетная проверка вместимости по данным под блокировкой
		if !lockedSlot.IsAvailable() {
			uc.logger.Warn("CreateReservation: slot id=%d became full under lock (%d/%d)",
				lockedSlot.ID, lockedSlot.CurrentReservations, lockedSlot.MaxCapacity)
			return ErrSlotFull
		}

		// 5.3. Создаем бронирование со ссылкой на слот
		reservation := &domain.Reservation{
			ServiceID:     req.ServiceID,
			TimeSlotID:    lockedSlot.ID,
			Name:          req.Name,
			Email:         req.Email,
			Phone:         req.Phone,
			Date:          date,
			TimeRange:     req.TimeRange,
			PaymentStatus: domain.PaymentStatusPending,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 5.4. Условный инкремент: пройдет только пока счетчик меньше вместимости
		if err := uc.timeSlotRepo.IncrementReservations(txCtx, lockedSlot.ID); err != nil {
			if errors.Is(err, timeSlotRepo.ErrSlotFull) {
				return ErrSlotFull
			}
			return fmt.Errorf("%w: failed to increment slot counter: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if isSerializationFailure(err) {
			uc.logger.Warn("CreateReservation: serialization failure for slot service=%d, date=%s, timeSlot=%s",
				req.ServiceID, date.Format(domain.DateFormat), req.TimeRange)
			return nil, ErrConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d (slot id=%d)",
		result.ID, result.TimeSlotID)

	return &Response{
		ID:            result.ID,
		Service:       service,
		Name:          result.Name,
		Email:         result.Email,
		Phone:         result.Phone,
		Date:          result.Date,
		TimeRange:     result.TimeRange,
		PaymentStatus: string(result.PaymentStatus),
		CreatedAt:     result.CreatedAt,
	}, nil
}

// isSerializationFailure распознает проигранную гонку сериализуемых транзакций
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgSerializationFailure || string(pqErr.Code) == pgDeadlockDetected
}
