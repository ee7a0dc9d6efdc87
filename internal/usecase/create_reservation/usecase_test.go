package create_reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-salon/reservation-service/internal/domain"
	serviceRepo "github.com/lumina-salon/reservation-service/internal/infra/storage/services"
	timeSlotRepo "github.com/lumina-salon/reservation-service/internal/infra/storage/timeslots"
	"github.com/lumina-salon/reservation-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeTimeSlotRepo struct {
	slots map[string]*domain.TimeSlot

	// Заполняет слот сразу после первого чтения: второе чтение (под блокировкой)
	// видит уже заполненный слот - имитация проигранной гонки за последнее место
	fillAfterFirstRead bool
	incrementErr       error

	reads int
}

func slotKey(serviceID int64, date time.Time, timeRange types.TimeRange) string {
	return fmt.Sprintf("%d|%s|%s", serviceID, date.Format(domain.DateFormat), timeRange)
}

func (f *fakeTimeSlotRepo) GetByServiceDateRange(_ context.Context, serviceID int64, date time.Time, timeRange types.TimeRange) (*domain.TimeSlot, error) {
	slot, ok := f.slots[slotKey(serviceID, date, timeRange)]
	if !ok {
		return nil, timeSlotRepo.ErrTimeSlotNotFound
	}
	copied := *slot

	f.reads++
	if f.fillAfterFirstRead && f.reads == 1 {
		slot.CurrentReservations = slot.MaxCapacity
	}

	return &copied, nil
}

func (f *fakeTimeSlotRepo) IncrementReservations(_ context.Context, id int64) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	for _, slot := range f.slots {
		if slot.ID == id {
			if slot.CurrentReservations >= slot.MaxCapacity {
				return timeSlotRepo.ErrSlotFull
			}
			slot.CurrentReservations++
			return nil
		}
	}
	return timeSlotRepo.ErrTimeSlotNotFound
}

type fakeReservationRepo struct {
	created   []*domain.Reservation
	nextID    int64
	createErr error
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	r.ID = f.nextID
	r.CreatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	f.created = append(f.created, r)
	return r, nil
}

type fakeTxManager struct {
	commitErr error
	rollback  func()
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		if f.rollback != nil {
			f.rollback()
		}
		return err
	}
	if f.commitErr != nil {
		if f.rollback != nil {
			f.rollback()
		}
		return f.commitErr
	}
	return nil
}

func validRequest() *Request {
	return &Request{
		ServiceID: 1,
		Name:      "山田花子",
		Email:     "hanako@example.com",
		Phone:     "090-1234-5678",
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeRange: "10:00-11:00",
	}
}

func newFixture(capacity, reserved int) (*fakeServiceRepo, *fakeTimeSlotRepo, *fakeReservationRepo, *fakeTxManager) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Title: "プレミアムフェイシャル", Price: 12000, DurationMinutes: 60},
	}}

	slots := &fakeTimeSlotRepo{slots: map[string]*domain.TimeSlot{
		slotKey(1, date, "10:00-11:00"): {
			ID:                  42,
			ServiceID:           1,
			Date:                date,
			TimeRange:           "10:00-11:00",
			MaxCapacity:         capacity,
			CurrentReservations: reserved,
		},
	}}

	return services, slots, &fakeReservationRepo{}, &fakeTxManager{}
}

func TestExecute_Success(t *testing.T) {
	services, slots, reservations, txMgr := newFixture(1, 0)
	uc := NewUseCase(services, slots, reservations, txMgr, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "プレミアムフェイシャル", resp.Service.Title)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.Equal(t, types.TimeRange("10:00-11:00"), resp.TimeRange)

	// Ровно одно бронирование, счетчик слота увеличен ровно на 1
	require.Len(t, reservations.created, 1)
	assert.Equal(t, int64(42), reservations.created[0].TimeSlotID)
	assert.Equal(t, domain.PaymentStatusPending, reservations.created[0].PaymentStatus)

	slot, err := slots.GetByServiceDateRange(context.Background(), 1, validRequest().Date, "10:00-11:00")
	require.NoError(t, err)
	assert.Equal(t, 1, slot.CurrentReservations)
}

func TestExecute_SlotFullAfterFirstBooking(t *testing.T) {
	services, slots, reservations, txMgr := newFixture(1, 0)
	uc := NewUseCase(services, slots, reservations, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Повторное бронирование того же слота: вместимость исчерпана
	_, err = uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotFull)

	// Второй вызов не оставил следов: одно бронирование, счетчик не изменился
	assert.Len(t, reservations.created, 1)
	slot, err := slots.GetByServiceDateRange(context.Background(), 1, validRequest().Date, "10:00-11:00")
	require.NoError(t, err)
	assert.Equal(t, 1, slot.CurrentReservations)
}

func TestExecute_SlotFullPrecheck(t *testing.T) {
	services, slots, reservations, txMgr := newFixture(2, 2)
	uc := NewUseCase(services, slots, reservations, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Empty(t, reservations.created)
}

func TestExecute_SlotFilledBetweenPrecheckAndLock(t *testing.T) {
	services, slots, reservations, txMgr := newFixture(1, 0)
	// Консультативная проверка видит свободный слот, но к моменту чтения
	// под блокировкой конкурент уже занял последнее место
	slots.fillAfterFirstRead = true
	uc := NewUseCase(services, slots, reservations, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotFull)

	// Проигравший гонку не оставляет следов: бронирование не создано,
	// счетчик не тронут
	assert.Empty(t, reservations.created)
}

func TestExecute_IncrementGuardUnderLock(t *testing.T) {
	services, slots, reservations, txMgr := newFixture(1, 0)
	// Условный инкремент не прошел (счетчик уже равен вместимости) -
	// вставка бронирования откатывается вместе с транзакцией
	slots.incrementErr = timeSlotRepo.ErrSlotFull
	txMgr.rollback = func() { reservations.created = nil }
	uc := NewUseCase(services, slots, reservations, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Empty(t, reservations.created)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	services, slots, reservations, txMgr := newFixture(1, 0)
	uc := NewUseCase(services, slots, reservations, txMgr, nopLogger{})

	req := validRequest()
	req.ServiceID = 999

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, reservations.created)
}

func TestExecute_TimeSlotNotFound(t *testing.T) {
	services, slots, reservations, txMgr := newFixture(1, 0)
	uc := NewUseCase(services, slots, reservations, txMgr, nopLogger{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"date outside seeded window", func(req *Request) {
			req.Date = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		}},
		{"unknown time range label", func(req *Request) {
			req.TimeRange = "09:00-10:00"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTimeSlotNotFound)
		})
	}

	assert.Empty(t, reservations.created)
}

func TestExecute_DateNormalization(t *testing.T) {
	services, slots, reservations, txMgr := newFixture(1, 0)
	uc := NewUseCase(services, slots, reservations, txMgr, nopLogger{})

	// Дата с временем и смещением резолвится в тот же слот,
	// что и засеянный на календарное 10 марта 2025
	jst := time.FixedZone("JST", 9*3600)
	req := validRequest()
	req.Date = time.Date(2025, 3, 10, 23, 30, 0, 0, jst)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), resp.Date)
	require.Len(t, reservations.created, 1)
	assert.Equal(t, int64(42), reservations.created[0].TimeSlotID)
}

func TestExecute_ValidationFailures(t *testing.T) {
	services, slots, reservations, txMgr := newFixture(1, 0)
	uc := NewUseCase(services, slots, reservations, txMgr, nopLogger{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"missing service id", func(req *Request) { req.ServiceID = 0 }},
		{"missing name", func(req *Request) { req.Name = "" }},
		{"missing email", func(req *Request) { req.Email = "" }},
		{"invalid email", func(req *Request) { req.Email = "not-an-email" }},
		{"missing phone", func(req *Request) { req.Phone = "  " }},
		{"missing date", func(req *Request) { req.Date = time.Time{} }},
		{"missing time slot", func(req *Request) { req.TimeRange = "" }},
		{"malformed time slot", func(req *Request) { req.TimeRange = "morning" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Валидация отрабатывает до обращения к хранилищу
	assert.Empty(t, reservations.created)
}

func TestExecute_SerializationFailureMapsToConflict(t *testing.T) {
	services, slots, reservations, txMgr := newFixture(1, 0)
	txMgr.commitErr = fmt.Errorf("txmanager: commit transaction: %w",
		&pq.Error{Code: "40001"})
	txMgr.rollback = func() { reservations.created = nil }
	uc := NewUseCase(services, slots, reservations, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// Проигранная сериализация не оставляет строки бронирования
	assert.Empty(t, reservations.created)
}

func TestExecute_CreateFailureRollsUp(t *testing.T) {
	services, slots, reservations, txMgr := newFixture(1, 0)
	reservations.createErr = fmt.Errorf("connection reset")
	uc := NewUseCase(services, slots, reservations, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, isSerializationFailure(&pq.Error{Code: "40001"}))
	assert.True(t, isSerializationFailure(&pq.Error{Code: "40P01"}))
	assert.True(t, isSerializationFailure(fmt.Errorf("wrapped: %w", &pq.Error{Code: "40001"})))
	assert.False(t, isSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, isSerializationFailure(fmt.Errorf("plain error")))
	assert.False(t, isSerializationFailure(nil))
}
