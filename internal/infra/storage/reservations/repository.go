package reservations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lumina-salon/reservation-service/internal/domain"
	"github.com/lumina-salon/reservation-service/pkg/dbmetrics"
	"github.com/lumina-salon/reservation-service/pkg/psqlbuilder"
)

const tableName = "reservations"

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование.
// Вызывается только внутри сериализуемой транзакции (через контекст),
// в паре с инкрементом счетчика слота - вставка и инкремент либо
// коммитятся вместе, либо откатываются вместе.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"service_id",
			"time_slot_id",
			"name",
			"email",
			"phone",
			"date",
			"time_slot",
			"payment_status",
		).
		Values(
			reservation.ServiceID,
			reservation.TimeSlotID,
			reservation.Name,
			reservation.Email,
			reservation.Phone,
			reservation.Date,
			reservation.TimeRange,
			reservation.PaymentStatus,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&reservation.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return reservation, nil
}

// GetByID возвращает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"service_id",
		"time_slot_id",
		"name",
		"email",
		"phone",
		"date",
		"time_slot",
		"payment_status",
		"created_at",
	).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var reservation domain.Reservation
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&reservation.ServiceID,
		&reservation.TimeSlotID,
		&reservation.Name,
		&reservation.Email,
		&reservation.Phone,
		&reservation.Date,
		&reservation.TimeRange,
		&reservation.PaymentStatus,
		&reservation.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	// DATE колонка парсится драйвером в часовом поясе сессии -
	// приводим к канонической полуночи UTC
	reservation.Date = domain.NormalizeDate(reservation.Date)

	return &reservation, nil
}
