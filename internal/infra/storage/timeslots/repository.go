package timeslots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/lumina-salon/reservation-service/internal/domain"
	"github.com/lumina-salon/reservation-service/pkg/dbmetrics"
	"github.com/lumina-salon/reservation-service/pkg/psqlbuilder"
	"github.com/lumina-salon/reservation-service/pkg/types"
)

const tableName = "time_slots"

var timeSlotColumns = []string{
	"id",
	"service_id",
	"date",
	"time_slot",
	"max_capacity",
	"current_reservations",
	"created_at",
	"updated_at",
}

// Repository репозиторий временных слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByServiceAndDate возвращает все слоты услуги на дату,
// отсортированные по метке диапазона (совпадает с хронологическим порядком сетки).
// Дата должна быть нормализована к полуночи UTC - иначе выборка будет пустой.
func (r *Repository) ListByServiceAndDate(ctx context.Context, serviceID int64, date time.Time) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timeSlotColumns...).
		From(tableName).
		Where(squirrel.Eq{"service_id": serviceID, "date": date}).
		OrderBy("time_slot ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		slot, err := scanTimeSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByServiceAndDate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByServiceDateRange возвращает уникальный слот по ключу (услуга, дата, диапазон).
// Внутри активной транзакции добавляет FOR UPDATE: строка слота блокируется
// до конца транзакции, конкурентное бронирование того же слота сериализуется.
func (r *Repository) GetByServiceDateRange(ctx context.Context, serviceID int64, date time.Time, timeRange types.TimeRange) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(timeSlotColumns...).
		From(tableName).
		Where(squirrel.Eq{
			"service_id": serviceID,
			"date":       date,
			"time_slot":  timeRange,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceDateRange - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.TimeSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.ServiceID,
		&slot.Date,
		&slot.TimeRange,
		&slot.MaxCapacity,
		&slot.CurrentReservations,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTimeSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceDateRange - scan time slot: %v", ErrScanRow, err)
	}

	// DATE колонка парсится драйвером в часовом поясе сессии -
	// приводим к канонической полуночи UTC
	slot.Date = domain.NormalizeDate(slot.Date)

	return &slot, nil
}

// IncrementReservations увеличивает счетчик бронирований слота на 1 одним
// условным UPDATE: инкремент проходит только пока счетчик меньше вместимости.
// Если условие не выполнено (слот заполнен), возвращает ErrSlotFull;
// если слот не существует - ErrTimeSlotNotFound.
func (r *Repository) IncrementReservations(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("current_reservations", squirrel.Expr("current_reservations + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("current_reservations < max_capacity")).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementReservations - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementReservations - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementReservations - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем "слот заполнен" и "слот не существует"
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTimeSlotNotFound
		}
		return ErrSlotFull
	}

	return nil
}

// Create создает слот (используется только сидером)
// Дубликаты по ключу (service_id, date, time_slot) молча пропускаются
func (r *Repository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"service_id",
			"date",
			"time_slot",
			"max_capacity",
			"current_reservations",
		).
		Values(
			slot.ServiceID,
			slot.Date,
			slot.TimeRange,
			slot.MaxCapacity,
			slot.CurrentReservations,
		).
		Suffix("ON CONFLICT (service_id, date, time_slot) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: exists - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

func scanTimeSlot(rows *sql.Rows) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	if err := rows.Scan(
		&slot.ID,
		&slot.ServiceID,
		&slot.Date,
		&slot.TimeRange,
		&slot.MaxCapacity,
		&slot.CurrentReservations,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("%w: scanTimeSlot - scan row: %v", ErrScanRow, err)
	}
	slot.Date = domain.NormalizeDate(slot.Date)
	return &slot, nil
}
