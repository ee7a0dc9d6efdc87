package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// timeFormat формат времени внутри диапазона (HH:MM)
const timeFormat = "15:04"

var (
	// ErrInvalidTimeRange возвращается при некорректном формате диапазона
	ErrInvalidTimeRange = errors.New("invalid time range format, expected HH:MM-HH:MM")

	// ErrTimeRangeOrder возвращается, когда конец диапазона не позже начала
	ErrTimeRangeOrder = errors.New("time range end must be after start")
)

// TimeRange строковая метка временного диапазона вида "10:00-11:00"
// Используется как часть ключа слота (услуга, дата, диапазон)
type TimeRange string

// NewTimeRangeFromString создает TimeRange из строки с валидацией
func NewTimeRangeFromString(s string) (TimeRange, error) {
	tr := TimeRange(s)
	if err := tr.Validate(); err != nil {
		return "", err
	}
	return tr, nil
}

// Validate проверяет формат "HH:MM-HH:MM" и что конец позже начала
func (t TimeRange) Validate() error {
	parts := strings.Split(string(t), "-")
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeRange, string(t))
	}

	start, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeRange, string(t))
	}

	end, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeRange, string(t))
	}

	if !end.After(start) {
		return fmt.Errorf("%w: %q", ErrTimeRangeOrder, string(t))
	}

	return nil
}

// IsZero возвращает true для пустого диапазона
func (t TimeRange) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление диапазона
func (t TimeRange) String() string {
	return string(t)
}

// Start возвращает время начала диапазона ("10:00")
// Для невалидного диапазона возвращает пустую строку
func (t TimeRange) Start() string {
	parts := strings.Split(string(t), "-")
	if len(parts) != 2 {
		return ""
	}
	return parts[0]
}

// End возвращает время конца диапазона ("11:00")
// Для невалидного диапазона возвращает пустую строку
func (t TimeRange) End() string {
	parts := strings.Split(string(t), "-")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
