package domain

import (
	"time"

	"github.com/lumina-salon/reservation-service/pkg/types"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultTimeRanges фиксированная сетка временных диапазонов, по которой
// сидер создает слоты на каждую дату
var DefaultTimeRanges = []types.TimeRange{
	"10:00-11:00",
	"11:30-12:30",
	"13:00-14:00",
	"14:30-15:30",
	"16:00-17:00",
	"17:30-18:30",
}

// NormalizeDate приводит дату к канонической полуночи UTC.
// Все сравнения дат и ключи поиска слотов используют только
// нормализованные значения - иначе поиск молча вернет пустой результат.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
