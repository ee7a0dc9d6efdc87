package create_reservation

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrTimeSlotNotFound возвращается, когда слот по ключу (услуга, дата, диапазон)
	// не найден: дата вне засеянного окна или неизвестная метка диапазона
	ErrTimeSlotNotFound = errors.New("create_reservation: time slot not found")

	// ErrSlotFull возвращается, когда в выбранном слоте не осталось мест
	ErrSlotFull = errors.New("create_reservation: time slot is fully booked")

	// ErrConflict возвращается, когда сериализуемая транзакция проиграла гонку
	// конкурентному бронированию; клиент должен повторить запрос
	ErrConflict = errors.New("create_reservation: concurrent booking conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
