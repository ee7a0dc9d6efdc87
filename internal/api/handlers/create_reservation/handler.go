package create_reservation

import (
	"errors"
	"net/http"

	"github.com/lumina-salon/reservation-service/internal/api/handlers"
	createReservation "github.com/lumina-salon/reservation-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingFields      = "не заполнены обязательные поля"
	msgServiceNotFound    = "услуга не найдена"
	msgTimeSlotNotFound   = "временной слот на указанные дату и время не найден"
	msgSlotFull           = "выбранный временной слот уже полностью забронирован"
	msgConflict           = "слот был забронирован параллельным запросом, повторите попытку"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Validation failed: service_id=%d, error=%v", req.ServiceID, err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrTimeSlotNotFound):
			h.logger.Warn("POST /reservations - Time slot not found: service_id=%d, date=%s, time_slot=%s",
				req.ServiceID, req.Date, req.TimeSlot)
			handlers.RespondNotFound(w, msgTimeSlotNotFound)

		case errors.Is(err, createReservation.ErrSlotFull):
			h.logger.Warn("POST /reservations - Slot full: service_id=%d, date=%s, time_slot=%s",
				req.ServiceID, req.Date, req.TimeSlot)
			handlers.RespondBadRequest(w, msgSlotFull)

		case errors.Is(err, createReservation.ErrConflict):
			h.logger.Warn("POST /reservations - Concurrent booking conflict: service_id=%d, date=%s, time_slot=%s",
				req.ServiceID, req.Date, req.TimeSlot)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: service_id=%d, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, service_id=%d",
		result.ID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
