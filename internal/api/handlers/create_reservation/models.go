package create_reservation

import (
	"time"

	"github.com/lumina-salon/reservation-service/internal/domain"
	catalogModels "github.com/lumina-salon/reservation-service/internal/service/catalog/models"
	createReservation "github.com/lumina-salon/reservation-service/internal/usecase/create_reservation"
	"github.com/lumina-salon/reservation-service/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ServiceID int64  `json:"serviceId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`     // "2025-03-10"
	TimeSlot  string `json:"timeSlot"` // "10:00-11:00"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	ReservationID int64           `json:"reservationId"`
	Data          ReservationData `json:"data"`
}

// ReservationData детали созданного бронирования
type ReservationData struct {
	Service  *catalogModels.ServiceResponse `json:"service"`
	Customer Customer                       `json:"customer"`
	Date     string                         `json:"date"`
	TimeSlot string                         `json:"timeSlot"`
}

// Customer контактные данные клиента
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и диапазон парсятся здесь; пустые значения отлавливает валидация use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &createReservation.Request{
		ServiceID: r.ServiceID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      date,
		TimeRange: types.TimeRange(r.TimeSlot),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		Success:       true,
		Message:       "бронирование успешно создано",
		ReservationID: resp.ID,
		Data: ReservationData{
			Service: catalogModels.FromDomainService(resp.Service),
			Customer: Customer{
				Name:  resp.Name,
				Email: resp.Email,
				Phone: resp.Phone,
			},
			Date:     resp.Date.Format(domain.DateFormat),
			TimeSlot: resp.TimeRange.String(),
		},
	}
}
