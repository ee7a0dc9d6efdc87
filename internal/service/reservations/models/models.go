package models

import (
	"time"

	"github.com/lumina-salon/reservation-service/internal/domain"
	catalogModels "github.com/lumina-salon/reservation-service/internal/service/catalog/models"
)

// ReservationResponse модель бронирования для клиента
type ReservationResponse struct {
	ID            int64                          `json:"id"`
	Service       *catalogModels.ServiceResponse `json:"service"`
	Name          string                         `json:"name"`
	Email         string                         `json:"email"`
	Phone         string                         `json:"phone"`
	Date          string                         `json:"date"`
	TimeSlot      string                         `json:"timeSlot"`
	PaymentStatus string                         `json:"paymentStatus"`
	CreatedAt     string                         `json:"createdAt"`
}

// FromDomainReservation конвертирует domain.Reservation (и её услугу) в модель ответа
func FromDomainReservation(r *domain.Reservation, svc *domain.Service) *ReservationResponse {
	return &ReservationResponse{
		ID:            r.ID,
		Service:       catalogModels.FromDomainService(svc),
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Date:          r.Date.Format(domain.DateFormat),
		TimeSlot:      r.TimeRange.String(),
		PaymentStatus: string(r.PaymentStatus),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}
