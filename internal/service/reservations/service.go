package reservations

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/lumina-salon/reservation-service/internal/infra/storage/reservations"
	"github.com/lumina-salon/reservation-service/internal/service/reservations/models"
)

// Service сервис чтения бронирований
type Service struct {
	reservationRepo ReservationRepository
	serviceRepo     ServiceRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		serviceRepo:     serviceRepo,
		logger:          logger,
	}
}

// GetByID возвращает бронирование по ID вместе с услугой
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	service, err := s.serviceRepo.GetByID(ctx, reservation.ServiceID)
	if err != nil {
		s.logger.Error("GetByID: failed to get service id=%d for reservation id=%d: %v",
			reservation.ServiceID, id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get service: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation, service), nil
}
