package catalog

import (
	"context"
	"fmt"

	"github.com/lumina-salon/reservation-service/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// ListServices возвращает все услуги каталога в порядке возрастания ID.
// Side effects отсутствуют; два вызова без записей между ними возвращают
// одинаковый результат.
func (s *Service) ListServices(ctx context.Context) ([]*models.ServiceResponse, error) {
	s.logger.Info("ListServices: fetching service catalog")

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}
