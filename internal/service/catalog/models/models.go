package models

import "github.com/lumina-salon/reservation-service/internal/domain"

// ServiceResponse модель услуги для клиента
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ImageURL        string `json:"imageUrl"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromDomainService конвертирует domain.Service в модель ответа
func FromDomainService(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID,
		Title:           svc.Title,
		Description:     svc.Description,
		ImageURL:        svc.ImageURL,
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
	}
}

// FromDomainServiceList конвертирует список domain.Service в модели ответа
func FromDomainServiceList(services []*domain.Service) []*ServiceResponse {
	result := make([]*ServiceResponse, len(services))
	for i, svc := range services {
		result[i] = FromDomainService(svc)
	}
	return result
}
