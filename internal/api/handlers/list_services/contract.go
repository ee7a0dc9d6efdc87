package list_services

import (
	"context"

	catalogModels "github.com/lumina-salon/reservation-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]*catalogModels.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
