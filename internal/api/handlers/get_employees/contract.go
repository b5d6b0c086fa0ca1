package get_employees

import (
	"context"

	"github.com/nvmanh/SpaDesk-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetEmployees(ctx context.Context, position, status *string) (*models.EmployeeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
