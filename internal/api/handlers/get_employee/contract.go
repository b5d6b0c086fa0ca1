package get_employee

import (
	"context"

	"github.com/nvmanh/SpaDesk-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetEmployee(ctx context.Context, id int64) (*models.EmployeeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
