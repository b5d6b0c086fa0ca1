package generate_bio

import (
	"context"

	"github.com/nvmanh/SpaDesk-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GenerateBio(ctx context.Context, employeeID int64) (*models.BioResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
