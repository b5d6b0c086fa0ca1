package performance_summary

import (
	"context"
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	PerformanceSummary(ctx context.Context, employeeID int64, from, to time.Time) (*models.PerformanceSummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
