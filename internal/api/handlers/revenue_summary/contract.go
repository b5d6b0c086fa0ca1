package revenue_summary

import (
	"context"

	revenueSummary "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/revenue_summary"
)

type RevenueSummaryUseCase interface {
	Execute(ctx context.Context, req *revenueSummary.Request) (*revenueSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
