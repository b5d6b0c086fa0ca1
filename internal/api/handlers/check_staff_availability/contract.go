package check_staff_availability

import (
	"context"

	checkAvailability "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/check_availability"
)

type CheckAvailabilityUseCase interface {
	CheckStaff(ctx context.Context, req *checkAvailability.StaffRequest) (*checkAvailability.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
