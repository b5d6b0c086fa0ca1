package get_room_plan

import (
	"context"

	getRoomPlan "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/get_room_plan"
)

type GetRoomPlanUseCase interface {
	Execute(ctx context.Context, req *getRoomPlan.Request) (*getRoomPlan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
