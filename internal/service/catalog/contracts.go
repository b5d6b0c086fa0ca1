package catalog

import (
	"context"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, status *domain.ServiceStatus) ([]*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	MaxCodeNumber(ctx context.Context) (int, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, filter domain.EmployeesFilter) ([]*domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	UpdateBio(ctx context.Context, id int64, bio string) error
	MaxCodeNumber(ctx context.Context) (int, error)
}

// BookingRepository интерфейс репозитория бронирований
// Используется для сводки по результатам мастера
type BookingRepository interface {
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TextGenClient интерфейс клиента генерации текста
type TextGenClient interface {
	CompleteWithFallback(ctx context.Context, prompt string, fallback string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
