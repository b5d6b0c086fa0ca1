package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	serviceRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/service"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings      []*domain.Booking
	maxCodeNumber int

	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) MaxCodeNumber(_ context.Context) (int, error) {
	return f.maxCodeNumber, nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeEmployeeRepo struct {
	employees map[int64]*domain.Employee
}

func (f *fakeEmployeeRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Employee, error) {
	result := make([]*domain.Employee, 0, len(ids))
	for _, id := range ids {
		if emp, ok := f.employees[id]; ok {
			result = append(result, emp)
		}
	}
	return result, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func therapist(id int64, name string) *domain.Employee {
	return &domain.Employee{
		ID:       id,
		Name:     name,
		Position: domain.PositionTherapist,
		Status:   domain.EmployeeActive,
	}
}

func massage(id int64, durationMinutes int, price float64) *domain.Service {
	return &domain.Service{
		ID:              id,
		Name:            "Тайский массаж",
		Category:        domain.CategoryMassage,
		DurationMinutes: durationMinutes,
		Price:           price,
		Status:          domain.ServiceActive,
	}
}

func blockingBooking(start types.TimeString, durationMinutes int, staffIDs ...int64) *domain.Booking {
	return &domain.Booking{
		ID:              uuid.New(),
		Code:            "BK001",
		StartTime:       start,
		DurationMinutes: durationMinutes,
		StaffIDs:        staffIDs,
		Status:          domain.StatusConfirmed,
	}
}

func validRequest() *Request {
	return &Request{
		Date:          time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		StartTime:     "11:30",
		CustomerName:  "Иван Петров",
		CustomerPhone: "+79001234567",
		ServiceID:     1,
		StaffIDs:      []int64{1},
	}
}

func newTestUseCase(bookings *fakeBookingRepo) *UseCase {
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: massage(1, 60, 500000),
	}}
	employees := &fakeEmployeeRepo{employees: map[int64]*domain.Employee{
		1: therapist(1, "Анна"),
		2: therapist(2, "Мария"),
	}}
	return NewUseCase(bookings, services, employees, fakeTxManager{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{maxCodeNumber: 41}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "BK042", resp.Code)
	assert.Equal(t, types.TimeString("11:30"), resp.StartTime)
	assert.Equal(t, types.TimeString("12:30"), resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "Тайский массаж", resp.ServiceName)
	assert.Equal(t, "Анна", resp.StaffNames)
	assert.Equal(t, float64(500000), resp.TotalAmount)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_DiscountFloorsAtZero(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.DiscountAmount = 600000 // больше цены услуги

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, float64(0), resp.TotalAmount)
	assert.Equal(t, float64(600000), resp.DiscountAmount)
}

func TestExecute_StaffNamesJoined(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.StaffIDs = []int64{1, 2}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Анна, Мария", resp.StaffNames)
	assert.Equal(t, []int64{1, 2}, resp.StaffIDs)
}

func TestExecute_RoomsFull(t *testing.T) {
	repo := &fakeBookingRepo{}
	for i := 0; i < domain.TotalRooms; i++ {
		repo.bookings = append(repo.bookings, blockingBooking("11:00", 90, int64(100+i)))
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRoomsFull)
}

func TestExecute_ForceBypassesRoomCheck(t *testing.T) {
	repo := &fakeBookingRepo{}
	for i := 0; i < domain.TotalRooms; i++ {
		repo.bookings = append(repo.bookings, blockingBooking("11:00", 90, int64(100+i)))
	}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.Force = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

func TestExecute_StaffConflictIsHard(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{blockingBooking("11:00", 90, 1)},
	}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.Force = true // force не обходит конфликт мастера

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStaffConflict)
	assert.Contains(t, err.Error(), "BK001")
}

func TestExecute_BoundaryTouchIsNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{blockingBooking("10:30", 60, 1)}, // до 11:30
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest()) // 11:30-12:30
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

func TestExecute_CancelledDoesNotBlock(t *testing.T) {
	repo := &fakeBookingRepo{}
	for i := 0; i < domain.TotalRooms; i++ {
		b := blockingBooking("11:00", 90, int64(100+i))
		b.Status = domain.StatusCancelled
		repo.bookings = append(repo.bookings, b)
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	req := validRequest()
	req.ServiceID = 99

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ServiceInactive(t *testing.T) {
	repo := &fakeBookingRepo{}
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: func() *domain.Service {
			svc := massage(1, 60, 500000)
			svc.Status = domain.ServiceStopped
			return svc
		}(),
	}}
	employees := &fakeEmployeeRepo{employees: map[int64]*domain.Employee{1: therapist(1, "Анна")}}
	uc := NewUseCase(repo, services, employees, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	req := validRequest()
	req.StartTime = "21:30" // 60 минут не помещаются до 22:00

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_EmployeeNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	req := validRequest()
	req.StaffIDs = []int64{1, 99}

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_EmployeeNotBookable(t *testing.T) {
	repo := &fakeBookingRepo{}
	services := &fakeServiceRepo{services: map[int64]*domain.Service{1: massage(1, 60, 500000)}}
	employees := &fakeEmployeeRepo{employees: map[int64]*domain.Employee{
		1: {ID: 1, Name: "Олег", Position: domain.PositionManager, Status: domain.EmployeeActive},
	}}
	uc := NewUseCase(repo, services, employees, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmployeeNotBookable)
}

func TestExecute_ZeroStaffAllowed(t *testing.T) {
	// Услуга без требований к составу: бронирование без мастеров
	// допустимо и занимает только комнату
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.StaffIDs = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, resp.StaffIDs)
	assert.Equal(t, "", resp.StaffNames)
	assert.NotEmpty(t, resp.Code)
}

func TestExecute_InsufficientStaff(t *testing.T) {
	repo := &fakeBookingRepo{}
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: func() *domain.Service {
			svc := massage(1, 120, 900000)
			svc.RequiredStaffCount = 2
			return svc
		}(),
	}}
	employees := &fakeEmployeeRepo{employees: map[int64]*domain.Employee{1: therapist(1, "Анна")}}
	uc := NewUseCase(repo, services, employees, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientStaff)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "empty customer name", mutate: func(r *Request) { r.CustomerName = "" }},
		{name: "empty customer phone", mutate: func(r *Request) { r.CustomerPhone = "" }},
		{name: "duplicate staff", mutate: func(r *Request) { r.StaffIDs = []int64{1, 1} }},
		{name: "negative discount", mutate: func(r *Request) { r.DiscountAmount = -100 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "off-grid start time", mutate: func(r *Request) { r.StartTime = "11:35" }},
		{name: "before opening", mutate: func(r *Request) { r.StartTime = "9:30" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
