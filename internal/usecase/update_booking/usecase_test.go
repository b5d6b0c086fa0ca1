package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	bookingRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/booking"
	serviceRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/service"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	byID     map[uuid.UUID]*domain.Booking
	bookings []*domain.Booking

	updated *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copy := *booking
	return &copy, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	f.updated = booking
	return nil
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

func testDate() time.Time {
	return time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:              uuid.New(),
		Code:            "BK007",
		BookingDate:     testDate(),
		StartTime:       "11:30",
		DurationMinutes: 60,
		CustomerName:    "Иван Петров",
		CustomerPhone:   "+79001234567",
		StaffIDs:        []int64{1},
		ServiceID:       1,
		ServiceName:     "Тайский массаж",
		StaffNames:      "Анна",
		TotalAmount:     500000,
		Status:          domain.StatusConfirmed,
		CreatedAt:       time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
	}
}

func blockingBooking(start types.TimeString, durationMinutes int, staffIDs ...int64) *domain.Booking {
	return &domain.Booking{
		ID:              uuid.New(),
		Code:            "BK100",
		BookingDate:     testDate(),
		StartTime:       start,
		DurationMinutes: durationMinutes,
		StaffIDs:        staffIDs,
		Status:          domain.StatusConfirmed,
	}
}

func requestFor(booking *domain.Booking) *Request {
	return &Request{
		BookingID:     booking.ID,
		Date:          booking.BookingDate,
		StartTime:     booking.StartTime,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		ServiceID:     booking.ServiceID,
		StaffIDs:      booking.StaffIDs,
	}
}

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Тайский массаж", DurationMinutes: 60, Price: 500000, Status: domain.ServiceActive},
		2: {ID: 2, Name: "Уход за лицом", DurationMinutes: 90, Price: 700000, Status: domain.ServiceActive},
	}}
	employees := &fakeEmployeeRepo{employees: map[int64]*domain.Employee{
		1: {ID: 1, Name: "Анна", Position: domain.PositionTherapist, Status: domain.EmployeeActive},
		2: {ID: 2, Name: "Мария", Position: domain.PositionTherapist, Status: domain.EmployeeActive},
	}}
	return NewUseCase(repo, services, employees, fakeTxManager{}, nopLogger{})
}

func TestExecute_PreservesCodeAndStatus(t *testing.T) {
	existing := existingBooking()
	repo := &fakeBookingRepo{
		byID:     map[uuid.UUID]*domain.Booking{existing.ID: existing},
		bookings: []*domain.Booking{existing},
	}
	uc := newTestUseCase(repo)

	req := requestFor(existing)
	req.CustomerName = "Петр Сидоров"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "BK007", resp.Code)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Петр Сидоров", resp.CustomerName)
	assert.Equal(t, existing.CreatedAt, resp.CreatedAt)
}

func TestExecute_UnchangedTimeSkipsRoomCheck(t *testing.T) {
	existing := existingBooking()
	repo := &fakeBookingRepo{
		byID:     map[uuid.UUID]*domain.Booking{existing.ID: existing},
		bookings: []*domain.Booking{existing},
	}
	// Все комнаты заняты параллельными бронированиями
	for i := 0; i < domain.TotalRooms; i++ {
		repo.bookings = append(repo.bookings, blockingBooking("11:00", 120, int64(100+i)))
	}
	uc := newTestUseCase(repo)

	// Меняем только имя клиента, время остается прежним
	req := requestFor(existing)
	req.CustomerName = "Петр Сидоров"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_TimeChangeTriggersRoomCheck(t *testing.T) {
	existing := existingBooking()
	repo := &fakeBookingRepo{
		byID:     map[uuid.UUID]*domain.Booking{existing.ID: existing},
		bookings: []*domain.Booking{existing},
	}
	for i := 0; i < domain.TotalRooms; i++ {
		repo.bookings = append(repo.bookings, blockingBooking("14:00", 120, int64(100+i)))
	}
	uc := newTestUseCase(repo)

	req := requestFor(existing)
	req.StartTime = "14:30"

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRoomsFull)

	// force обходит занятость комнат
	req.Force = true
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_SelfExcludedFromCounts(t *testing.T) {
	existing := existingBooking()
	repo := &fakeBookingRepo{
		byID:     map[uuid.UUID]*domain.Booking{existing.ID: existing},
		bookings: []*domain.Booking{existing},
	}
	// 4 чужих бронирования + само редактируемое = 5 на интервале.
	// Без исключения самого себя комнаты были бы заняты
	for i := 0; i < domain.TotalRooms-1; i++ {
		repo.bookings = append(repo.bookings, blockingBooking("11:00", 120, int64(100+i)))
	}
	uc := newTestUseCase(repo)

	req := requestFor(existing)
	req.StartTime = "12:00" // время меняется, проверка комнат выполняется

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_StaffConflictIsHard(t *testing.T) {
	existing := existingBooking()
	conflict := blockingBooking("12:00", 60, 2)
	repo := &fakeBookingRepo{
		byID:     map[uuid.UUID]*domain.Booking{existing.ID: existing},
		bookings: []*domain.Booking{existing, conflict},
	}
	uc := newTestUseCase(repo)

	// Назначаем мастера 2, который занят в 12:00-13:00
	req := requestFor(existing)
	req.StartTime = "12:00"
	req.StaffIDs = []int64{2}
	req.Force = true

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStaffConflict)
	assert.Contains(t, err.Error(), conflict.Code)
}

func TestExecute_CancelledNotEditable(t *testing.T) {
	existing := existingBooking()
	existing.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{
		byID:     map[uuid.UUID]*domain.Booking{existing.ID: existing},
		bookings: []*domain.Booking{existing},
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), requestFor(existing))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotEditable)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[uuid.UUID]*domain.Booking{}}
	uc := newTestUseCase(repo)

	req := requestFor(existingBooking())

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ServiceChangeRefreshesSnapshots(t *testing.T) {
	existing := existingBooking()
	repo := &fakeBookingRepo{
		byID:     map[uuid.UUID]*domain.Booking{existing.ID: existing},
		bookings: []*domain.Booking{existing},
	}
	uc := newTestUseCase(repo)

	req := requestFor(existing)
	req.ServiceID = 2
	req.StaffIDs = []int64{2}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Уход за лицом", resp.ServiceName)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("13:00"), resp.EndTime)
	assert.Equal(t, "Мария", resp.StaffNames)
	assert.Equal(t, float64(700000), resp.TotalAmount)
}

func TestExecute_ZeroStaffAllowed(t *testing.T) {
	existing := existingBooking()
	repo := &fakeBookingRepo{
		byID:     map[uuid.UUID]*domain.Booking{existing.ID: existing},
		bookings: []*domain.Booking{existing},
	}
	uc := newTestUseCase(repo)

	// Снимаем всех мастеров: услуга не требует состава,
	// бронирование продолжает занимать только комнату
	req := requestFor(existing)
	req.StaffIDs = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, resp.StaffIDs)
	assert.Equal(t, "", resp.StaffNames)
}

func TestExecute_SwitchingToStoppedServiceRejected(t *testing.T) {
	existing := existingBooking()
	repo := &fakeBookingRepo{
		byID:     map[uuid.UUID]*domain.Booking{existing.ID: existing},
		bookings: []*domain.Booking{existing},
	}
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Тайский массаж", DurationMinutes: 60, Price: 500000, Status: domain.ServiceStopped},
		3: {ID: 3, Name: "Пакет выходного дня", DurationMinutes: 60, Price: 900000, Status: domain.ServiceStopped},
	}}
	employees := &fakeEmployeeRepo{employees: map[int64]*domain.Employee{
		1: {ID: 1, Name: "Анна", Position: domain.PositionTherapist, Status: domain.EmployeeActive},
	}}
	uc := NewUseCase(repo, services, employees, fakeTxManager{}, nopLogger{})

	// Смена на остановленную услугу запрещена
	req := requestFor(existing)
	req.ServiceID = 3

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceInactive)

	// Текущая услуга могла быть остановлена после создания - правки разрешены
	req = requestFor(existing)
	req.CustomerName = "Петр Сидоров"

	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
}
