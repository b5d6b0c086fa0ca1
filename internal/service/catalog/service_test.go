package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	employeeRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/employee"
	serviceRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/service"
	"github.com/nvmanh/SpaDesk-BookingService/internal/service/catalog/models"
)

type fakeServiceRepo struct {
	byID          map[int64]*domain.Service
	maxCodeNumber int

	created *domain.Service
	updated *domain.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	svc.ID = 10
	f.created = svc
	return svc, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.byID[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeServiceRepo) List(_ context.Context, _ *domain.ServiceStatus) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0, len(f.byID))
	for _, svc := range f.byID {
		result = append(result, svc)
	}
	return result, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, svc *domain.Service) error {
	f.updated = svc
	return nil
}

func (f *fakeServiceRepo) MaxCodeNumber(_ context.Context) (int, error) {
	return f.maxCodeNumber, nil
}

type fakeEmployeeRepo struct {
	byID          map[int64]*domain.Employee
	maxCodeNumber int

	created    *domain.Employee
	updated    *domain.Employee
	updatedBio string
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp *domain.Employee) (*domain.Employee, error) {
	emp.ID = 20
	f.created = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return nil, employeeRepo.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ domain.EmployeesFilter) ([]*domain.Employee, error) {
	result := make([]*domain.Employee, 0, len(f.byID))
	for _, emp := range f.byID {
		result = append(result, emp)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp *domain.Employee) error {
	f.updated = emp
	return nil
}

func (f *fakeEmployeeRepo) UpdateBio(_ context.Context, _ int64, bio string) error {
	f.updatedBio = bio
	return nil
}

func (f *fakeEmployeeRepo) MaxCodeNumber(_ context.Context) (int, error) {
	return f.maxCodeNumber, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeTextGen struct {
	response string
	failing  bool
}

func (f *fakeTextGen) CompleteWithFallback(_ context.Context, _ string, fallback string) string {
	if f.failing {
		return fallback
	}
	return f.response
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(services *fakeServiceRepo, employees *fakeEmployeeRepo, bookings *fakeBookingRepo, textGen *fakeTextGen) *Service {
	if services == nil {
		services = &fakeServiceRepo{byID: map[int64]*domain.Service{}}
	}
	if employees == nil {
		employees = &fakeEmployeeRepo{byID: map[int64]*domain.Employee{}}
	}
	if bookings == nil {
		bookings = &fakeBookingRepo{}
	}
	if textGen == nil {
		textGen = &fakeTextGen{response: "сгенерированный текст"}
	}
	return NewService(services, employees, bookings, textGen, nopLogger{})
}

func TestCreateService_GeneratesCode(t *testing.T) {
	repo := &fakeServiceRepo{byID: map[int64]*domain.Service{}, maxCodeNumber: 6}
	svc := newTestService(repo, nil, nil, nil)

	resp, err := svc.CreateService(context.Background(), &models.SaveServiceRequest{
		Name:            "Тайский массаж",
		Category:        string(domain.CategoryMassage),
		DurationMinutes: 60,
		Price:           500000,
	})
	require.NoError(t, err)

	assert.Equal(t, "SV007", resp.Code)
	assert.Equal(t, string(domain.ServiceActive), resp.Status) // статус по умолчанию
}

func TestCreateService_Validation(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil)

	tests := []struct {
		name string
		req  *models.SaveServiceRequest
	}{
		{name: "empty name", req: &models.SaveServiceRequest{Category: "massage", DurationMinutes: 60}},
		{name: "zero duration", req: &models.SaveServiceRequest{Name: "X", Category: "massage"}},
		{name: "negative price", req: &models.SaveServiceRequest{Name: "X", Category: "massage", DurationMinutes: 60, Price: -1}},
		{name: "invalid category", req: &models.SaveServiceRequest{Name: "X", Category: "haircut", DurationMinutes: 60}},
		{name: "invalid status", req: &models.SaveServiceRequest{Name: "X", Category: "massage", DurationMinutes: 60, Status: "archived"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateService(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateService_PreservesIDAndCode(t *testing.T) {
	repo := &fakeServiceRepo{byID: map[int64]*domain.Service{
		3: {ID: 3, Code: "SV003", Name: "Старое имя", Category: domain.CategoryFacial, DurationMinutes: 30, Status: domain.ServiceActive},
	}}
	svc := newTestService(repo, nil, nil, nil)

	resp, err := svc.UpdateService(context.Background(), 3, &models.SaveServiceRequest{
		Name:            "Новое имя",
		Category:        string(domain.CategoryFacial),
		DurationMinutes: 45,
		Price:           300000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "SV003", resp.Code)
	assert.Equal(t, "Новое имя", resp.Name)
	assert.Equal(t, 45, resp.DurationMinutes)
}

func TestUpdateService_NotFound(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil)

	_, err := svc.UpdateService(context.Background(), 99, &models.SaveServiceRequest{
		Name:            "X",
		Category:        "massage",
		DurationMinutes: 60,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateEmployee_GeneratesCode(t *testing.T) {
	repo := &fakeEmployeeRepo{byID: map[int64]*domain.Employee{}, maxCodeNumber: 11}
	svc := newTestService(nil, repo, nil, nil)

	resp, err := svc.CreateEmployee(context.Background(), &models.SaveEmployeeRequest{
		Name:     "Анна",
		Position: string(domain.PositionTherapist),
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP012", resp.Code)
	assert.True(t, resp.Bookable)
}

func TestUpdateEmployee_PreservesBio(t *testing.T) {
	bio := "Существующая биография"
	repo := &fakeEmployeeRepo{byID: map[int64]*domain.Employee{
		5: {ID: 5, Code: "EMP005", Name: "Анна", Position: domain.PositionTherapist, Status: domain.EmployeeActive, Bio: &bio},
	}}
	svc := newTestService(nil, repo, nil, nil)

	resp, err := svc.UpdateEmployee(context.Background(), 5, &models.SaveEmployeeRequest{
		Name:     "Анна Иванова",
		Position: string(domain.PositionTherapist),
		Status:   string(domain.EmployeeOnLeave),
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP005", resp.Code)
	require.NotNil(t, resp.Bio)
	assert.Equal(t, bio, *resp.Bio)
	assert.False(t, resp.Bookable) // on_leave не попадает в расписание
}

func TestGenerateBio_SavesGeneratedText(t *testing.T) {
	repo := &fakeEmployeeRepo{byID: map[int64]*domain.Employee{
		5: {ID: 5, Name: "Анна", Position: domain.PositionTherapist, Status: domain.EmployeeActive},
	}}
	textGen := &fakeTextGen{response: "Анна - опытный мастер массажа."}
	svc := newTestService(nil, repo, nil, textGen)

	resp, err := svc.GenerateBio(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Анна - опытный мастер массажа.", resp.Bio)
	assert.Equal(t, resp.Bio, repo.updatedBio)
}

func TestGenerateBio_FallbackOnFailure(t *testing.T) {
	repo := &fakeEmployeeRepo{byID: map[int64]*domain.Employee{
		5: {ID: 5, Name: "Анна", Position: domain.PositionTherapist, Status: domain.EmployeeActive},
	}}
	svc := newTestService(nil, repo, nil, &fakeTextGen{failing: true})

	resp, err := svc.GenerateBio(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, fallbackBio, resp.Bio)
}

func TestGenerateBio_EmployeeNotFound(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil)

	_, err := svc.GenerateBio(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestPerformanceSummary(t *testing.T) {
	employees := &fakeEmployeeRepo{byID: map[int64]*domain.Employee{
		5: {ID: 5, Name: "Анна", Position: domain.PositionTherapist, Status: domain.EmployeeActive},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{TotalAmount: 500000, Status: domain.StatusCompleted},
		{TotalAmount: 300000, Status: domain.StatusCompleted},
	}}
	svc := newTestService(nil, employees, bookings, &fakeTextGen{failing: true})

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	resp, err := svc.PerformanceSummary(context.Background(), 5, from, to)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.CompletedBookings)
	assert.Equal(t, float64(800000), resp.TotalRevenue)
	assert.Equal(t, "2026-08-01", resp.From)
	assert.Equal(t, "2026-08-31", resp.To)
	assert.Equal(t, fallbackSummary, resp.Summary)
}

func TestGetEmployee(t *testing.T) {
	repo := &fakeEmployeeRepo{byID: map[int64]*domain.Employee{
		5: {ID: 5, Code: "EMP005", Name: "Анна", Position: domain.PositionTherapist, Status: domain.EmployeeActive},
	}}
	svc := newTestService(nil, repo, nil, nil)

	resp, err := svc.GetEmployee(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "EMP005", resp.Code)
	assert.True(t, resp.Bookable)

	_, err = svc.GetEmployee(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestGetEmployees_InvalidFilters(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil)

	position := "janitor"
	_, err := svc.GetEmployees(context.Background(), &position, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	status := "fired"
	_, err = svc.GetEmployees(context.Background(), nil, &status)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
