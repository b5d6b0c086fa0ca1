package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	employeeRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/employee"
	serviceRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/service"
	"github.com/nvmanh/SpaDesk-BookingService/internal/service/catalog/models"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/ptr"
)

const (
	// fallbackBio фиксированный текст при недоступности генерации
	fallbackBio = "Опытный специалист салона. Описание будет добавлено позднее."

	// fallbackSummary фиксированный текст сводки при недоступности генерации
	fallbackSummary = "Сводка по результатам временно недоступна."
)

// Service сервис каталога: услуги и сотрудники.
// Тонкий CRUD без логики расписания; генерация текстов (биография, сводка)
// деградирует до фиксированных строк и никогда не блокирует операции.
type Service struct {
	serviceRepo  ServiceRepository
	employeeRepo EmployeeRepository
	bookingRepo  BookingRepository
	textGen      TextGenClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	employeeRepo EmployeeRepository,
	bookingRepo BookingRepository,
	textGen TextGenClient,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		employeeRepo: employeeRepo,
		bookingRepo:  bookingRepo,
		textGen:      textGen,
		logger:       logger,
	}
}

// --- Услуги ---

// CreateService создает новую услугу с генерацией кода "SV###"
func (s *Service) CreateService(ctx context.Context, req *models.SaveServiceRequest) (*models.ServiceResponse, error) {
	svc, err := s.serviceFromRequest(req)
	if err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	maxNumber, err := s.serviceRepo.MaxCodeNumber(ctx)
	if err != nil {
		s.logger.Error("CreateService: failed to get max code number: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}
	svc.Code = fmt.Sprintf("%s%03d", domain.ServiceCodePrefix, maxNumber+1)

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("CreateService: failed to create service: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d code=%s", created.ID, created.Code)
	return models.FromDomainService(created), nil
}

// UpdateService обновляет услугу.
// Изменение длительности или цены не затрагивает уже созданные бронирования -
// они хранят снимок на момент создания.
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.SaveServiceRequest) (*models.ServiceResponse, error) {
	existing, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	svc, err := s.serviceFromRequest(req)
	if err != nil {
		s.logger.Warn("UpdateService: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	svc.ID = existing.ID
	svc.Code = existing.Code

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		s.logger.Error("UpdateService: failed to update service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: successfully updated service id=%d", id)
	return models.FromDomainService(svc), nil
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// GetServices получает список услуг, опционально только активные
func (s *Service) GetServices(ctx context.Context, status *string) (*models.ServiceListResponse, error) {
	var domainStatus *domain.ServiceStatus
	if status != nil {
		st := domain.ServiceStatus(*status)
		if st != domain.ServiceActive && st != domain.ServiceStopped {
			s.logger.Warn("GetServices: invalid status=%s", *status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &st
	}

	services, err := s.serviceRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("GetServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// --- Сотрудники ---

// CreateEmployee создает нового сотрудника с генерацией кода "EMP###"
func (s *Service) CreateEmployee(ctx context.Context, req *models.SaveEmployeeRequest) (*models.EmployeeResponse, error) {
	emp, err := s.employeeFromRequest(req)
	if err != nil {
		s.logger.Warn("CreateEmployee: validation failed: %v", err)
		return nil, err
	}

	maxNumber, err := s.employeeRepo.MaxCodeNumber(ctx)
	if err != nil {
		s.logger.Error("CreateEmployee: failed to get max code number: %v", err)
		return nil, fmt.Errorf("%w: CreateEmployee - repository error: %v", ErrInternal, err)
	}
	emp.Code = fmt.Sprintf("%s%03d", domain.EmployeeCodePrefix, maxNumber+1)

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		s.logger.Error("CreateEmployee: failed to create employee: %v", err)
		return nil, fmt.Errorf("%w: CreateEmployee - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateEmployee: successfully created employee id=%d code=%s", created.ID, created.Code)
	return models.FromDomainEmployee(created), nil
}

// UpdateEmployee обновляет сотрудника
func (s *Service) UpdateEmployee(ctx context.Context, id int64, req *models.SaveEmployeeRequest) (*models.EmployeeResponse, error) {
	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("UpdateEmployee: employee id=%d not found", id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("UpdateEmployee: repository error for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateEmployee - repository error: %v", ErrInternal, err)
	}

	emp, err := s.employeeFromRequest(req)
	if err != nil {
		s.logger.Warn("UpdateEmployee: validation failed for employee id=%d: %v", id, err)
		return nil, err
	}

	emp.ID = existing.ID
	emp.Code = existing.Code
	emp.Bio = existing.Bio

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		s.logger.Error("UpdateEmployee: failed to update employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateEmployee - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateEmployee: successfully updated employee id=%d", id)
	return models.FromDomainEmployee(emp), nil
}

// GetEmployee получает сотрудника по ID
func (s *Service) GetEmployee(ctx context.Context, id int64) (*models.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetEmployee: repository error for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetEmployee - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployee(emp), nil
}

// GetEmployees получает список сотрудников с фильтрацией.
// Для подбора мастеров в форму бронирования используется фильтр
// position=therapist, status=active - только такие сотрудники попадают
// в строки расписания.
func (s *Service) GetEmployees(ctx context.Context, position, status *string) (*models.EmployeeListResponse, error) {
	filter := domain.EmployeesFilter{}

	if position != nil {
		p := domain.EmployeePosition(*position)
		if !domain.ValidEmployeePosition(p) {
			s.logger.Warn("GetEmployees: invalid position=%s", *position)
			return nil, fmt.Errorf("%w: invalid position", ErrInvalidInput)
		}
		filter.Position = &p
	}

	if status != nil {
		st := domain.EmployeeStatus(*status)
		if st != domain.EmployeeActive && st != domain.EmployeeOnLeave && st != domain.EmployeeResigned {
			s.logger.Warn("GetEmployees: invalid status=%s", *status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &st
	}

	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetEmployees: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetEmployees - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployeeList(employees), nil
}

// GenerateBio генерирует биографию сотрудника через внешний сервис.
// При недоступности сервиса используется фиксированный fallback-текст -
// операция всегда завершается успешно.
func (s *Service) GenerateBio(ctx context.Context, employeeID int64) (*models.BioResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("GenerateBio: employee id=%d not found", employeeID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GenerateBio: repository error for employee id=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: GenerateBio - repository error: %v", ErrInternal, err)
	}

	prompt := fmt.Sprintf(
		"Напиши короткую профессиональную биографию сотрудника spa-салона. Имя: %s. Должность: %s.",
		emp.Name, emp.Position,
	)

	bio := s.textGen.CompleteWithFallback(ctx, prompt, fallbackBio)

	if err := s.employeeRepo.UpdateBio(ctx, employeeID, bio); err != nil {
		s.logger.Error("GenerateBio: failed to save bio for employee id=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: GenerateBio - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GenerateBio: successfully generated bio for employee id=%d", employeeID)
	return &models.BioResponse{EmployeeID: employeeID, Bio: bio}, nil
}

// PerformanceSummary считает завершенные бронирования и выручку мастера за
// период и дополняет их сгенерированной текстовой сводкой (с fallback)
func (s *Service) PerformanceSummary(ctx context.Context, employeeID int64, from, to time.Time) (*models.PerformanceSummaryResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("PerformanceSummary: employee id=%d not found", employeeID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("PerformanceSummary: repository error for employee id=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: PerformanceSummary - repository error: %v", ErrInternal, err)
	}

	filter := domain.BookingsFilter{
		StartDate: &from,
		EndDate:   &to,
		Status:    ptr.Ptr(domain.StatusCompleted),
		StaffID:   &employeeID,
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("PerformanceSummary: failed to get bookings for employee id=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: PerformanceSummary - repository error: %v", ErrInternal, err)
	}

	var totalRevenue float64
	for _, b := range bookings {
		totalRevenue += b.TotalAmount
	}

	prompt := fmt.Sprintf(
		"Составь короткую сводку по результатам мастера spa-салона за период. Имя: %s. Завершенных процедур: %d. Выручка: %.0f.",
		emp.Name, len(bookings), totalRevenue,
	)

	summary := s.textGen.CompleteWithFallback(ctx, prompt, fallbackSummary)

	s.logger.Info("PerformanceSummary: employee id=%d, completed=%d, revenue=%.0f",
		employeeID, len(bookings), totalRevenue)

	return &models.PerformanceSummaryResponse{
		EmployeeID:        employeeID,
		From:              from.Format(domain.DateFormat),
		To:                to.Format(domain.DateFormat),
		CompletedBookings: len(bookings),
		TotalRevenue:      totalRevenue,
		Summary:           summary,
	}, nil
}

// --- Валидация входных данных ---

func (s *Service) serviceFromRequest(req *models.SaveServiceRequest) (*domain.Service, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.RequiredStaffCount < 0 {
		return nil, fmt.Errorf("%w: requiredStaffCount must not be negative", ErrInvalidInput)
	}

	category := domain.ServiceCategory(req.Category)
	if !domain.ValidServiceCategory(category) {
		return nil, fmt.Errorf("%w: invalid category", ErrInvalidInput)
	}

	status := domain.ServiceStatus(req.Status)
	if status == "" {
		status = domain.ServiceActive
	}
	if status != domain.ServiceActive && status != domain.ServiceStopped {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	return &domain.Service{
		Name:               req.Name,
		Category:           category,
		DurationMinutes:    req.DurationMinutes,
		Price:              req.Price,
		RequiredStaffCount: req.RequiredStaffCount,
		Status:             status,
		Description:        req.Description,
		ImageURL:           req.ImageURL,
	}, nil
}

func (s *Service) employeeFromRequest(req *models.SaveEmployeeRequest) (*domain.Employee, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	position := domain.EmployeePosition(req.Position)
	if !domain.ValidEmployeePosition(position) {
		return nil, fmt.Errorf("%w: invalid position", ErrInvalidInput)
	}

	status := domain.EmployeeStatus(req.Status)
	if status == "" {
		status = domain.EmployeeActive
	}
	if status != domain.EmployeeActive && status != domain.EmployeeOnLeave && status != domain.EmployeeResigned {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	return &domain.Employee{
		Name:     req.Name,
		Position: position,
		Status:   status,
		Phone:    req.Phone,
		Email:    req.Email,
	}, nil
}
