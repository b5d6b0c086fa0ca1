package models

import (
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
)

// Request модели

// SaveServiceRequest запрос на создание/обновление услуги
type SaveServiceRequest struct {
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	DurationMinutes    int     `json:"durationMinutes"`
	Price              float64 `json:"price"`
	RequiredStaffCount int     `json:"requiredStaffCount"`
	Status             string  `json:"status"`
	Description        string  `json:"description"`
	ImageURL           *string `json:"imageUrl,omitempty"`
}

// SaveEmployeeRequest запрос на создание/обновление сотрудника
type SaveEmployeeRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Status   string `json:"status"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID                 int64   `json:"id"`
	Code               string  `json:"code"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	DurationMinutes    int     `json:"durationMinutes"`
	Price              float64 `json:"price"`
	RequiredStaffCount int     `json:"requiredStaffCount"`
	Status             string  `json:"status"`
	Description        string  `json:"description"`
	ImageURL           *string `json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// EmployeeResponse ответ с данными сотрудника
type EmployeeResponse struct {
	ID       int64   `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Status   string  `json:"status"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	Bio      *string `json:"bio,omitempty"`
	Bookable bool    `json:"bookable"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmployeeListResponse ответ со списком сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// BioResponse ответ с сгенерированной биографией
type BioResponse struct {
	EmployeeID int64  `json:"employeeId"`
	Bio        string `json:"bio"`
}

// PerformanceSummaryResponse сводка по результатам мастера за период
type PerformanceSummaryResponse struct {
	EmployeeID        int64   `json:"employeeId"`
	From              string  `json:"from"`
	To                string  `json:"to"`
	CompletedBookings int     `json:"completedBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
	Summary           string  `json:"summary"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель услуги в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:                 s.ID,
		Code:               s.Code,
		Name:               s.Name,
		Category:           string(s.Category),
		DurationMinutes:    s.DurationMinutes,
		Price:              s.Price,
		RequiredStaffCount: s.RequiredStaffCount,
		Status:             string(s.Status),
		Description:        s.Description,
		ImageURL:           s.ImageURL,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, svc := range services {
		if svcResp := FromDomainService(svc); svcResp != nil {
			resp.Services = append(resp.Services, *svcResp)
		}
	}

	return resp
}

// FromDomainEmployee конвертирует domain модель сотрудника в DTO
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}

	return &EmployeeResponse{
		ID:        e.ID,
		Code:      e.Code,
		Name:      e.Name,
		Position:  string(e.Position),
		Status:    string(e.Status),
		Phone:     e.Phone,
		Email:     e.Email,
		Bio:       e.Bio,
		Bookable:  e.IsBookable(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// FromDomainEmployeeList конвертирует список сотрудников в DTO
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	resp := &EmployeeListResponse{
		Employees: make([]EmployeeResponse, 0, len(employees)),
	}

	for _, emp := range employees {
		if empResp := FromDomainEmployee(emp); empResp != nil {
			resp.Employees = append(resp.Employees, *empResp)
		}
	}

	return resp
}
