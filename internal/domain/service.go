package domain

import "time"

// ServiceCategory категория spa-услуги
type ServiceCategory string

const (
	CategoryMassage       ServiceCategory = "massage"
	CategoryFacial        ServiceCategory = "facial"
	CategoryBodyTreatment ServiceCategory = "body_treatment"
	CategoryFootCare      ServiceCategory = "foot_care"
	CategoryPackage       ServiceCategory = "package"
)

// ServiceStatus статус услуги в каталоге
type ServiceStatus string

const (
	ServiceActive  ServiceStatus = "active"
	ServiceStopped ServiceStatus = "stopped"
)

// Service represents a sellable spa treatment.
// DurationMinutes и RequiredStaffCount - единственные источники данных для
// расчета емкости; бронирования снимают с услуги снимок длительности и цены
// в момент создания, изменение услуги их не затрагивает.
type Service struct {
	ID                 int64
	Code               string // Человекочитаемый код вида "SV007"
	Name               string
	Category           ServiceCategory
	DurationMinutes    int     // > 0
	Price              float64 // >= 0
	RequiredStaffCount int     // >= 0
	Status             ServiceStatus
	Description        string
	ImageURL           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если услугу можно бронировать
func (s *Service) IsActive() bool {
	return s.Status == ServiceActive
}

// ValidServiceCategory проверяет, что категория допустима
func ValidServiceCategory(c ServiceCategory) bool {
	switch c {
	case CategoryMassage, CategoryFacial, CategoryBodyTreatment, CategoryFootCare, CategoryPackage:
		return true
	default:
		return false
	}
}
