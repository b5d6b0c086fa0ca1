package domain

import "time"

// EmployeePosition должность сотрудника
type EmployeePosition string

const (
	PositionManager      EmployeePosition = "manager"
	PositionTherapist    EmployeePosition = "therapist"
	PositionReceptionist EmployeePosition = "receptionist"
	PositionSecurity     EmployeePosition = "security"
)

// EmployeeStatus статус сотрудника
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeOnLeave  EmployeeStatus = "on_leave"
	EmployeeResigned EmployeeStatus = "resigned"
)

// Employee represents a staff member
type Employee struct {
	ID       int64
	Code     string // Человекочитаемый код вида "EMP012"
	Name     string
	Position EmployeePosition
	Status   EmployeeStatus
	Phone    string
	Email    string
	Bio      *string // Сгенерированная биография (опционально)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable возвращает true, если сотрудника можно назначать на бронирования:
// только действующие мастера (therapist + active) попадают в расписание
func (e *Employee) IsBookable() bool {
	return e.Position == PositionTherapist && e.Status == EmployeeActive
}

// ValidEmployeePosition проверяет, что должность допустима
func ValidEmployeePosition(p EmployeePosition) bool {
	switch p {
	case PositionManager, PositionTherapist, PositionReceptionist, PositionSecurity:
		return true
	default:
		return false
	}
}

// EmployeesFilter фильтр для выборки сотрудников
type EmployeesFilter struct {
	Position *EmployeePosition
	Status   *EmployeeStatus
}
