package create_booking

import (
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date           time.Time        // Дата бронирования (без времени)
	StartTime      types.TimeString // Время начала (например, "10:30")
	CustomerName   string           // Имя клиента
	CustomerPhone  string           // Телефон клиента
	ServiceID      int64            // ID услуги
	StaffIDs       []int64          // Мастера, первый в списке - основной
	DiscountAmount float64          // Скидка в валюте счета
	Notes          *string          // Заметки администратора (опционально)
	Force          bool             // Создать несмотря на занятость всех комнат
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string           // UUID созданного бронирования
	Code            string           // Человекочитаемый код вида "BK042"
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	DurationMinutes int              // Длительность (снимок длительности услуги)

	CustomerName  string  // Имя клиента
	CustomerPhone string  // Телефон клиента
	StaffIDs      []int64 // Назначенные мастера
	ServiceID     int64   // ID услуги

	// Денормализованные данные
	ServiceName    string  // Название услуги на момент создания
	StaffNames     string  // Имена мастеров на момент создания
	TotalAmount    float64 // Итоговая сумма: max(0, цена - скидка)
	DiscountAmount float64 // Скидка
	Notes          *string // Заметки

	Status string // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
