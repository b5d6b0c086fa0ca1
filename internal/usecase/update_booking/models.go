package update_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

// Request модель запроса на редактирование бронирования.
// Форма редактирования присылает полный набор полей, а не дельту
type Request struct {
	BookingID      uuid.UUID        // ID редактируемого бронирования
	Date           time.Time        // Дата бронирования (без времени)
	StartTime      types.TimeString // Время начала (например, "10:30")
	CustomerName   string           // Имя клиента
	CustomerPhone  string           // Телефон клиента
	ServiceID      int64            // ID услуги
	StaffIDs       []int64          // Мастера, первый в списке - основной
	DiscountAmount float64          // Скидка в валюте счета
	Notes          *string          // Заметки администратора (опционально)
	Force          bool             // Сохранить несмотря на занятость всех комнат
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID              string           // UUID бронирования
	Code            string           // Код сохраняется с момента создания
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	DurationMinutes int              // Длительность

	CustomerName  string  // Имя клиента
	CustomerPhone string  // Телефон клиента
	StaffIDs      []int64 // Назначенные мастера
	ServiceID     int64   // ID услуги

	// Денормализованные данные
	ServiceName    string  // Название услуги
	StaffNames     string  // Имена мастеров
	TotalAmount    float64 // Итоговая сумма: max(0, цена - скидка)
	DiscountAmount float64 // Скидка
	Notes          *string // Заметки

	Status string // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
