package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingNotEditable возвращается при попытке редактировать
	// отмененное бронирование
	ErrBookingNotEditable = errors.New("update_booking: cancelled booking cannot be edited")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("update_booking: service not found")

	// ErrServiceInactive возвращается при смене услуги на снятую с продажи
	ErrServiceInactive = errors.New("update_booking: service is not active")

	// ErrEmployeeNotFound возвращается, когда один из мастеров не найден
	ErrEmployeeNotFound = errors.New("update_booking: employee not found")

	// ErrEmployeeNotBookable возвращается, когда сотрудник не может быть назначен
	// на бронирование (не мастер или не в активном статусе)
	ErrEmployeeNotBookable = errors.New("update_booking: employee is not bookable")

	// ErrInsufficientStaff возвращается, когда мастеров назначено меньше,
	// чем требует услуга
	ErrInsufficientStaff = errors.New("update_booking: not enough staff assigned")

	// ErrStaffConflict возвращается, когда один из мастеров уже занят
	// в пересекающемся бронировании. Жесткий отказ, не обходится force-флагом
	ErrStaffConflict = errors.New("update_booking: staff member is already busy")

	// ErrRoomsFull возвращается, когда все комнаты на новый интервал заняты.
	// Мягкий отказ: повтор запроса с force=true сохраняет изменения сверх емкости
	ErrRoomsFull = errors.New("update_booking: all rooms are occupied")

	// ErrOutsideBusinessHours возвращается, когда интервал бронирования
	// не помещается в рабочий день салона
	ErrOutsideBusinessHours = errors.New("update_booking: booking does not fit business hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
