package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceInactive возвращается, когда услуга снята с продажи
	ErrServiceInactive = errors.New("create_booking: service is not active")

	// ErrEmployeeNotFound возвращается, когда один из мастеров не найден
	ErrEmployeeNotFound = errors.New("create_booking: employee not found")

	// ErrEmployeeNotBookable возвращается, когда сотрудник не может быть назначен
	// на бронирование (не мастер или не в активном статусе)
	ErrEmployeeNotBookable = errors.New("create_booking: employee is not bookable")

	// ErrInsufficientStaff возвращается, когда мастеров назначено меньше,
	// чем требует услуга
	ErrInsufficientStaff = errors.New("create_booking: not enough staff assigned")

	// ErrStaffConflict возвращается, когда один из мастеров уже занят
	// в пересекающемся бронировании. Жесткий отказ, не обходится force-флагом
	ErrStaffConflict = errors.New("create_booking: staff member is already busy")

	// ErrRoomsFull возвращается, когда все комнаты на интервал заняты.
	// Мягкий отказ: повтор запроса с force=true создает бронирование сверх емкости
	ErrRoomsFull = errors.New("create_booking: all rooms are occupied")

	// ErrOutsideBusinessHours возвращается, когда интервал бронирования
	// не помещается в рабочий день салона
	ErrOutsideBusinessHours = errors.New("create_booking: booking does not fit business hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
