package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/dbmetrics"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"code",
	"booking_date",
	"start_time",
	"duration_minutes",
	"customer_name",
	"customer_phone",
	"staff_ids",
	"service_id",
	"service_name",
	"staff_names",
	"total_amount",
	"discount_amount",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// ID генерируется на стороне приложения (uuid), код бронирования должен быть
// уже присвоен usecase'ом. Если в контексте есть активная транзакция,
// запрос выполняется в ней.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"code",
			"booking_date",
			"start_time",
			"duration_minutes",
			"customer_name",
			"customer_phone",
			"staff_ids",
			"service_id",
			"service_name",
			"staff_names",
			"total_amount",
			"discount_amount",
			"status",
			"notes",
		).
		Values(
			booking.ID,
			booking.Code,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationMinutes,
			booking.CustomerName,
			booking.CustomerPhone,
			pq.Array(booking.StaffIDs),
			booking.ServiceID,
			booking.ServiceName,
			booking.StaffNames,
			booking.TotalAmount,
			booking.DiscountAmount,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListWithFilter получает бронирования с гибкой фильтрацией по периоду,
// статусу и мастеру.
//
// Для выборки одного дня сортировка идет по времени начала (ASC) - это
// порядок, который ожидают аллокатор комнат и расписание. Для периода -
// по дате и времени (DESC, сначала новые).
//
// Если вызов идет внутри транзакции и фильтр указывает на конкретную дату,
// строки блокируются FOR UPDATE - так сериализуется check-then-insert
// при создании бронирования.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("? = ANY(staff_ids)", *filter.StaffID))
	}

	singleDay := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDay {
		selectBuilder = selectBuilder.OrderBy("start_time ASC, created_at ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDay {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update полностью обновляет бронирование по ID.
// Код бронирования не перезаписывается - он присваивается один раз при создании.
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", booking.BookingDate).
		Set("start_time", booking.StartTime).
		Set("duration_minutes", booking.DurationMinutes).
		Set("customer_name", booking.CustomerName).
		Set("customer_phone", booking.CustomerPhone).
		Set("staff_ids", pq.Array(booking.StaffIDs)).
		Set("service_id", booking.ServiceID).
		Set("service_name", booking.ServiceName).
		Set("staff_names", booking.StaffNames).
		Set("total_amount", booking.TotalAmount).
		Set("discount_amount", booking.DiscountAmount).
		Set("status", booking.Status).
		Set("notes", booking.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// MaxCodeNumber возвращает максимальный числовой суффикс кода бронирования
// по ВСЕМ бронированиям (не только за день). 0, если бронирований нет.
// Используется для генерации следующего кода "BK###".
func (r *Repository) MaxCodeNumber(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.
		Select("COALESCE(MAX(NULLIF(regexp_replace(code, '\\D', '', 'g'), '')::int), 0)").
		From("bookings").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MaxCodeNumber - build select query: %v", ErrBuildQuery, err)
	}

	var maxNumber int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&maxNumber); err != nil {
		return 0, fmt.Errorf("%w: MaxCodeNumber - scan result: %v", ErrScanRow, err)
	}

	return maxNumber, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в модель бронирования
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var staffIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Code,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&staffIDs,
		&booking.ServiceID,
		&booking.ServiceName,
		&booking.StaffNames,
		&booking.TotalAmount,
		&booking.DiscountAmount,
		&booking.Status,
		&booking.Notes,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	booking.StaffIDs = []int64(staffIDs)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
