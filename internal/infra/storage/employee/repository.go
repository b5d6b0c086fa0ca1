package employee

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/dbmetrics"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/psqlbuilder"
)

var employeeColumns = []string{
	"id",
	"code",
	"name",
	"position",
	"status",
	"phone",
	"email",
	"bio",
	"created_at",
	"updated_at",
}

// Repository репозиторий сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового сотрудника
func (r *Repository) Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("employees").
		Columns(
			"code",
			"name",
			"position",
			"status",
			"phone",
			"email",
			"bio",
		).
		Values(
			emp.Code,
			emp.Name,
			emp.Position,
			emp.Status,
			emp.Phone,
			emp.Email,
			emp.Bio,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&emp.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	emp.CreatedAt = createdAt.Time
	emp.UpdatedAt = updatedAt.Time

	return emp, nil
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(employeeColumns...).
		From("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	emp, err := scanEmployee(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan employee: %v", ErrScanRow, err)
	}

	return emp, nil
}

// GetByIDs получает сотрудников по списку ID.
// Порядок результата соответствует порядку переданных ID; неизвестные ID
// пропускаются без ошибки.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Employee, error) {
	if len(ids) == 0 {
		return []*domain.Employee{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(employeeColumns...).
		From("employees").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	byID := make(map[int64]*domain.Employee, len(ids))
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}
		byID[emp.ID] = emp
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	ordered := make([]*domain.Employee, 0, len(ids))
	for _, id := range ids {
		if emp, ok := byID[id]; ok {
			ordered = append(ordered, emp)
		}
	}

	return ordered, nil
}

// List получает список сотрудников с фильтрацией по должности и статусу
func (r *Repository) List(ctx context.Context, filter domain.EmployeesFilter) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(employeeColumns...).
		From("employees").
		OrderBy("code ASC")

	if filter.Position != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"position": *filter.Position})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return employees, nil
}

// Update полностью обновляет сотрудника по ID (код не перезаписывается)
func (r *Repository) Update(ctx context.Context, emp *domain.Employee) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("employees").
		Set("name", emp.Name).
		Set("position", emp.Position).
		Set("status", emp.Status).
		Set("phone", emp.Phone).
		Set("email", emp.Email).
		Set("bio", emp.Bio).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": emp.ID}).
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
		return ErrEmployeeNotFound
	}

	return nil
}

// UpdateBio обновляет биографию сотрудника
func (r *Repository) UpdateBio(ctx context.Context, id int64, bio string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("employees").
		Set("bio", bio).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateBio - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateBio - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateBio - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// MaxCodeNumber возвращает максимальный числовой суффикс кода сотрудника
func (r *Repository) MaxCodeNumber(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.
		Select("COALESCE(MAX(NULLIF(regexp_replace(code, '\\D', '', 'g'), '')::int), 0)").
		From("employees").
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

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var emp domain.Employee
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&emp.ID,
		&emp.Code,
		&emp.Name,
		&emp.Position,
		&emp.Status,
		&emp.Phone,
		&emp.Email,
		&emp.Bio,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	emp.CreatedAt = createdAt.Time
	emp.UpdatedAt = updatedAt.Time

	return &emp, nil
}
