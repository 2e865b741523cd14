package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	// xmax is zero only for a freshly inserted tuple
	query := `
		INSERT INTO attendances (id, employee_id, attendance_date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, attendance_date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, employee_id, attendance_date, status, created_at, updated_at, (xmax = 0)
	`

	var result attendance.Attendance
	var created bool
	err := q.QueryRow(ctx, query, a.ID, a.EmployeeID, a.Date, a.Status).Scan(
		&result.ID, &result.EmployeeID, &result.Date, &result.Status,
		&result.CreatedAt, &result.UpdatedAt, &created,
	)
	if err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return result, created, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, query attendance.ListQuery) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if query.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, query.EmployeeID)
		argIdx++
	}
	if query.Date != nil {
		conditions = append(conditions, fmt.Sprintf("a.attendance_date = $%d", argIdx))
		args = append(args, *query.Date)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	sql := `
		SELECT a.id, a.employee_id, a.attendance_date, a.status, a.created_at, a.updated_at,
			COALESCE(e.full_name, 'Unknown'), COALESCE(e.department, 'Unknown')
		FROM attendances a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		` + whereClause + `
		ORDER BY a.attendance_date DESC, a.created_at DESC
	`

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var rec attendance.Attendance
		var name, department string
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
			&name, &department,
		)
		if err != nil {
			return nil, err
		}
		rec.EmployeeName = &name
		rec.Department = &department
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByEmployeeID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, attendance_date, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		ORDER BY attendance_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var rec attendance.Attendance
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(id); err != nil {
		return attendance.ErrAttendanceNotFound
	}

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM attendances WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

// DeleteByEmployeeID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE employee_id = $1`, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance for employee %s: %w", employeeID, err)
	}
	return tag.RowsAffected(), nil
}
