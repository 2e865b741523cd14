package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

// GetAttendanceCountsByDate implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetAttendanceCountsByDate(ctx context.Context, date time.Time) (dashboard.AttendanceCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) as present,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) as absent
		FROM attendances
		WHERE attendance_date = $1
	`

	var counts dashboard.AttendanceCounts
	if err := q.QueryRow(ctx, query, date).Scan(&counts.Present, &counts.Absent); err != nil {
		return dashboard.AttendanceCounts{}, fmt.Errorf("failed to get attendance counts: %w", err)
	}
	return counts, nil
}

// GetDepartmentCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetDepartmentCounts(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department, COUNT(*) as total
		FROM employees
		GROUP BY department
		ORDER BY total DESC, department ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get department counts: %w", err)
	}
	defer rows.Close()

	departments := make([]dashboard.DepartmentCount, 0)
	for rows.Next() {
		var d dashboard.DepartmentCount
		if err := rows.Scan(&d.Name, &d.Count); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}
