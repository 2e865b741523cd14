package dashboard

import (
	"context"
	"time"
)

// AttendanceCounts holds present/absent marks of one day
type AttendanceCounts struct {
	Present int64
	Absent  int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// CountEmployees returns the size of the employee directory
	CountEmployees(ctx context.Context) (int64, error)

	// GetAttendanceCountsByDate counts marks of a civil date (midnight UTC)
	GetAttendanceCountsByDate(ctx context.Context, date time.Time) (AttendanceCounts, error)

	// GetDepartmentCounts returns headcount per department, largest first
	GetDepartmentCounts(ctx context.Context) ([]DepartmentCount, error)
}
