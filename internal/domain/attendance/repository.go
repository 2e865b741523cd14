package attendance

import (
	"context"
	"time"
)

// ListQuery narrows a ledger listing. Zero values mean no filter.
type ListQuery struct {
	EmployeeID string
	Date       *time.Time
}

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert writes the mark for (EmployeeID, Date), overwriting the status of an
	// existing record for that day. created is true when a new record was inserted.
	Upsert(ctx context.Context, attendance Attendance) (result Attendance, created bool, err error)

	// List returns records newest date first, with employee name and department
	// joined in ("Unknown" when the employee no longer exists)
	List(ctx context.Context, query ListQuery) ([]Attendance, error)

	// ListByEmployeeID returns one employee's records, newest date first
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Attendance, error)

	Delete(ctx context.Context, id string) error

	// DeleteByEmployeeID removes every record of an employee and returns how many went
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)
}
