package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// MarkAttendance records Present/Absent for an employee's calendar day, updating
	// an existing mark for the same day instead of duplicating it
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error)

	// ListAttendance retrieves records with optional employee and date filters
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	// GetEmployeeAttendance returns one employee's records with present/absent totals
	GetEmployeeAttendance(ctx context.Context, employeeID string) (EmployeeAttendanceResponse, error)

	// DeleteAttendance removes a single record
	DeleteAttendance(ctx context.Context, id string) error
}
