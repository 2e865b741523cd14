package leave

import (
	"context"
	"time"
)

// RequestQuery narrows a leave listing. Zero values mean no filter; the start
// date window applies only when both bounds are set.
type RequestQuery struct {
	Status     LeaveRequestStatus
	EmployeeID string
	StartFrom  *time.Time
	StartTo    *time.Time
}

// StatusCounts holds request counts per lifecycle status
type StatusCounts struct {
	Pending  int64
	Approved int64
	Rejected int64
}

// Total is the sum of all statuses.
func (c StatusCounts) Total() int64 {
	return c.Pending + c.Approved + c.Rejected
}

// TypeStats aggregates requests of one leave type
type TypeStats struct {
	LeaveType LeaveType
	Count     int64
	TotalDays int64
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List returns matching requests, newest applied first
	List(ctx context.Context, query RequestQuery) ([]LeaveRequest, error)

	// LockEmployee serializes leave writers for one employee until the surrounding
	// transaction ends
	LockEmployee(ctx context.Context, employeeID string) error

	// HasOverlapping reports whether a Pending or Approved request of the employee
	// intersects [start, end]
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// UpdateReview stores the review fields of a request that is still Pending.
	// It returns ErrLeaveRequestNotPending when the stored request was already decided.
	UpdateReview(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// DeletePending removes a request only while it is Pending
	DeletePending(ctx context.Context, id string) error

	// DeleteByEmployeeID removes an employee's whole leave history
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)

	// CountByStatus counts requests per status, optionally limited to those applied
	// within [appliedFrom, appliedTo)
	CountByStatus(ctx context.Context, appliedFrom, appliedTo *time.Time) (StatusCounts, error)

	// StatsByType returns count and summed total days per leave type
	StatsByType(ctx context.Context) ([]TypeStats, error)
}
