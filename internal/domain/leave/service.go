package leave

import (
	"context"
)

type LeaveService interface {
	// Request lifecycle
	ApplyLeave(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	ReviewLeaveRequest(ctx context.Context, req ReviewLeaveRequestRequest) (LeaveRequestResponse, error)
	CancelLeaveRequest(ctx context.Context, id string) error

	// Queries
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
	GetEmployeeLeaves(ctx context.Context, employeeID string) (EmployeeLeaveResponse, error)
	GetLeaveStats(ctx context.Context) (LeaveStatsResponse, error)
}
