package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypeSick      LeaveType = "Sick Leave"
	LeaveTypeCasual    LeaveType = "Casual Leave"
	LeaveTypeAnnual    LeaveType = "Annual Leave"
	LeaveTypeMaternity LeaveType = "Maternity Leave"
	LeaveTypePaternity LeaveType = "Paternity Leave"
	LeaveTypeEmergency LeaveType = "Emergency Leave"
)

// LeaveTypes lists every accepted leave type in display order.
var LeaveTypes = []LeaveType{
	LeaveTypeSick,
	LeaveTypeCasual,
	LeaveTypeAnnual,
	LeaveTypeMaternity,
	LeaveTypePaternity,
	LeaveTypeEmergency,
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "Rejected"
)

// DefaultReviewer is recorded when a review names no reviewer.
const DefaultReviewer = "Admin"

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string

	// Snapshot of the employee at application time; never re-synced
	EmployeeName string
	Department   string

	LeaveType LeaveType
	StartDate time.Time
	EndDate   time.Time
	TotalDays int
	Reason    string

	Status        LeaveRequestStatus
	AppliedDate   time.Time
	ReviewedBy    *string
	ReviewedDate  *time.Time
	AdminComments *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending reports whether the request can still be reviewed or cancelled.
func (r LeaveRequest) IsPending() bool {
	return r.Status == LeaveRequestStatusPending
}

// BlocksOverlap reports whether the request occupies its dates for overlap checks.
func (r LeaveRequest) BlocksOverlap() bool {
	return r.Status == LeaveRequestStatusPending || r.Status == LeaveRequestStatusApproved
}
