package leave

import (
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

func leaveTypeNames() []string {
	names := make([]string, 0, len(LeaveTypes))
	for _, t := range LeaveTypes {
		names = append(names, string(t))
	}
	return names
}

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"employeeId"`
	LeaveType  string `json:"leaveType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	// Employee ID
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "Employee ID is required",
		})
	}

	// Leave type
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "Leave type is required",
		})
	} else if !validator.IsInSlice(r.LeaveType, leaveTypeNames()) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "Leave type is not supported",
		})
	}

	// Dates
	if _, ok := validator.IsValidISODate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "Valid start date is required",
		})
	}
	if _, ok := validator.IsValidISODate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "Valid end date is required",
		})
	}

	// Reason
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "Reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewLeaveRequestRequest struct {
	ID            string  `json:"-"`
	Status        string  `json:"status"`
	ReviewedBy    *string `json:"reviewedBy,omitempty"`
	AdminComments *string `json:"adminComments,omitempty"`
}

func (r *ReviewLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Status != string(LeaveRequestStatusApproved) && r.Status != string(LeaveRequestStatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Valid status (Approved/Rejected) is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestFilter struct {
	Status     string `json:"status,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !validator.IsInSlice(f.Status, []string{
		string(LeaveRequestStatusPending),
		string(LeaveRequestStatusApproved),
		string(LeaveRequestStatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Pending, Approved or Rejected",
		})
	}

	if f.StartDate != "" {
		if _, ok := validator.IsValidISODate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be a valid ISO8601 date",
			})
		}
	}

	if f.EndDate != "" {
		if _, ok := validator.IsValidISODate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be a valid ISO8601 date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID            string  `json:"_id"`
	EmployeeID    string  `json:"employeeId"`
	EmployeeName  string  `json:"employeeName"`
	Department    string  `json:"department"`
	LeaveType     string  `json:"leaveType"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	TotalDays     int     `json:"totalDays"`
	AppliedDate   string  `json:"appliedDate"`
	ReviewedBy    *string `json:"reviewedBy"`
	ReviewedDate  *string `json:"reviewedDate"`
	AdminComments *string `json:"adminComments"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

type EmployeeLeaveSummary struct {
	Total             int `json:"total"`
	Pending           int `json:"pending"`
	Approved          int `json:"approved"`
	Rejected          int `json:"rejected"`
	TotalDaysApproved int `json:"totalDaysApproved"`
}

type EmployeeLeaveResponse struct {
	Employee employee.EmployeeInfo  `json:"employee"`
	Summary  EmployeeLeaveSummary   `json:"summary"`
	Leaves   []LeaveRequestResponse `json:"leaves"`
}

type StatusCountResponse struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type LeaveTypeStatResponse struct {
	LeaveType string `json:"leaveType"`
	Count     int64  `json:"count"`
	TotalDays int64  `json:"totalDays"`
}

type LeaveStatsResponse struct {
	Overall   StatusCountResponse     `json:"overall"`
	ThisMonth StatusCountResponse     `json:"thisMonth"`
	ByType    []LeaveTypeStatResponse `json:"byType"`
}
