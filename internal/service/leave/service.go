package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/utils"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type LeaveServiceImpl struct {
	db database.Transactor
	leave.LeaveRequestRepository
	employeeRepository employee.EmployeeRepository

	loc *time.Location
	now func() time.Time
}

func NewLeaveService(
	db database.Transactor,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	loc *time.Location,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRequestRepository,
		employeeRepository:     employeeRepository,
		loc:                    loc,
		now:                    time.Now,
	}
}

// ApplyLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApplyLeave(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	emp, err := s.employeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	startDate, _ := validator.ParseISODate(req.StartDate, s.loc)
	endDate, _ := validator.ParseISODate(req.EndDate, s.loc)
	if endDate.Before(startDate) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	var created leave.LeaveRequest
	err = s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.LeaveRequestRepository.LockEmployee(txCtx, emp.EmployeeID); err != nil {
			return err
		}

		overlapping, err := s.LeaveRequestRepository.HasOverlapping(txCtx, emp.EmployeeID, startDate, endDate)
		if err != nil {
			return err
		}
		if overlapping {
			return leave.ErrOverlappingLeave
		}

		created, err = s.LeaveRequestRepository.Create(txCtx, leave.LeaveRequest{
			EmployeeID:   emp.EmployeeID,
			EmployeeName: emp.FullName,
			Department:   emp.Department,
			LeaveType:    leave.LeaveType(req.LeaveType),
			StartDate:    startDate,
			EndDate:      endDate,
			TotalDays:    utils.InclusiveDays(startDate, endDate),
			Reason:       strings.TrimSpace(req.Reason),
			Status:       leave.LeaveRequestStatusPending,
			AppliedDate:  s.now(),
		})
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to apply leave: %w", err)
	}

	slog.Info("Leave request submitted",
		"id", created.ID,
		"employee_id", created.EmployeeID,
		"leave_type", created.LeaveType,
		"total_days", created.TotalDays,
	)
	return toLeaveRequestResponse(created), nil
}

// ReviewLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ReviewLeaveRequest(ctx context.Context, req leave.ReviewLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if !request.IsPending() {
		return leave.LeaveRequestResponse{}, &leave.StatusError{Op: "review", Status: request.Status}
	}

	reviewer := leave.DefaultReviewer
	if req.ReviewedBy != nil && !validator.IsEmpty(*req.ReviewedBy) {
		reviewer = strings.TrimSpace(*req.ReviewedBy)
	}
	reviewedAt := s.now()

	request.Status = leave.LeaveRequestStatus(req.Status)
	request.ReviewedBy = &reviewer
	request.ReviewedDate = &reviewedAt
	request.AdminComments = nil
	if req.AdminComments != nil && !validator.IsEmpty(*req.AdminComments) {
		comments := strings.TrimSpace(*req.AdminComments)
		request.AdminComments = &comments
	}

	updated, err := s.LeaveRequestRepository.UpdateReview(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, s.lostRace(ctx, "review", req.ID, err)
	}

	slog.Info("Leave request reviewed", "id", updated.ID, "status", updated.Status, "reviewed_by", reviewer)
	return toLeaveRequestResponse(updated), nil
}

// CancelLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CancelLeaveRequest(ctx context.Context, id string) error {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get leave request: %w", err)
	}
	if !request.IsPending() {
		return &leave.StatusError{Op: "cancel", Status: request.Status}
	}

	if err := s.LeaveRequestRepository.DeletePending(ctx, id); err != nil {
		return s.lostRace(ctx, "cancel", id, err)
	}

	slog.Info("Leave request cancelled", "id", id, "employee_id", request.EmployeeID)
	return nil
}

// lostRace turns a failed Pending-only write into a StatusError naming the status
// another writer left behind.
func (s *LeaveServiceImpl) lostRace(ctx context.Context, op, id string, err error) error {
	if !errors.Is(err, leave.ErrLeaveRequestNotPending) {
		return fmt.Errorf("failed to %s leave request: %w", op, err)
	}
	current, getErr := s.LeaveRequestRepository.GetByID(ctx, id)
	if getErr != nil {
		return fmt.Errorf("failed to %s leave request: %w", op, err)
	}
	return &leave.StatusError{Op: op, Status: current.Status}
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return toLeaveRequestResponse(request), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	query, err := toRequestQuery(filter, s.loc)
	if err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toLeaveRequestResponse(r))
	}
	return responses, nil
}

// GetEmployeeLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetEmployeeLeaves(ctx context.Context, employeeID string) (leave.EmployeeLeaveResponse, error) {
	emp, err := s.employeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return leave.EmployeeLeaveResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	requests, err := s.LeaveRequestRepository.List(ctx, leave.RequestQuery{EmployeeID: emp.EmployeeID})
	if err != nil {
		return leave.EmployeeLeaveResponse{}, fmt.Errorf("failed to list employee leaves: %w", err)
	}

	summary := leave.EmployeeLeaveSummary{Total: len(requests)}
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		switch r.Status {
		case leave.LeaveRequestStatusPending:
			summary.Pending++
		case leave.LeaveRequestStatusApproved:
			summary.Approved++
			summary.TotalDaysApproved += r.TotalDays
		case leave.LeaveRequestStatusRejected:
			summary.Rejected++
		}
		responses = append(responses, toLeaveRequestResponse(r))
	}

	return leave.EmployeeLeaveResponse{
		Employee: employee.EmployeeInfo{
			EmployeeID: emp.EmployeeID,
			FullName:   emp.FullName,
			Department: emp.Department,
		},
		Summary: summary,
		Leaves:  responses,
	}, nil
}

// GetLeaveStats implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveStats(ctx context.Context) (leave.LeaveStatsResponse, error) {
	monthStart, monthEnd := utils.MonthBounds(s.now(), s.loc)

	var (
		overall   leave.StatusCounts
		thisMonth leave.StatusCounts
		byType    []leave.TypeStats
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		overall, err = s.LeaveRequestRepository.CountByStatus(gCtx, nil, nil)
		return err
	})

	g.Go(func() error {
		var err error
		thisMonth, err = s.LeaveRequestRepository.CountByStatus(gCtx, &monthStart, &monthEnd)
		return err
	})

	g.Go(func() error {
		var err error
		byType, err = s.LeaveRequestRepository.StatsByType(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return leave.LeaveStatsResponse{}, fmt.Errorf("failed to get leave stats: %w", err)
	}

	types := make([]leave.LeaveTypeStatResponse, 0, len(byType))
	for _, t := range byType {
		types = append(types, leave.LeaveTypeStatResponse{
			LeaveType: string(t.LeaveType),
			Count:     t.Count,
			TotalDays: t.TotalDays,
		})
	}

	return leave.LeaveStatsResponse{
		Overall:   toStatusCountResponse(overall),
		ThisMonth: toStatusCountResponse(thisMonth),
		ByType:    types,
	}, nil
}

// toRequestQuery validates filter and converts it; the start date window is
// applied only when both bounds are given.
func toRequestQuery(filter leave.LeaveRequestFilter, loc *time.Location) (leave.RequestQuery, error) {
	if err := filter.Validate(); err != nil {
		return leave.RequestQuery{}, err
	}

	query := leave.RequestQuery{
		Status:     leave.LeaveRequestStatus(filter.Status),
		EmployeeID: strings.TrimSpace(filter.EmployeeID),
	}
	if filter.StartDate != "" && filter.EndDate != "" {
		from, _ := validator.ParseISODate(filter.StartDate, loc)
		to, _ := validator.ParseISODate(filter.EndDate, loc)
		query.StartFrom = &from
		query.StartTo = &to
	}
	return query, nil
}

func toStatusCountResponse(c leave.StatusCounts) leave.StatusCountResponse {
	return leave.StatusCountResponse{
		Total:    c.Total(),
		Pending:  c.Pending,
		Approved: c.Approved,
		Rejected: c.Rejected,
	}
}

func toLeaveRequestResponse(r leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		Department:    r.Department,
		LeaveType:     string(r.LeaveType),
		StartDate:     utils.FormatTimestamp(r.StartDate),
		EndDate:       utils.FormatTimestamp(r.EndDate),
		Reason:        r.Reason,
		Status:        string(r.Status),
		TotalDays:     r.TotalDays,
		AppliedDate:   utils.FormatTimestamp(r.AppliedDate),
		ReviewedBy:    r.ReviewedBy,
		ReviewedDate:  utils.FormatTimestampPtr(r.ReviewedDate),
		AdminComments: r.AdminComments,
		CreatedAt:     utils.FormatTimestamp(r.CreatedAt),
		UpdatedAt:     utils.FormatTimestamp(r.UpdatedAt),
	}
}
