package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employeeRepository employee.EmployeeRepository

	// loc decides which calendar day a timestamp belongs to
	loc *time.Location
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		employeeRepository:   employeeRepository,
		loc:                  loc,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	emp, err := s.employeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	day, _ := utils.ParseCalendarDay(req.Date, s.loc)

	record, created, err := s.AttendanceRepository.Upsert(ctx, attendance.Attendance{
		EmployeeID: emp.EmployeeID,
		Date:       day,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to mark attendance: %w", err)
	}
	record.EmployeeName = &emp.FullName
	record.Department = &emp.Department

	slog.Info("Attendance marked",
		"employee_id", record.EmployeeID,
		"date", utils.FormatDate(record.Date),
		"status", record.Status,
		"created", created,
	)

	return attendance.MarkAttendanceResponse{
		Record:  toAttendanceResponse(record),
		Created: created,
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := attendance.ListQuery{EmployeeID: strings.TrimSpace(filter.EmployeeID)}
	if filter.Date != "" {
		day, _ := utils.ParseCalendarDay(filter.Date, s.loc)
		query.Date = &day
	}

	records, err := s.AttendanceRepository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toAttendanceResponse(rec))
	}
	return responses, nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID string) (attendance.EmployeeAttendanceResponse, error) {
	emp, err := s.employeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	records, err := s.AttendanceRepository.ListByEmployeeID(ctx, emp.EmployeeID)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to list employee attendance: %w", err)
	}

	summary := attendance.AttendanceSummary{TotalDays: len(records)}
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		}
		responses = append(responses, toAttendanceResponse(rec))
	}

	return attendance.EmployeeAttendanceResponse{
		Employee: employee.EmployeeInfo{
			EmployeeID: emp.EmployeeID,
			FullName:   emp.FullName,
			Department: emp.Department,
		},
		Summary: summary,
		Records: responses,
	}, nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if err := s.AttendanceRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Department:   a.Department,
		Date:         utils.FormatDate(a.Date),
		Status:       string(a.Status),
		CreatedAt:    utils.FormatTimestamp(a.CreatedAt),
		UpdatedAt:    utils.FormatTimestamp(a.UpdatedAt),
	}
}
