package report

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/report"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/export"
)

type ReportServiceImpl struct {
	leaveService      leave.LeaveService
	attendanceService attendance.AttendanceService

	loc *time.Location
	now func() time.Time
}

func NewReportService(leaveService leave.LeaveService, attendanceService attendance.AttendanceService, loc *time.Location) report.ReportService {
	return &ReportServiceImpl{
		leaveService:      leaveService,
		attendanceService: attendanceService,
		loc:               loc,
		now:               time.Now,
	}
}

var leaveColumns = []export.Column{
	{Header: "Employee ID", Width: 14},
	{Header: "Employee Name", Width: 24},
	{Header: "Department", Width: 18},
	{Header: "Leave Type", Width: 16},
	{Header: "Start Date", Width: 22},
	{Header: "End Date", Width: 22},
	{Header: "Total Days", Width: 10},
	{Header: "Status", Width: 10},
	{Header: "Reason", Width: 32},
	{Header: "Applied Date", Width: 22},
	{Header: "Reviewed By", Width: 16},
	{Header: "Reviewed Date", Width: 22},
	{Header: "Admin Comments", Width: 32},
}

var attendanceColumns = []export.Column{
	{Header: "Employee ID", Width: 14},
	{Header: "Employee Name", Width: 24},
	{Header: "Department", Width: 18},
	{Header: "Date", Width: 12},
	{Header: "Status", Width: 10},
}

// ExportLeaves implements report.ReportService.
func (s *ReportServiceImpl) ExportLeaves(ctx context.Context, filter leave.LeaveRequestFilter) (report.Export, error) {
	requests, err := s.leaveService.ListLeaveRequests(ctx, filter)
	if err != nil {
		return report.Export{}, err
	}

	rows := make([][]interface{}, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []interface{}{
			r.EmployeeID,
			r.EmployeeName,
			r.Department,
			r.LeaveType,
			r.StartDate,
			r.EndDate,
			r.TotalDays,
			r.Status,
			r.Reason,
			r.AppliedDate,
			deref(r.ReviewedBy),
			deref(r.ReviewedDate),
			deref(r.AdminComments),
		})
	}

	content, err := export.WriteXLSX(export.Table{SheetName: "Leave Requests", Columns: leaveColumns, Rows: rows})
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to render leave export: %w", err)
	}

	return report.Export{
		Filename:    s.filename("leave-requests"),
		ContentType: report.SpreadsheetContentType,
		Content:     content,
	}, nil
}

// ExportAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, filter attendance.AttendanceFilter) (report.Export, error) {
	records, err := s.attendanceService.ListAttendance(ctx, filter)
	if err != nil {
		return report.Export{}, err
	}

	rows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []interface{}{
			rec.EmployeeID,
			deref(rec.EmployeeName),
			deref(rec.Department),
			rec.Date,
			rec.Status,
		})
	}

	content, err := export.WriteXLSX(export.Table{SheetName: "Attendance", Columns: attendanceColumns, Rows: rows})
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to render attendance export: %w", err)
	}

	return report.Export{
		Filename:    s.filename("attendance"),
		ContentType: report.SpreadsheetContentType,
		Content:     content,
	}, nil
}

func (s *ReportServiceImpl) filename(prefix string) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, s.now().In(s.loc).Format("20060102"))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
