package report

import (
	"context"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/leave"
)

// ReportService defines the interface for spreadsheet exports
type ReportService interface {
	// ExportLeaves renders the filtered leave ledger as an xlsx workbook
	ExportLeaves(ctx context.Context, filter leave.LeaveRequestFilter) (Export, error)

	// ExportAttendance renders the filtered attendance ledger as an xlsx workbook
	ExportAttendance(ctx context.Context, filter attendance.AttendanceFilter) (Export, error)
}
