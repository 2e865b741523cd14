package http

import (
	"net/http"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/report"
	"github.com/hrms-lite/hrms-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportLeaves(w http.ResponseWriter, r *http.Request)
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// ExportLeaves handles GET /leaves/export, taking the same filters as the listing
func (h *reportHandlerImpl) ExportLeaves(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.ExportLeaves(r.Context(), leaveFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, result.Filename, result.ContentType, result.Content)
}

// ExportAttendance handles GET /attendance/export, taking the same filters as the listing
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.ExportAttendance(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, result.Filename, result.ContentType, result.Content)
}
