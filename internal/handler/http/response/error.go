package response

import (
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

var exposeInternalErrors atomic.Bool

// ExposeInternalErrors controls whether unexpected errors carry their text in
// the response details. Enabled in development only.
func ExposeInternalErrors(enabled bool) {
	exposeInternalErrors.Store(enabled)
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Lifecycle errors carry the current status in their message
	var statusErr *leave.StatusError
	if errors.As(err, &statusErr) {
		InvalidState(w, statusErr.Error())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, leave.ErrInvalidDateRange.Error(), nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, leave.ErrOverlappingLeave.Error())
	case errors.Is(err, leave.ErrLeaveRequestNotPending):
		InvalidState(w, leave.ErrLeaveRequestNotPending.Error())

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		var details map[string]string
		if exposeInternalErrors.Load() {
			details = map[string]string{"error": err.Error()}
		}
		InternalServerError(w, "An unexpected error occurred", details)
	}
}
