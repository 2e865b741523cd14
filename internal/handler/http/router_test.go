package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/report"
	"github.com/hrms-lite/hrms-backend-go/internal/repository/memory"
	attendanceService "github.com/hrms-lite/hrms-backend-go/internal/service/attendance"
	dashboardService "github.com/hrms-lite/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/hrms-lite/hrms-backend-go/internal/service/employee"
	leaveService "github.com/hrms-lite/hrms-backend-go/internal/service/leave"
	reportService "github.com/hrms-lite/hrms-backend-go/internal/service/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	employees := memory.NewEmployeeRepository(store)
	attendances := memory.NewAttendanceRepository(store)
	leaves := memory.NewLeaveRequestRepository(store)

	empSvc := employeeService.NewEmployeeService(store, employees, attendances, leaves, false)
	attSvc := attendanceService.NewAttendanceService(attendances, employees, time.UTC)
	leaveSvc := leaveService.NewLeaveService(store, leaves, employees, time.UTC)
	dashSvc := dashboardService.NewDashboardService(memory.NewDashboardRepository(store), time.UTC)
	reportSvc := reportService.NewReportService(leaveSvc, attSvc, time.UTC)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(logger, []string{"http://localhost:3000"}, Handlers{
		Employee:   NewEmployeeHandler(empSvc),
		Attendance: NewAttendanceHandler(attSvc),
		Leave:      NewLeaveHandler(leaveSvc),
		Dashboard:  NewDashboardHandler(dashSvc),
		Report:     NewReportHandler(reportSvc),
	})
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func createEmployee(t *testing.T, h http.Handler, employeeID, email string) string {
	t.Helper()
	rec, env := do(t, h, http.MethodPost, "/api/employees", map[string]string{
		"employeeId": employeeID,
		"fullName":   "Ana Lopez",
		"email":      email,
		"department": "Engineering",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created.ID
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t)

	rec, env := do(t, h, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "HRMS Lite API is running", env.Message)
}

func TestUnknownRoute(t *testing.T) {
	h := newTestRouter(t)

	rec, env := do(t, h, http.MethodGet, "/api/payroll", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Route not found", env.Message)
}

func TestEmployeeEndpoints(t *testing.T) {
	h := newTestRouter(t)
	id := createEmployee(t, h, "EMP001", "ana@example.com")

	t.Run("duplicate employee id", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/api/employees", map[string]string{
			"employeeId": "EMP001", "fullName": "Other", "email": "other@example.com", "department": "Sales",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Employee ID already exists", env.Message)
	})

	t.Run("validation", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/api/employees", map[string]string{"employeeId": "EMP002"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Contains(t, env.Error.Details, "email")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/api/employees", "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request format", env.Message)
	})

	t.Run("update and get", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPut, "/api/employees/"+id, map[string]string{"department": "Platform"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Employee updated successfully", env.Message)

		rec, env = do(t, h, http.MethodGet, "/api/employees/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Platform", got["department"])
		assert.Equal(t, "EMP001", got["employeeId"])
	})

	t.Run("list", func(t *testing.T) {
		rec, env := do(t, h, http.MethodGet, "/api/employees", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var list []map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Len(t, list, 1)
	})

	t.Run("delete then missing", func(t *testing.T) {
		rec, env := do(t, h, http.MethodDelete, "/api/employees/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Employee deleted successfully", env.Message)

		rec, env = do(t, h, http.MethodGet, "/api/employees/"+id, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Employee not found", env.Message)
	})
}

func TestAttendanceEndpoints(t *testing.T) {
	h := newTestRouter(t)
	createEmployee(t, h, "EMP001", "ana@example.com")

	mark := map[string]string{"employeeId": "EMP001", "date": "2024-03-05", "status": "Present"}
	rec, env := do(t, h, http.MethodPost, "/api/attendance", mark)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Attendance marked successfully", env.Message)

	mark["status"] = "Absent"
	rec, env = do(t, h, http.MethodPost, "/api/attendance", mark)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Attendance updated successfully", env.Message)

	var record struct {
		ID     string `json:"_id"`
		Date   string `json:"date"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &record))
	assert.Equal(t, "2024-03-05", record.Date)
	assert.Equal(t, "Absent", record.Status)

	rec, env = do(t, h, http.MethodGet, "/api/attendance/employee/EMP001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary struct {
		Summary struct {
			TotalDays  int `json:"totalDays"`
			AbsentDays int `json:"absentDays"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 1, summary.Summary.TotalDays)
	assert.Equal(t, 1, summary.Summary.AbsentDays)

	rec, _ = do(t, h, http.MethodPost, "/api/attendance", map[string]string{"employeeId": "EMP404", "date": "2024-03-05", "status": "Present"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = do(t, h, http.MethodDelete, "/api/attendance/"+record.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Attendance record deleted successfully", env.Message)

	rec, _ = do(t, h, http.MethodDelete, "/api/attendance/"+record.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaveLifecycleEndpoints(t *testing.T) {
	h := newTestRouter(t)
	createEmployee(t, h, "EMP001", "ana@example.com")

	apply := map[string]string{
		"employeeId": "EMP001",
		"leaveType":  "Annual Leave",
		"startDate":  "2024-07-01",
		"endDate":    "2024-07-03",
		"reason":     "Family trip",
	}
	rec, env := do(t, h, http.MethodPost, "/api/leaves", apply)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Leave application submitted successfully", env.Message)

	var created struct {
		ID        string `json:"_id"`
		TotalDays int    `json:"totalDays"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 3, created.TotalDays)

	rec, _ = do(t, h, http.MethodPost, "/api/leaves", apply)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, env = do(t, h, http.MethodPut, "/api/leaves/"+created.ID+"/status", map[string]string{"status": "Approved", "reviewedBy": "HR"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Leave request approved successfully", env.Message)

	rec, env = do(t, h, http.MethodPut, "/api/leaves/"+created.ID+"/status", map[string]string{"status": "Rejected"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
	assert.Equal(t, "Leave request is already Approved", env.Message)

	rec, env = do(t, h, http.MethodDelete, "/api/leaves/"+created.ID, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot cancel approved leave request", env.Message)

	rec, env = do(t, h, http.MethodGet, "/api/leaves/stats/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Overall struct {
			Total    int `json:"total"`
			Approved int `json:"approved"`
		} `json:"overall"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1, stats.Overall.Total)
	assert.Equal(t, 1, stats.Overall.Approved)

	rec, env = do(t, h, http.MethodGet, "/api/leaves?status=Approved&employeeId=EMP001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	rec, _ = do(t, h, http.MethodGet, "/api/leaves?status=Archived", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelPendingLeave(t *testing.T) {
	h := newTestRouter(t)
	createEmployee(t, h, "EMP001", "ana@example.com")

	rec, env := do(t, h, http.MethodPost, "/api/leaves", map[string]string{
		"employeeId": "EMP001", "leaveType": "Sick Leave", "startDate": "2024-07-01", "endDate": "2024-07-01", "reason": "Flu",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, env = do(t, h, http.MethodDelete, "/api/leaves/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Leave request cancelled successfully", env.Message)

	rec, _ = do(t, h, http.MethodGet, "/api/leaves/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardStats(t *testing.T) {
	h := newTestRouter(t)
	createEmployee(t, h, "EMP001", "ana@example.com")

	rec, env := do(t, h, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		TotalEmployees int `json:"totalEmployees"`
		Departments    []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"departments"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1, stats.TotalEmployees)
	require.Len(t, stats.Departments, 1)
	assert.Equal(t, "Engineering", stats.Departments[0].Name)
}

func TestExports(t *testing.T) {
	h := newTestRouter(t)

	for _, path := range []string{"/api/leaves/export", "/api/attendance/export"} {
		rec, _ := do(t, h, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, report.SpreadsheetContentType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
		assert.NotEmpty(t, rec.Body.Bytes())
	}
}
