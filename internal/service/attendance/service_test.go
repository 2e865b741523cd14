package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
	"github.com/hrms-lite/hrms-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, loc *time.Location) (attendance.AttendanceService, employee.EmployeeRepository) {
	t.Helper()
	store := memory.NewStore()
	employees := memory.NewEmployeeRepository(store)

	_, err := employees.Create(context.Background(), employee.Employee{
		EmployeeID: "EMP001",
		FullName:   "Ana Lopez",
		Email:      "ana@example.com",
		Department: "Engineering",
	})
	require.NoError(t, err)

	return NewAttendanceService(memory.NewAttendanceRepository(store), employees, loc), employees
}

func TestMarkAttendance_UpsertsPerDay(t *testing.T) {
	svc, _ := newService(t, time.UTC)
	ctx := context.Background()

	first, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: "EMP001", Date: "2024-03-05", Status: "Present"})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "2024-03-05", first.Record.Date)
	assert.Equal(t, "Ana Lopez", *first.Record.EmployeeName)

	second, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: "EMP001", Date: "2024-03-05T15:30:00Z", Status: "Absent"})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Record.ID, second.Record.ID)
	assert.Equal(t, "Absent", second.Record.Status)

	summary, err := svc.GetEmployeeAttendance(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, attendance.AttendanceSummary{TotalDays: 1, PresentDays: 0, AbsentDays: 1}, summary.Summary)
}

func TestMarkAttendance_CalendarDayInZone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	svc, _ := newService(t, kolkata)

	// 20:00 UTC on the 5th is the 6th in Kolkata
	res, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{EmployeeID: "EMP001", Date: "2024-03-05T20:00:00Z", Status: "Present"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-06", res.Record.Date)
}

func TestMarkAttendance_Errors(t *testing.T) {
	svc, _ := newService(t, time.UTC)
	ctx := context.Background()

	_, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: "EMP001", Date: "yesterday", Status: "Late"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
	assert.Contains(t, verrs.ToMap(), "status")

	_, err = svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: "EMP404", Date: "2024-03-05", Status: "Present"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListAttendance_FiltersAndOrder(t *testing.T) {
	svc, employees := newService(t, time.UTC)
	ctx := context.Background()

	_, err := employees.Create(ctx, employee.Employee{EmployeeID: "EMP002", FullName: "Ben", Email: "ben@example.com", Department: "Ops"})
	require.NoError(t, err)

	for _, req := range []attendance.MarkAttendanceRequest{
		{EmployeeID: "EMP001", Date: "2024-03-04", Status: "Present"},
		{EmployeeID: "EMP001", Date: "2024-03-05", Status: "Absent"},
		{EmployeeID: "EMP002", Date: "2024-03-05", Status: "Present"},
	} {
		_, err := svc.MarkAttendance(ctx, req)
		require.NoError(t, err)
	}

	all, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-03-05", all[0].Date)
	assert.Equal(t, "2024-03-04", all[2].Date)

	byDay, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{Date: "2024-03-05"})
	require.NoError(t, err)
	assert.Len(t, byDay, 2)

	byEmployee, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{EmployeeID: "EMP002"})
	require.NoError(t, err)
	require.Len(t, byEmployee, 1)
	assert.Equal(t, "Ops", *byEmployee[0].Department)

	_, err = svc.ListAttendance(ctx, attendance.AttendanceFilter{Date: "garbage"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestDeleteAttendance(t *testing.T) {
	svc, _ := newService(t, time.UTC)
	ctx := context.Background()

	res, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{EmployeeID: "EMP001", Date: "2024-03-05", Status: "Present"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAttendance(ctx, res.Record.ID))
	assert.ErrorIs(t, svc.DeleteAttendance(ctx, res.Record.ID), attendance.ErrAttendanceNotFound)

	_, err = svc.GetEmployeeAttendance(ctx, "EMP404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
