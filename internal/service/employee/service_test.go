package employee

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
	"github.com/hrms-lite/hrms-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc         *EmployeeServiceImpl
	attendances attendance.AttendanceRepository
	leaves      leave.LeaveRequestRepository
}

func newFixture(cascadeLeaves bool) fixture {
	store := memory.NewStore()
	attendances := memory.NewAttendanceRepository(store)
	leaves := memory.NewLeaveRequestRepository(store)
	svc := NewEmployeeService(store, memory.NewEmployeeRepository(store), attendances, leaves, cascadeLeaves).(*EmployeeServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC) }
	return fixture{svc: svc, attendances: attendances, leaves: leaves}
}

func validCreate(employeeID, email string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeID: employeeID,
		FullName:   "Ana Lopez",
		Email:      email,
		Department: "Engineering",
	}
}

func TestCreateEmployee_Success(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	req := validCreate(" EMP001 ", "  Ana@Example.COM ")
	created, err := f.svc.CreateEmployee(ctx, req)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "EMP001", created.EmployeeID)
	assert.Equal(t, "ana@example.com", created.Email)
	assert.Equal(t, "2024-05-01T08:00:00Z", created.JoiningDate)
	assert.Nil(t, created.Phone)
}

func TestCreateEmployee_Validation(t *testing.T) {
	f := newFixture(false)

	_, err := f.svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{Email: "not-an-email"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employeeId")
	assert.Contains(t, fields, "fullName")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "department")
}

func TestCreateEmployee_Duplicates(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	_, err := f.svc.CreateEmployee(ctx, validCreate("EMP001", "ana@example.com"))
	require.NoError(t, err)

	_, err = f.svc.CreateEmployee(ctx, validCreate("EMP001", "other@example.com"))
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	_, err = f.svc.CreateEmployee(ctx, validCreate("EMP002", "ANA@example.com"))
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	list, err := f.svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpdateEmployee_PartialFields(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	created, err := f.svc.CreateEmployee(ctx, validCreate("EMP001", "ana@example.com"))
	require.NoError(t, err)
	_, err = f.svc.CreateEmployee(ctx, validCreate("EMP002", "ben@example.com"))
	require.NoError(t, err)

	department := "Finance"
	updated, err := f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: created.ID, Department: &department})
	require.NoError(t, err)
	assert.Equal(t, "Finance", updated.Department)
	assert.Equal(t, "Ana Lopez", updated.FullName)
	assert.Equal(t, "EMP001", updated.EmployeeID)

	taken := "ben@example.com"
	_, err = f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: created.ID, Email: &taken})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	blank := "  "
	_, err = f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: created.ID, FullName: &blank})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: "missing", Department: &department})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func seedHistory(t *testing.T, f fixture, employeeID string) {
	t.Helper()
	ctx := context.Background()
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	_, _, err := f.attendances.Upsert(ctx, attendance.Attendance{EmployeeID: employeeID, Date: day, Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = f.leaves.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID, LeaveType: leave.LeaveTypeSick, StartDate: day, EndDate: day,
		TotalDays: 1, Status: leave.LeaveRequestStatusPending, AppliedDate: day,
	})
	require.NoError(t, err)
}

func TestDeleteEmployee_CascadesAttendanceKeepsLeaves(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	created, err := f.svc.CreateEmployee(ctx, validCreate("EMP001", "ana@example.com"))
	require.NoError(t, err)
	seedHistory(t, f, "EMP001")

	require.NoError(t, f.svc.DeleteEmployee(ctx, created.ID))

	_, err = f.svc.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	records, err := f.attendances.ListByEmployeeID(ctx, "EMP001")
	require.NoError(t, err)
	assert.Empty(t, records)

	leaves, err := f.leaves.List(ctx, leave.RequestQuery{EmployeeID: "EMP001"})
	require.NoError(t, err)
	assert.Len(t, leaves, 1)

	assert.ErrorIs(t, f.svc.DeleteEmployee(ctx, created.ID), employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee_CascadeLeavesWhenEnabled(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	created, err := f.svc.CreateEmployee(ctx, validCreate("EMP001", "ana@example.com"))
	require.NoError(t, err)
	seedHistory(t, f, "EMP001")

	require.NoError(t, f.svc.DeleteEmployee(ctx, created.ID))

	leaves, err := f.leaves.List(ctx, leave.RequestQuery{EmployeeID: "EMP001"})
	require.NoError(t, err)
	assert.Empty(t, leaves)
}
