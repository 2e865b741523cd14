package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_TransactionRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	employees := NewEmployeeRepository(store)
	attendances := NewAttendanceRepository(store)

	emp, err := employees.Create(ctx, employee.Employee{EmployeeID: "EMP001", FullName: "Ana", Email: "ana@example.com", Department: "Ops"})
	require.NoError(t, err)
	_, _, err = attendances.Upsert(ctx, attendance.Attendance{EmployeeID: "EMP001", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := attendances.DeleteByEmployeeID(txCtx, "EMP001"); err != nil {
			return err
		}
		if err := employees.Delete(txCtx, emp.ID); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = employees.GetByID(ctx, emp.ID)
	assert.NoError(t, err)
	records, err := attendances.ListByEmployeeID(ctx, "EMP001")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestEmployeeRepository_UniqueKeys(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	_, err := repo.Create(ctx, employee.Employee{EmployeeID: "EMP001", Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "EMP001", Email: "b@example.com"})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "EMP002", Email: "ana@example.com"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	repo := NewEmployeeRepository(NewStore(WithClock(func() time.Time { return fixed })))

	_, err := repo.Create(ctx, employee.Employee{EmployeeID: "EMP001", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "EMP002", Email: "b@example.com"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "EMP002", list[0].EmployeeID)
	assert.Equal(t, "EMP001", list[1].EmployeeID)
}

func TestLeaveRequestRepository_PendingOnlyWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository(NewStore())

	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: "EMP001", LeaveType: leave.LeaveTypeSick, StartDate: day, EndDate: day,
		TotalDays: 1, Status: leave.LeaveRequestStatusRejected,
	})
	require.NoError(t, err)

	_, err = repo.UpdateReview(ctx, created)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotPending)
	assert.ErrorIs(t, repo.DeletePending(ctx, created.ID), leave.ErrLeaveRequestNotPending)
	assert.ErrorIs(t, repo.DeletePending(ctx, "missing"), leave.ErrLeaveRequestNotFound)

	overlap, err := repo.HasOverlapping(ctx, "EMP001", day, day)
	require.NoError(t, err)
	assert.False(t, overlap, "rejected requests do not block their dates")
}

func TestAttendanceRepository_ListUnknownEmployee(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(NewStore())

	_, created, err := repo.Upsert(ctx, attendance.Attendance{EmployeeID: "GHOST", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent})
	require.NoError(t, err)
	assert.True(t, created)

	records, err := repo.List(ctx, attendance.ListQuery{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Unknown", *records[0].EmployeeName)
	assert.Equal(t, "Unknown", *records[0].Department)
}

func TestStore_ReadersSeeUncommittedTransactionWrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	employees := NewEmployeeRepository(store)
	errAbort := errors.New("abort")

	err := store.WithinTransaction(ctx, func(txCtx context.Context) error {
		_, err := employees.Create(txCtx, employee.Employee{EmployeeID: "EMP009", FullName: "Kai", Email: "kai@example.com", Department: "Ops"})
		require.NoError(t, err)

		// a reader outside the transaction does not wait for it
		_, err = employees.GetByEmployeeID(ctx, "EMP009")
		assert.NoError(t, err)
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	_, err = employees.GetByEmployeeID(ctx, "EMP009")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
