package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
)

const unknownEmployee = "Unknown"

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, bool, error) {
	s := r.store
	defer s.lockWrite(ctx)()

	now := s.timestamp()
	for id, row := range s.data.attendances {
		if row.EmployeeID == a.EmployeeID && row.Date.Equal(a.Date) {
			row.Status = a.Status
			row.UpdatedAt = now
			s.data.attendances[id] = row
			return row.Attendance, false, nil
		}
	}

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	a.EmployeeName = nil
	a.Department = nil

	s.data.attendances[a.ID] = attendanceRow{Attendance: a, seq: s.nextSeq()}
	return a, true, nil
}

// sortAttendance orders rows newest date first, later writes first within a day.
func sortAttendance(rows []attendanceRow) {
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return rows[i].seq > rows[j].seq
	})
}

func (r *attendanceRepository) List(ctx context.Context, query attendance.ListQuery) ([]attendance.Attendance, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	type profile struct{ name, department string }
	profiles := make(map[string]profile, len(s.data.employees))
	for _, emp := range s.data.employees {
		profiles[emp.EmployeeID] = profile{name: emp.FullName, department: emp.Department}
	}

	rows := make([]attendanceRow, 0)
	for _, row := range s.data.attendances {
		if query.EmployeeID != "" && row.EmployeeID != query.EmployeeID {
			continue
		}
		if query.Date != nil && !row.Date.Equal(*query.Date) {
			continue
		}
		rows = append(rows, row)
	}
	sortAttendance(rows)

	records := make([]attendance.Attendance, 0, len(rows))
	for _, row := range rows {
		rec := row.Attendance
		p, ok := profiles[rec.EmployeeID]
		if !ok {
			p = profile{name: unknownEmployee, department: unknownEmployee}
		}
		rec.EmployeeName = &p.name
		rec.Department = &p.department
		records = append(records, rec)
	}
	return records, nil
}

func (r *attendanceRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]attendanceRow, 0)
	for _, row := range s.data.attendances {
		if row.EmployeeID == employeeID {
			rows = append(rows, row)
		}
	}
	sortAttendance(rows)

	records := make([]attendance.Attendance, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Attendance)
	}
	return records, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	defer s.lockWrite(ctx)()

	if _, ok := s.data.attendances[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(s.data.attendances, id)
	return nil
}

func (r *attendanceRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	s := r.store
	defer s.lockWrite(ctx)()

	var deleted int64
	for id, row := range s.data.attendances {
		if row.EmployeeID == employeeID {
			delete(s.data.attendances, id)
			deleted++
		}
	}
	return deleted, nil
}
