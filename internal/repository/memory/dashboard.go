package memory

import (
	"context"
	"sort"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/dashboard"
)

type dashboardRepository struct {
	store *Store
}

func NewDashboardRepository(store *Store) dashboard.DashboardRepository {
	return &dashboardRepository{store: store}
}

func (r *dashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.data.employees)), nil
}

func (r *dashboardRepository) GetAttendanceCountsByDate(ctx context.Context, date time.Time) (dashboard.AttendanceCounts, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counts dashboard.AttendanceCounts
	for _, row := range s.data.attendances {
		if !row.Date.Equal(date) {
			continue
		}
		switch row.Status {
		case attendance.StatusPresent:
			counts.Present++
		case attendance.StatusAbsent:
			counts.Absent++
		}
	}
	return counts, nil
}

func (r *dashboardRepository) GetDepartmentCounts(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	s := r.store
	s.mu.RLock()
	byName := make(map[string]int64)
	for _, row := range s.data.employees {
		byName[row.Department]++
	}
	s.mu.RUnlock()

	departments := make([]dashboard.DepartmentCount, 0, len(byName))
	for name, count := range byName {
		departments = append(departments, dashboard.DepartmentCount{Name: name, Count: count})
	}
	sort.Slice(departments, func(i, j int) bool {
		if departments[i].Count != departments[j].Count {
			return departments[i].Count > departments[j].Count
		}
		return departments[i].Name < departments[j].Name
	})
	return departments, nil
}
