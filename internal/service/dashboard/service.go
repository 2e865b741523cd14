package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository

	loc *time.Location
	now func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, loc *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		loc:                 loc,
		now:                 time.Now,
	}
}

// GetStats returns the dashboard figures, reading the three aggregates in parallel
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	today := utils.CivilDate(s.now(), s.loc)

	var (
		totalEmployees int64
		attendance     dashboard.AttendanceCounts
		departments    []dashboard.DepartmentCount
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Directory size
	g.Go(func() error {
		var err error
		totalEmployees, err = s.CountEmployees(gCtx)
		return err
	})

	// 2. Today's marks
	g.Go(func() error {
		var err error
		attendance, err = s.GetAttendanceCountsByDate(gCtx, today)
		return err
	})

	// 3. Headcount per department
	g.Go(func() error {
		var err error
		departments, err = s.GetDepartmentCounts(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	notMarked := totalEmployees - attendance.Present - attendance.Absent
	if notMarked < 0 {
		notMarked = 0
	}

	if departments == nil {
		departments = []dashboard.DepartmentCount{}
	}

	return dashboard.StatsResponse{
		TotalEmployees: totalEmployees,
		TodayAttendance: dashboard.TodayAttendanceResponse{
			Present:   attendance.Present,
			Absent:    attendance.Absent,
			NotMarked: notMarked,
		},
		Departments: departments,
	}, nil
}
