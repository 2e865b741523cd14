package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/utils"
)

type leaveRequestRepository struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepository{store: store}
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	s := r.store
	defer s.lockWrite(ctx)()

	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	now := s.timestamp()
	request.CreatedAt = now
	request.UpdatedAt = now

	s.data.leaves[request.ID] = leaveRow{LeaveRequest: request, seq: s.nextSeq()}
	return request, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.data.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return row.LeaveRequest, nil
}

func (r *leaveRequestRepository) List(ctx context.Context, query leave.RequestQuery) ([]leave.LeaveRequest, error) {
	s := r.store
	s.mu.RLock()
	rows := make([]leaveRow, 0)
	for _, row := range s.data.leaves {
		if query.Status != "" && row.Status != query.Status {
			continue
		}
		if query.EmployeeID != "" && row.EmployeeID != query.EmployeeID {
			continue
		}
		if query.StartFrom != nil && query.StartTo != nil &&
			(row.StartDate.Before(*query.StartFrom) || row.StartDate.After(*query.StartTo)) {
			continue
		}
		rows = append(rows, row)
	}
	s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].AppliedDate.Equal(rows[j].AppliedDate) {
			return rows[i].AppliedDate.After(rows[j].AppliedDate)
		}
		return rows[i].seq > rows[j].seq
	})

	requests := make([]leave.LeaveRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, row.LeaveRequest)
	}
	return requests, nil
}

// LockEmployee is a no-op: transactions already hold the store-wide write lock.
func (r *leaveRequestRepository) LockEmployee(ctx context.Context, employeeID string) error {
	return nil
}

func (r *leaveRequestRepository) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, row := range s.data.leaves {
		if row.EmployeeID != employeeID || !row.BlocksOverlap() {
			continue
		}
		if utils.RangesOverlap(row.StartDate, row.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *leaveRequestRepository) UpdateReview(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	s := r.store
	defer s.lockWrite(ctx)()

	row, ok := s.data.leaves[request.ID]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if !row.IsPending() {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotPending
	}

	row.Status = request.Status
	row.ReviewedBy = request.ReviewedBy
	row.ReviewedDate = request.ReviewedDate
	row.AdminComments = request.AdminComments
	row.UpdatedAt = s.timestamp()

	s.data.leaves[request.ID] = row
	return row.LeaveRequest, nil
}

func (r *leaveRequestRepository) DeletePending(ctx context.Context, id string) error {
	s := r.store
	defer s.lockWrite(ctx)()

	row, ok := s.data.leaves[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if !row.IsPending() {
		return leave.ErrLeaveRequestNotPending
	}
	delete(s.data.leaves, id)
	return nil
}

func (r *leaveRequestRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	s := r.store
	defer s.lockWrite(ctx)()

	var deleted int64
	for id, row := range s.data.leaves {
		if row.EmployeeID == employeeID {
			delete(s.data.leaves, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *leaveRequestRepository) CountByStatus(ctx context.Context, appliedFrom, appliedTo *time.Time) (leave.StatusCounts, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counts leave.StatusCounts
	for _, row := range s.data.leaves {
		if appliedFrom != nil && row.AppliedDate.Before(*appliedFrom) {
			continue
		}
		if appliedTo != nil && !row.AppliedDate.Before(*appliedTo) {
			continue
		}
		switch row.Status {
		case leave.LeaveRequestStatusPending:
			counts.Pending++
		case leave.LeaveRequestStatusApproved:
			counts.Approved++
		case leave.LeaveRequestStatusRejected:
			counts.Rejected++
		}
	}
	return counts, nil
}

func (r *leaveRequestRepository) StatsByType(ctx context.Context) ([]leave.TypeStats, error) {
	s := r.store
	s.mu.RLock()
	byType := make(map[leave.LeaveType]*leave.TypeStats)
	for _, row := range s.data.leaves {
		st, ok := byType[row.LeaveType]
		if !ok {
			st = &leave.TypeStats{LeaveType: row.LeaveType}
			byType[row.LeaveType] = st
		}
		st.Count++
		st.TotalDays += int64(row.TotalDays)
	}
	s.mu.RUnlock()

	stats := make([]leave.TypeStats, 0, len(byType))
	for _, st := range byType {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].LeaveType < stats[j].LeaveType
	})
	return stats, nil
}
