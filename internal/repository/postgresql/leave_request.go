package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `id, employee_id, employee_name, department, leave_type, start_date,
	end_date, total_days, reason, status, applied_date, reviewed_by, reviewed_date,
	admin_comments, created_at, updated_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.EmployeeName,
		&lr.Department,
		&lr.LeaveType,
		&lr.StartDate,
		&lr.EndDate,
		&lr.TotalDays,
		&lr.Reason,
		&lr.Status,
		&lr.AppliedDate,
		&lr.ReviewedBy,
		&lr.ReviewedDate,
		&lr.AdminComments,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, employee_name, department, leave_type, start_date, end_date,
			total_days, reason, status, applied_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.EmployeeName, request.Department,
		request.LeaveType, request.StartDate, request.EndDate, request.TotalDays,
		request.Reason, request.Status, request.AppliedDate,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(id); err != nil {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, query leave.RequestQuery) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if query.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, query.Status)
		argIdx++
	}
	if query.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, query.EmployeeID)
		argIdx++
	}
	if query.StartFrom != nil && query.StartTo != nil {
		conditions = append(conditions, fmt.Sprintf("start_date >= $%d AND start_date <= $%d", argIdx, argIdx+1))
		args = append(args, *query.StartFrom, *query.StartTo)
		argIdx += 2
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	sql := `SELECT ` + leaveRequestColumns + ` FROM leave_requests ` + whereClause + `
		ORDER BY applied_date DESC, id DESC`

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// LockEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) LockEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, employeeID); err != nil {
		return fmt.Errorf("failed to lock leave requests of employee %s: %w", employeeID, err)
	}
	return nil
}

// HasOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
				AND status IN ($2, $3)
				AND start_date <= $5
				AND end_date >= $4
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID,
		leave.LeaveRequestStatusPending, leave.LeaveRequestStatusApproved, start, end,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	return exists, nil
}

// UpdateReview implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateReview(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(request.ID); err != nil {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}

	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_by = $3, reviewed_date = $4, admin_comments = $5, updated_at = NOW()
		WHERE id = $1 AND status = $6
		RETURNING ` + leaveRequestColumns

	updated, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.ID, request.Status, request.ReviewedBy, request.ReviewedDate, request.AdminComments,
		leave.LeaveRequestStatusPending,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, r.notPendingOrMissing(ctx, request.ID)
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request review: %w", err)
	}
	return updated, nil
}

// DeletePending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) DeletePending(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(id); err != nil {
		return leave.ErrLeaveRequestNotFound
	}

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1 AND status = $2`,
		id, leave.LeaveRequestStatusPending)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.notPendingOrMissing(ctx, id)
	}
	return nil
}

// notPendingOrMissing explains why a Pending-only write matched no row.
func (r *leaveRequestRepositoryImpl) notPendingOrMissing(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM leave_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check leave request: %w", err)
	}
	if !exists {
		return leave.ErrLeaveRequestNotFound
	}
	return leave.ErrLeaveRequestNotPending
}

// DeleteByEmployeeID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE employee_id = $1`, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete leave requests for employee %s: %w", employeeID, err)
	}
	return tag.RowsAffected(), nil
}

// CountByStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountByStatus(ctx context.Context, appliedFrom, appliedTo *time.Time) (leave.StatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'Approved'),
			COUNT(*) FILTER (WHERE status = 'Rejected')
		FROM leave_requests
		WHERE ($1::timestamptz IS NULL OR applied_date >= $1)
			AND ($2::timestamptz IS NULL OR applied_date < $2)
	`

	var counts leave.StatusCounts
	err := q.QueryRow(ctx, query, appliedFrom, appliedTo).Scan(&counts.Pending, &counts.Approved, &counts.Rejected)
	if err != nil {
		return leave.StatusCounts{}, fmt.Errorf("failed to count leave requests by status: %w", err)
	}
	return counts, nil
}

// StatsByType implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) StatsByType(ctx context.Context) ([]leave.TypeStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, COUNT(*), COALESCE(SUM(total_days), 0)
		FROM leave_requests
		GROUP BY leave_type
		ORDER BY COUNT(*) DESC, leave_type ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave stats by type: %w", err)
	}
	defer rows.Close()

	stats := make([]leave.TypeStats, 0)
	for rows.Next() {
		var s leave.TypeStats
		if err := rows.Scan(&s.LeaveType, &s.Count, &s.TotalDays); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
