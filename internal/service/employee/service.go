package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/utils"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	db database.Transactor
	employee.EmployeeRepository
	attendanceRepository   attendance.AttendanceRepository
	leaveRequestRepository leave.LeaveRequestRepository

	// cascadeLeaves also removes the leave history of a deleted employee
	cascadeLeaves bool
	now           func() time.Time
}

func NewEmployeeService(
	db database.Transactor,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	cascadeLeaves bool,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                     db,
		EmployeeRepository:     employeeRepository,
		attendanceRepository:   attendanceRepository,
		leaveRequestRepository: leaveRequestRepository,
		cascadeLeaves:          cascadeLeaves,
		now:                    time.Now,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	email := validator.NormalizeEmail(req.Email)

	idExists, emailExists, err := s.EmployeeRepository.ExistsByEmployeeIDOrEmail(ctx, employeeID, email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee uniqueness: %w", err)
	}
	if idExists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeIDExists
	}
	if emailExists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	joiningDate := s.now()
	if req.JoiningDate != nil && !validator.IsEmpty(*req.JoiningDate) {
		joiningDate, _ = validator.IsValidISODate(*req.JoiningDate)
	}

	newEmployee := employee.Employee{
		EmployeeID:     employeeID,
		FullName:       strings.TrimSpace(req.FullName),
		Email:          email,
		Department:     strings.TrimSpace(req.Department),
		Phone:          trimOptional(req.Phone),
		Position:       trimOptional(req.Position),
		ProfilePicture: trimOptional(req.ProfilePicture),
		JoiningDate:    joiningDate,
	}

	created, err := s.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "id", created.ID, "employee_id", created.EmployeeID)
	return toEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return toEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		existing.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		existing.Email = validator.NormalizeEmail(*req.Email)
	}
	if req.Department != nil {
		existing.Department = strings.TrimSpace(*req.Department)
	}
	if req.Phone != nil {
		existing.Phone = trimOptional(req.Phone)
	}
	if req.Position != nil {
		existing.Position = trimOptional(req.Position)
	}
	if req.ProfilePicture != nil {
		existing.ProfilePicture = trimOptional(req.ProfilePicture)
	}

	updated, err := s.EmployeeRepository.Update(ctx, existing)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return toEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	var attendanceDeleted, leavesDeleted int64
	err = s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		attendanceDeleted, err = s.attendanceRepository.DeleteByEmployeeID(txCtx, emp.EmployeeID)
		if err != nil {
			return err
		}

		if s.cascadeLeaves {
			leavesDeleted, err = s.leaveRequestRepository.DeleteByEmployeeID(txCtx, emp.EmployeeID)
			if err != nil {
				return err
			}
		}

		return s.EmployeeRepository.Delete(txCtx, emp.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.Info("Employee deleted",
		"id", emp.ID,
		"employee_id", emp.EmployeeID,
		"attendance_deleted", attendanceDeleted,
		"leaves_deleted", leavesDeleted,
	)
	return nil
}

// trimOptional trims an optional text field, turning blank input into nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             e.ID,
		EmployeeID:     e.EmployeeID,
		FullName:       e.FullName,
		Email:          e.Email,
		Department:     e.Department,
		Phone:          e.Phone,
		Position:       e.Position,
		ProfilePicture: e.ProfilePicture,
		JoiningDate:    utils.FormatTimestamp(e.JoiningDate),
		CreatedAt:      utils.FormatTimestamp(e.CreatedAt),
		UpdatedAt:      utils.FormatTimestamp(e.UpdatedAt),
	}
}
