package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	s := r.store
	defer s.lockWrite(ctx)()

	for _, row := range s.data.employees {
		if row.EmployeeID == newEmployee.EmployeeID {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		if row.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.New().String()
	}
	now := s.timestamp()
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now
	if newEmployee.JoiningDate.IsZero() {
		newEmployee.JoiningDate = now
	}

	s.data.employees[newEmployee.ID] = employeeRow{Employee: newEmployee, seq: s.nextSeq()}
	return newEmployee, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.data.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return row.Employee, nil
}

func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, row := range s.data.employees {
		if row.EmployeeID == employeeID {
			return row.Employee, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (bool, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var idExists, emailExists bool
	for _, row := range s.data.employees {
		if row.EmployeeID == employeeID {
			idExists = true
		}
		if row.Email == email {
			emailExists = true
		}
	}
	return idExists, emailExists, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	s := r.store
	s.mu.RLock()
	rows := make([]employeeRow, 0, len(s.data.employees))
	for _, row := range s.data.employees {
		rows = append(rows, row)
	}
	s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})

	employees := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, row.Employee)
	}
	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, updated employee.Employee) (employee.Employee, error) {
	s := r.store
	defer s.lockWrite(ctx)()

	row, ok := s.data.employees[updated.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	for id, other := range s.data.employees {
		if id != updated.ID && other.Email == updated.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	row.FullName = updated.FullName
	row.Email = updated.Email
	row.Department = updated.Department
	row.Phone = updated.Phone
	row.Position = updated.Position
	row.ProfilePicture = updated.ProfilePicture
	row.UpdatedAt = s.timestamp()

	s.data.employees[updated.ID] = row
	return row.Employee, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	defer s.lockWrite(ctx)()

	if _, ok := s.data.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(s.data.employees, id)
	return nil
}
