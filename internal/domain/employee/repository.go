package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmployeeID looks an employee up by the human-assigned business key.
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// ExistsByEmployeeIDOrEmail reports which of the two unique keys are already taken.
	ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (idExists bool, emailExists bool, err error)

	// List returns every employee, newest created first.
	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, updated Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
}
