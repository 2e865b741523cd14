package employee

import (
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID     string  `json:"employeeId"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Department     string  `json:"department"`
	Phone          *string `json:"phone,omitempty"`
	Position       *string `json:"position,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	JoiningDate    *string `json:"joiningDate,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// Employee ID
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "Employee ID is required",
		})
	}

	// Full name
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "Full name is required",
		})
	}

	// Email
	if !validator.IsValidEmail(validator.NormalizeEmail(r.Email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Valid email is required",
		})
	}

	// Department
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "Department is required",
		})
	}

	// Joining date
	if r.JoiningDate != nil && !validator.IsEmpty(*r.JoiningDate) {
		if _, ok := validator.IsValidISODate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joiningDate",
				Message: "joiningDate must be a valid ISO8601 date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries a partial profile edit. A nil field keeps the
// stored value. The employeeId business key is not editable.
type UpdateEmployeeRequest struct {
	ID             string  `json:"-"`
	FullName       *string `json:"fullName,omitempty"`
	Email          *string `json:"email,omitempty"`
	Department     *string `json:"department,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Position       *string `json:"position,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(validator.NormalizeEmail(*r.Email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Valid email is required",
		})
	}

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"_id"`
	EmployeeID     string  `json:"employeeId"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Department     string  `json:"department"`
	Phone          *string `json:"phone"`
	Position       *string `json:"position"`
	ProfilePicture *string `json:"profilePicture"`
	JoiningDate    string  `json:"joiningDate"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// EmployeeInfo is the short employee header embedded in per-employee summaries.
type EmployeeInfo struct {
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Department string `json:"department"`
}
