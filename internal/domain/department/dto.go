package department

import "github.com/attendo-hq/attendance-backend-go/internal/pkg/validator"

type CreateDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if len(r.Name) < 3 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be at least 3 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Name != nil && len(*r.Name) < 3 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be at least 3 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	EmployeeCount int64  `json:"employee_count"`
}

type ListDepartmentsResponse struct {
	TotalCount  int64                `json:"total_count"`
	Departments []DepartmentResponse `json:"departments"`
}
