package employee

import "context"

// Service defines business logic for employee management.
type Service interface {
	// Create registers an employee, generating its DEP-YYYY-XXXX employee code
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	Get(ctx context.Context, id string) (EmployeeResponse, error)

	List(ctx context.Context, filter ListFilter) (ListEmployeesResponse, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	Delete(ctx context.Context, id string) error
}
