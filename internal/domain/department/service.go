package department

import "context"

// Service defines business logic for department management.
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)

	Get(ctx context.Context, id string) (DepartmentResponse, error)

	List(ctx context.Context) (ListDepartmentsResponse, error)

	Update(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)

	Delete(ctx context.Context, id string) error
}
