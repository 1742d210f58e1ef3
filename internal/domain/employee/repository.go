package employee

import "context"

// Repository defines data access methods for employees.
type Repository interface {
	Create(ctx context.Context, e Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves employees matching the filter, with department names joined
	List(ctx context.Context, filter ListFilter) ([]Employee, error)

	Update(ctx context.Context, e Employee) error

	Delete(ctx context.Context, id string) error

	// Count returns the total number of employees
	Count(ctx context.Context) (int64, error)
}
