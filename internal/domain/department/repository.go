package department

import "context"

// Repository defines data access methods for departments.
type Repository interface {
	Create(ctx context.Context, d Department) (Department, error)

	GetByID(ctx context.Context, id string) (Department, error)

	// List retrieves all departments with employee counts, ordered by name
	List(ctx context.Context) ([]Department, error)

	Update(ctx context.Context, d Department) error

	Delete(ctx context.Context, id string) error

	// Count returns the total number of departments
	Count(ctx context.Context) (int64, error)
}
