package employee

import "time"

type Employee struct {
	ID           string
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string
	Position     string
	DepartmentID string
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined
	DepartmentName *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
