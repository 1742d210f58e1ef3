package employee

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/department"
	"github.com/attendo-hq/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.Repository
	departmentRepo department.Repository
}

func NewEmployeeService(employeeRepo employee.Repository, departmentRepo department.Repository) employee.Service {
	return &EmployeeServiceImpl{
		Repository:     employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// generateEmployeeCode builds a DEP-YYYY-XXXX code from the department name
// prefix, the hire year, and a random 4-digit suffix.
func generateEmployeeCode(departmentName string, hireYear int) string {
	prefix := strings.ToUpper(departmentName)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	suffix := 1000 + rand.Intn(9000)
	return fmt.Sprintf("%s-%d-%d", prefix, hireYear, suffix)
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.Repository.Create(ctx, employee.Employee{
		EmployeeCode: generateEmployeeCode(dept.Name, req.ParsedHireDate.Year()),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
		HireDate:     req.ParsedHireDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created.DepartmentName = &dept.Name
	return mapEmployeeToResponse(created), nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) (employee.ListEmployeesResponse, error) {
	employees, err := s.Repository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeesResponse{
		TotalCount: int64(len(responses)),
		Employees:  responses,
	}, nil
}

// Update implements employee.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.DepartmentID = *req.DepartmentID
	}

	if err := s.Repository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(updated), nil
}

// Delete implements employee.Service.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repository.Delete(ctx, id)
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		EmployeeCode:   emp.EmployeeCode,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Email:          emp.Email,
		Position:       emp.Position,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		HireDate:       emp.HireDate.Format("2006-01-02"),
	}
}
