package department

import (
	"context"
	"fmt"

	"github.com/attendo-hq/attendance-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	department.Repository
}

func NewDepartmentService(repo department.Repository) department.Service {
	return &DepartmentServiceImpl{
		Repository: repo,
	}
}

// Create implements department.Service.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.Repository.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return mapDepartmentToResponse(created), nil
}

// Get implements department.Service.
func (s *DepartmentServiceImpl) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return mapDepartmentToResponse(dept), nil
}

// List implements department.Service.
func (s *DepartmentServiceImpl) List(ctx context.Context) (department.ListDepartmentsResponse, error) {
	departments, err := s.Repository.List(ctx)
	if err != nil {
		return department.ListDepartmentsResponse{}, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, mapDepartmentToResponse(dept))
	}

	return department.ListDepartmentsResponse{
		TotalCount:  int64(len(responses)),
		Departments: responses,
	}, nil
}

// Update implements department.Service.
func (s *DepartmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}

	if err := s.Repository.Update(ctx, dept); err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}

	updated, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return mapDepartmentToResponse(updated), nil
}

// Delete implements department.Service.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repository.Delete(ctx, id)
}

func mapDepartmentToResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Description:   dept.Description,
		EmployeeCount: dept.EmployeeCount,
	}
}
