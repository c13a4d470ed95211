package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/identity"
	"github.com/hrms/backend/internal/domain/shared"
)

// DepartmentService handles department management operations
type DepartmentService struct {
	deptRepo identity.DepartmentRepository
	logger   *zap.Logger
}

// NewDepartmentService creates a new department service
func NewDepartmentService(
	deptRepo identity.DepartmentRepository,
	logger *zap.Logger,
) *DepartmentService {
	return &DepartmentService{
		deptRepo: deptRepo,
		logger:   logger,
	}
}

// CreateDepartmentInput contains input for creating a department
type CreateDepartmentInput struct {
	CompanyID   uuid.UUID
	Code        string
	Name        string
	Description string
	ParentID    *uuid.UUID
	ManagerID   *uuid.UUID
	CostCenter  string
	Budget      decimal.Decimal
}

// UpdateDepartmentInput contains input for updating a department
type UpdateDepartmentInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	CostCenter  *string
	Budget      *decimal.Decimal
	SortOrder   *int
}

// DepartmentDTO represents department data transfer object
type DepartmentDTO struct {
	ID          uuid.UUID       `json:"id"`
	CompanyID   uuid.UUID       `json:"company_id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	ParentID    *uuid.UUID      `json:"parent_id,omitempty"`
	Path        string          `json:"path"`
	Level       int             `json:"level"`
	ManagerID   *uuid.UUID      `json:"manager_id,omitempty"`
	CostCenter  string          `json:"cost_center,omitempty"`
	Budget      decimal.Decimal `json:"budget"`
	Status      string          `json:"status"`
	SortOrder   int             `json:"sort_order"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DepartmentTreeNode is a department with its children attached
type DepartmentTreeNode struct {
	DepartmentDTO
	Children []*DepartmentTreeNode `json:"children"`
}

// Create creates a new department, optionally under a parent
func (s *DepartmentService) Create(ctx context.Context, input CreateDepartmentInput) (*DepartmentDTO, error) {
	s.logger.Info("Creating department",
		zap.String("company_id", input.CompanyID.String()),
		zap.String("code", input.Code))

	exists, err := s.deptRepo.ExistsByCode(ctx, input.CompanyID, input.Code)
	if err != nil {
		s.logger.Error("Failed to check department code existence", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check code availability")
	}
	if exists {
		return nil, shared.NewDomainError("CODE_EXISTS", "Department code already exists")
	}

	dept, err := identity.NewDepartment(input.CompanyID, input.Code, input.Name)
	if err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := s.deptRepo.FindByID(ctx, *input.ParentID)
		if err != nil {
			if err == shared.ErrNotFound {
				return nil, shared.NewDomainError("PARENT_NOT_FOUND", "Parent department not found")
			}
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find parent department")
		}
		if parent.TenantID != input.CompanyID {
			return nil, shared.NewDomainError("PARENT_NOT_FOUND", "Parent department not found")
		}
		if err := dept.SetParent(input.ParentID, parent.Path, parent.Level); err != nil {
			return nil, err
		}
	}

	if input.Description != "" {
		dept.SetDescription(input.Description)
	}
	if input.ManagerID != nil {
		dept.SetManager(input.ManagerID)
	}
	if input.CostCenter != "" {
		if err := dept.SetCostCenter(input.CostCenter); err != nil {
			return nil, err
		}
	}
	if input.Budget.IsPositive() {
		if err := dept.SetBudget(input.Budget); err != nil {
			return nil, err
		}
	}

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		s.logger.Error("Failed to create department", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create department")
	}

	s.logger.Info("Department created",
		zap.String("department_id", dept.ID.String()),
		zap.String("path", dept.Path))

	return toDepartmentDTO(dept), nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id uuid.UUID) (*DepartmentDTO, error) {
	dept, err := s.findDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDepartmentDTO(dept), nil
}

// List retrieves all departments of a company
func (s *DepartmentService) List(ctx context.Context, companyID uuid.UUID) ([]DepartmentDTO, error) {
	depts, err := s.deptRepo.FindByTenantID(ctx, companyID)
	if err != nil {
		s.logger.Error("Failed to list departments", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list departments")
	}

	dtos := make([]DepartmentDTO, len(depts))
	for i, d := range depts {
		dtos[i] = *toDepartmentDTO(d)
	}
	return dtos, nil
}

// GetTree returns the company's departments arranged as a forest of root nodes
func (s *DepartmentService) GetTree(ctx context.Context, companyID uuid.UUID) ([]*DepartmentTreeNode, error) {
	depts, err := s.deptRepo.FindByTenantID(ctx, companyID)
	if err != nil {
		s.logger.Error("Failed to load department tree", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load department tree")
	}

	nodes := make(map[uuid.UUID]*DepartmentTreeNode, len(depts))
	for _, d := range depts {
		nodes[d.ID] = &DepartmentTreeNode{
			DepartmentDTO: *toDepartmentDTO(d),
			Children:      []*DepartmentTreeNode{},
		}
	}

	var roots []*DepartmentTreeNode
	for _, d := range depts {
		node := nodes[d.ID]
		if d.ParentID != nil {
			if parent, ok := nodes[*d.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots, nil
}

// Update updates a department's information
func (s *DepartmentService) Update(ctx context.Context, input UpdateDepartmentInput) (*DepartmentDTO, error) {
	dept, err := s.findDepartment(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := dept.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		dept.SetDescription(*input.Description)
	}
	if input.CostCenter != nil {
		if err := dept.SetCostCenter(*input.CostCenter); err != nil {
			return nil, err
		}
	}
	if input.Budget != nil {
		if err := dept.SetBudget(*input.Budget); err != nil {
			return nil, err
		}
	}
	if input.SortOrder != nil {
		dept.SetSortOrder(*input.SortOrder)
	}

	if err := s.deptRepo.Update(ctx, dept); err != nil {
		s.logger.Error("Failed to update department", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update department")
	}

	return toDepartmentDTO(dept), nil
}

// SetManager assigns or clears the department manager
func (s *DepartmentService) SetManager(ctx context.Context, id uuid.UUID, managerID *uuid.UUID) (*DepartmentDTO, error) {
	dept, err := s.findDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	dept.SetManager(managerID)

	if err := s.deptRepo.Update(ctx, dept); err != nil {
		s.logger.Error("Failed to set department manager", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to set department manager")
	}

	return toDepartmentDTO(dept), nil
}

// Move reparents a department and rewrites the paths of its subtree
func (s *DepartmentService) Move(ctx context.Context, id uuid.UUID, newParentID *uuid.UUID) (*DepartmentDTO, error) {
	dept, err := s.findDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	descendants, err := s.deptRepo.FindDescendants(ctx, dept)
	if err != nil {
		s.logger.Error("Failed to load department subtree", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load department subtree")
	}

	parentPath := ""
	parentLevel := 0
	if newParentID != nil {
		parent, err := s.findDepartment(ctx, *newParentID)
		if err != nil {
			return nil, err
		}
		if parent.TenantID != dept.TenantID {
			return nil, shared.NewDomainError("PARENT_NOT_FOUND", "Parent department not found")
		}
		// Reparenting under the subtree being moved would orphan it
		if parent.ID == dept.ID || parent.IsDescendantOf(dept.Path) {
			return nil, shared.NewDomainError("INVALID_PARENT", "Cannot move a department under its own subtree")
		}
		parentPath = parent.Path
		parentLevel = parent.Level
	}

	oldPrefix := dept.Path
	if err := dept.SetParent(newParentID, parentPath, parentLevel); err != nil {
		return nil, err
	}
	if err := s.deptRepo.Update(ctx, dept); err != nil {
		s.logger.Error("Failed to move department", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to move department")
	}

	for _, child := range descendants {
		if child.ID == dept.ID {
			continue
		}
		rest := strings.TrimPrefix(child.Path, oldPrefix)
		child.UpdatePath(dept.Path + strings.TrimSuffix(rest, "/"+child.ID.String()))
		if err := s.deptRepo.Update(ctx, child); err != nil {
			s.logger.Error("Failed to update subtree path",
				zap.String("department_id", child.ID.String()), zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update subtree path")
		}
	}

	s.logger.Info("Department moved",
		zap.String("department_id", id.String()),
		zap.String("new_path", dept.Path))

	return toDepartmentDTO(dept), nil
}

// Activate activates a department
func (s *DepartmentService) Activate(ctx context.Context, id uuid.UUID) (*DepartmentDTO, error) {
	dept, err := s.findDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dept.Activate(); err != nil {
		return nil, err
	}
	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to activate department")
	}
	return toDepartmentDTO(dept), nil
}

// Deactivate deactivates a department
func (s *DepartmentService) Deactivate(ctx context.Context, id uuid.UUID) (*DepartmentDTO, error) {
	dept, err := s.findDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dept.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to deactivate department")
	}
	return toDepartmentDTO(dept), nil
}

// Delete removes a department that has no children
func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	dept, err := s.findDepartment(ctx, id)
	if err != nil {
		return err
	}

	children, err := s.deptRepo.FindChildren(ctx, dept.ID)
	if err != nil {
		s.logger.Error("Failed to check department children", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to check department children")
	}
	if len(children) > 0 {
		return shared.NewDomainError("HAS_CHILDREN", "Department has child departments")
	}

	if err := s.deptRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete department", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete department")
	}

	s.logger.Info("Department deleted", zap.String("department_id", id.String()))

	return nil
}

func (s *DepartmentService) findDepartment(ctx context.Context, id uuid.UUID) (*identity.Department, error) {
	dept, err := s.deptRepo.FindByID(ctx, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("DEPARTMENT_NOT_FOUND", "Department not found")
		}
		s.logger.Error("Failed to find department", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find department")
	}
	return dept, nil
}

// toDepartmentDTO converts domain Department to DepartmentDTO
func toDepartmentDTO(dept *identity.Department) *DepartmentDTO {
	return &DepartmentDTO{
		ID:          dept.ID,
		CompanyID:   dept.TenantID,
		Code:        dept.Code,
		Name:        dept.Name,
		Description: dept.Description,
		ParentID:    dept.ParentID,
		Path:        dept.Path,
		Level:       dept.Level,
		ManagerID:   dept.ManagerID,
		CostCenter:  dept.CostCenter,
		Budget:      dept.Budget,
		Status:      string(dept.Status),
		SortOrder:   dept.SortOrder,
		CreatedAt:   dept.CreatedAt,
		UpdatedAt:   dept.UpdatedAt,
	}
}
