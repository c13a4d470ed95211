package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	identityapp "github.com/hrms/backend/internal/application/identity"
)

// DepartmentHandler handles department management API endpoints
type DepartmentHandler struct {
	BaseHandler
	departmentService *identityapp.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler
func NewDepartmentHandler(departmentService *identityapp.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

// CreateDepartmentRequest represents a request to create a department
type CreateDepartmentRequest struct {
	Code        string          `json:"code" binding:"required,min=1,max=50" example:"ENG"`
	Name        string          `json:"name" binding:"required,max=255" example:"Engineering"`
	Description string          `json:"description" binding:"max=1000"`
	ParentID    *uuid.UUID      `json:"parent_id"`
	ManagerID   *uuid.UUID      `json:"manager_id"`
	CostCenter  string          `json:"cost_center" binding:"max=50" example:"CC-1020"`
	Budget      decimal.Decimal `json:"budget" example:"250000"`
}

// UpdateDepartmentRequest represents a request to update a department
type UpdateDepartmentRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=255"`
	Description *string          `json:"description" binding:"omitempty,max=1000"`
	CostCenter  *string          `json:"cost_center" binding:"omitempty,max=50"`
	Budget      *decimal.Decimal `json:"budget"`
	SortOrder   *int             `json:"sort_order" binding:"omitempty,min=0"`
}

// SetDepartmentManagerRequest represents a request to assign a department manager
type SetDepartmentManagerRequest struct {
	ManagerID *uuid.UUID `json:"manager_id"`
}

// MoveDepartmentRequest represents a request to move a department in the hierarchy
type MoveDepartmentRequest struct {
	NewParentID *uuid.UUID `json:"new_parent_id"`
}

// Create godoc
// @ID           createDepartment
//
//	@Summary		Create department
//	@Description	Create a department, optionally under a parent department
//	@Tags			departments
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-ID	header		string						false	"Company ID (optional for dev)"
//	@Param			request		body		CreateDepartmentRequest		true	"Department data"
//	@Success		201			{object}	APIResponse[identityapp.DepartmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := identityapp.CreateDepartmentInput{
		CompanyID:   companyID,
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		ManagerID:   req.ManagerID,
		CostCenter:  req.CostCenter,
		Budget:      req.Budget,
	}

	department, err := h.departmentService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, department)
}

// List godoc
// @ID           listDepartments
//
//	@Summary		List departments
//	@Description	List all departments of the company as a flat list
//	@Tags			departments
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[[]identityapp.DepartmentDTO]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	departments, err := h.departmentService.List(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, departments)
}

// GetTree godoc
// @ID           getDepartmentTree
//
//	@Summary		Get department tree
//	@Description	Get the company's departments as a nested hierarchy
//	@Tags			departments
//	@Produce		json
//	@Param			X-Tenant-ID	header		string	false	"Company ID (optional for dev)"
//	@Success		200			{object}	APIResponse[[]identityapp.DepartmentTreeNode]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/departments/tree [get]
func (h *DepartmentHandler) GetTree(c *gin.Context) {
	companyID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	tree, err := h.departmentService.GetTree(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tree)
}

// Get godoc
// @ID           getDepartment
//
//	@Summary		Get department
//	@Description	Get department details by ID
//	@Tags			departments
//	@Produce		json
//	@Param			id	path		string	true	"Department ID"	format(uuid)
//	@Success		200	{object}	APIResponse[identityapp.DepartmentDTO]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/departments/{id} [get]
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid department ID format")
		return
	}

	department, err := h.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, department)
}

// Update godoc
// @ID           updateDepartment
//
//	@Summary		Update department
//	@Description	Update department name, description, cost center or budget
//	@Tags			departments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Department ID"	format(uuid)
//	@Param			request	body		UpdateDepartmentRequest	true	"Fields to update"
//	@Success		200		{object}	APIResponse[identityapp.DepartmentDTO]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/departments/{id} [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid department ID format")
		return
	}

	var req UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := identityapp.UpdateDepartmentInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		CostCenter:  req.CostCenter,
		Budget:      req.Budget,
		SortOrder:   req.SortOrder,
	}

	department, err := h.departmentService.Update(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, department)
}

// SetManager godoc
// @ID           setDepartmentManager
//
//	@Summary		Set department manager
//	@Description	Assign or clear the manager of a department
//	@Tags			departments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Department ID"	format(uuid)
//	@Param			request	body		SetDepartmentManagerRequest	true	"Manager assignment"
//	@Success		200		{object}	APIResponse[identityapp.DepartmentDTO]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/departments/{id}/manager [put]
func (h *DepartmentHandler) SetManager(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid department ID format")
		return
	}

	var req SetDepartmentManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	department, err := h.departmentService.SetManager(c.Request.Context(), id, req.ManagerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, department)
}

// Move godoc
// @ID           moveDepartment
//
//	@Summary		Move department
//	@Description	Move a department under a new parent, or to the top level
//	@Tags			departments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Department ID"	format(uuid)
//	@Param			request	body		MoveDepartmentRequest	true	"New parent"
//	@Success		200		{object}	APIResponse[identityapp.DepartmentDTO]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/departments/{id}/move [post]
func (h *DepartmentHandler) Move(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid department ID format")
		return
	}

	var req MoveDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	department, err := h.departmentService.Move(c.Request.Context(), id, req.NewParentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, department)
}

// Activate godoc
// @ID           activateDepartment
//
//	@Summary		Activate department
//	@Description	Reactivate a deactivated department
//	@Tags			departments
//	@Produce		json
//	@Param			id	path		string	true	"Department ID"	format(uuid)
//	@Success		200	{object}	APIResponse[identityapp.DepartmentDTO]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/departments/{id}/activate [post]
func (h *DepartmentHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid department ID format")
		return
	}

	department, err := h.departmentService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, department)
}

// Deactivate godoc
// @ID           deactivateDepartment
//
//	@Summary		Deactivate department
//	@Description	Deactivate a department without removing it
//	@Tags			departments
//	@Produce		json
//	@Param			id	path		string	true	"Department ID"	format(uuid)
//	@Success		200	{object}	APIResponse[identityapp.DepartmentDTO]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/departments/{id}/deactivate [post]
func (h *DepartmentHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid department ID format")
		return
	}

	department, err := h.departmentService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, department)
}

// Delete godoc
// @ID           deleteDepartment
//
//	@Summary		Delete department
//	@Description	Delete a department with no children or assigned employees
//	@Tags			departments
//	@Produce		json
//	@Param			id	path	string	true	"Department ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid department ID format")
		return
	}

	if err := h.departmentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
