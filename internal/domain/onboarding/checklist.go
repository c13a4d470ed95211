package onboarding

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// ChecklistStatus represents the progress state of an onboarding checklist
type ChecklistStatus string

const (
	ChecklistStatusNotStarted ChecklistStatus = "not_started"
	ChecklistStatusInProgress ChecklistStatus = "in_progress"
	ChecklistStatusCompleted  ChecklistStatus = "completed"
	ChecklistStatusOverdue    ChecklistStatus = "overdue"
	ChecklistStatusCancelled  ChecklistStatus = "cancelled"
)

// IsValid checks if the status is a valid ChecklistStatus
func (s ChecklistStatus) IsValid() bool {
	switch s {
	case ChecklistStatusNotStarted, ChecklistStatusInProgress, ChecklistStatusCompleted,
		ChecklistStatusOverdue, ChecklistStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of ChecklistStatus
func (s ChecklistStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the checklist is in a terminal state
func (s ChecklistStatus) IsTerminal() bool {
	return s == ChecklistStatusCompleted || s == ChecklistStatusCancelled
}

// TaskStatus represents the state of one onboarding task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusSkipped    TaskStatus = "skipped"
)

// IsValid checks if the status is a valid TaskStatus
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusSkipped:
		return true
	}
	return false
}

// IsDone returns true if the task needs no further action
func (s TaskStatus) IsDone() bool {
	return s == TaskStatusCompleted || s == TaskStatusSkipped
}

// TaskType classifies an onboarding task
type TaskType string

const (
	TaskTypeDocumentSubmission   TaskType = "document_submission"
	TaskTypeFormCompletion       TaskType = "form_completion"
	TaskTypeTrainingModule       TaskType = "training_module"
	TaskTypeSystemAccess         TaskType = "system_access"
	TaskTypeEquipmentAssignment  TaskType = "equipment_assignment"
	TaskTypeOrientationSession   TaskType = "orientation_session"
	TaskTypePolicyAcknowledgment TaskType = "policy_acknowledgment"
	TaskTypeComplianceCheck      TaskType = "compliance_check"
	TaskTypeOfficeTour           TaskType = "office_tour"
	TaskTypeTeamIntroduction     TaskType = "team_introduction"
	TaskTypeGoalSetting          TaskType = "goal_setting"
)

// IsValid checks if the type is a valid TaskType
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeDocumentSubmission, TaskTypeFormCompletion, TaskTypeTrainingModule,
		TaskTypeSystemAccess, TaskTypeEquipmentAssignment, TaskTypeOrientationSession,
		TaskTypePolicyAcknowledgment, TaskTypeComplianceCheck, TaskTypeOfficeTour,
		TaskTypeTeamIntroduction, TaskTypeGoalSetting:
		return true
	}
	return false
}

// Task is one step of an onboarding checklist
type Task struct {
	shared.BaseEntity
	ChecklistID   uuid.UUID
	Name          string
	Description   string
	Type          TaskType
	SequenceOrder int
	DueDate       *time.Time
	IsMandatory   bool
	AssignedTo    *uuid.UUID // Employee responsible; nil means the new hire

	Status          TaskStatus
	StartedAt       *time.Time
	CompletedAt     *time.Time
	CompletedBy     *uuid.UUID
	CompletionNotes string
}

// TableName returns the table name for GORM
func (Task) TableName() string {
	return "onboarding_tasks"
}

// IsOverdue reports whether a not-done task has passed its due date
func (t *Task) IsOverdue(asOf time.Time) bool {
	return !t.Status.IsDone() && t.DueDate != nil && asOf.After(*t.DueDate)
}

// Checklist tracks a new hire through their onboarding tasks
type Checklist struct {
	shared.TenantAggregateRoot
	EmployeeID             uuid.UUID
	Name                   string
	StartDate              time.Time
	ExpectedCompletionDate time.Time
	ActualCompletionDate   *time.Time
	Status                 ChecklistStatus

	HRContactID *uuid.UUID
	ManagerID   *uuid.UUID
	BuddyID     *uuid.UUID

	Tasks []Task
}

// TableName returns the table name for GORM
func (Checklist) TableName() string {
	return "onboarding_checklists"
}

// NewChecklist creates an onboarding checklist for a new hire
func NewChecklist(companyID, employeeID uuid.UUID, name string, startDate time.Time, durationDays int) (*Checklist, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Checklist name is required")
	}
	if startDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Start date is required")
	}
	if durationDays <= 0 {
		return nil, shared.NewDomainError("INVALID_DURATION", "Duration must be positive")
	}

	return &Checklist{
		TenantAggregateRoot:    shared.NewTenantAggregateRoot(companyID),
		EmployeeID:             employeeID,
		Name:                   name,
		StartDate:              startDate,
		ExpectedCompletionDate: startDate.AddDate(0, 0, durationDays),
		Status:                 ChecklistStatusNotStarted,
	}, nil
}

// SetContacts assigns the HR contact, manager and buddy
func (c *Checklist) SetContacts(hrContactID, managerID, buddyID *uuid.UUID) {
	c.HRContactID = hrContactID
	c.ManagerID = managerID
	c.BuddyID = buddyID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// AddTask appends a task. Tasks can only be added before completion.
func (c *Checklist) AddTask(name string, taskType TaskType, sequenceOrder int, mandatory bool, dueDate *time.Time, assignedTo *uuid.UUID) (*Task, error) {
	if c.Status.IsTerminal() {
		return nil, shared.NewDomainError("INVALID_STATE", "Checklist is closed")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Task name is required")
	}
	if !taskType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid task type")
	}

	task := Task{
		BaseEntity:    shared.NewBaseEntity(),
		ChecklistID:   c.ID,
		Name:          name,
		Type:          taskType,
		SequenceOrder: sequenceOrder,
		DueDate:       dueDate,
		IsMandatory:   mandatory,
		AssignedTo:    assignedTo,
		Status:        TaskStatusPending,
	}
	c.Tasks = append(c.Tasks, task)
	c.UpdatedAt = time.Now()
	return &c.Tasks[len(c.Tasks)-1], nil
}

func (c *Checklist) findTask(taskID uuid.UUID) *Task {
	for i := range c.Tasks {
		if c.Tasks[i].ID == taskID {
			return &c.Tasks[i]
		}
	}
	return nil
}

// StartTask moves a pending task into progress and the checklist with it
func (c *Checklist) StartTask(taskID uuid.UUID) error {
	if c.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Checklist is closed")
	}
	task := c.findTask(taskID)
	if task == nil {
		return shared.NewDomainError("TASK_NOT_FOUND", "Task not found on this checklist")
	}
	if task.Status != TaskStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending tasks can be started")
	}

	now := time.Now()
	task.Status = TaskStatusInProgress
	task.StartedAt = &now
	task.UpdatedAt = now

	if c.Status == ChecklistStatusNotStarted {
		c.Status = ChecklistStatusInProgress
	}
	c.UpdatedAt = now
	c.IncrementVersion()
	return nil
}

// CompleteTask finishes a task; completing the last open task completes the checklist
func (c *Checklist) CompleteTask(taskID, completedBy uuid.UUID, notes string) error {
	if c.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Checklist is closed")
	}
	task := c.findTask(taskID)
	if task == nil {
		return shared.NewDomainError("TASK_NOT_FOUND", "Task not found on this checklist")
	}
	if task.Status.IsDone() {
		return shared.NewDomainError("INVALID_STATE", "Task is already done")
	}

	now := time.Now()
	task.Status = TaskStatusCompleted
	task.CompletedAt = &now
	task.CompletedBy = &completedBy
	task.CompletionNotes = notes
	task.UpdatedAt = now

	if c.Status == ChecklistStatusNotStarted {
		c.Status = ChecklistStatusInProgress
	}
	c.UpdatedAt = now
	c.IncrementVersion()

	if c.OpenTaskCount() == 0 {
		c.Status = ChecklistStatusCompleted
		c.ActualCompletionDate = &now
		c.AddDomainEvent(NewOnboardingCompletedEvent(c))
	}
	return nil
}

// SkipTask skips an optional task. Mandatory tasks cannot be skipped.
func (c *Checklist) SkipTask(taskID uuid.UUID) error {
	if c.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Checklist is closed")
	}
	task := c.findTask(taskID)
	if task == nil {
		return shared.NewDomainError("TASK_NOT_FOUND", "Task not found on this checklist")
	}
	if task.IsMandatory {
		return shared.NewDomainError("MANDATORY_TASK", "Mandatory tasks cannot be skipped")
	}
	if task.Status.IsDone() {
		return shared.NewDomainError("INVALID_STATE", "Task is already done")
	}

	now := time.Now()
	task.Status = TaskStatusSkipped
	task.UpdatedAt = now
	c.UpdatedAt = now
	c.IncrementVersion()

	if c.OpenTaskCount() == 0 && c.Status != ChecklistStatusNotStarted {
		c.Status = ChecklistStatusCompleted
		c.ActualCompletionDate = &now
		c.AddDomainEvent(NewOnboardingCompletedEvent(c))
	}
	return nil
}

// Cancel abandons the checklist, e.g. when the hire falls through
func (c *Checklist) Cancel() error {
	if c.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Checklist is closed")
	}
	c.Status = ChecklistStatusCancelled
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// MarkOverdue flags an in-flight checklist past its expected completion date
func (c *Checklist) MarkOverdue(asOf time.Time) error {
	if c.Status != ChecklistStatusNotStarted && c.Status != ChecklistStatusInProgress {
		return shared.NewDomainError("INVALID_STATE", "Checklist cannot be marked overdue in current state")
	}
	if !asOf.After(c.ExpectedCompletionDate) {
		return shared.NewDomainError("INVALID_STATE", "Checklist has not passed its expected completion date")
	}
	c.Status = ChecklistStatusOverdue
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// OpenTaskCount counts tasks still needing action
func (c *Checklist) OpenTaskCount() int {
	open := 0
	for i := range c.Tasks {
		if !c.Tasks[i].Status.IsDone() {
			open++
		}
	}
	return open
}

// ProgressPercent reports the completed share of tasks, 0-100
func (c *Checklist) ProgressPercent() int {
	if len(c.Tasks) == 0 {
		return 0
	}
	done := len(c.Tasks) - c.OpenTaskCount()
	return done * 100 / len(c.Tasks)
}
