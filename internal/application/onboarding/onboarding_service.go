package onboarding

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/onboarding"
	"github.com/hrms/backend/internal/domain/shared"
	"github.com/hrms/backend/internal/domain/workforce"
)

// taskTemplate describes one entry of the default checklist
type taskTemplate struct {
	Name      string
	Type      onboarding.TaskType
	Mandatory bool
	DueInDays int
}

// defaultTaskTemplates is the standard new-hire checklist, applied when a
// checklist is created without explicit tasks
var defaultTaskTemplates = []taskTemplate{
	{"Submit identity documents", onboarding.TaskTypeDocumentSubmission, true, 3},
	{"Complete personal information form", onboarding.TaskTypeFormCompletion, true, 3},
	{"Acknowledge employee handbook", onboarding.TaskTypePolicyAcknowledgment, true, 7},
	{"Set up system accounts", onboarding.TaskTypeSystemAccess, true, 2},
	{"Receive laptop and equipment", onboarding.TaskTypeEquipmentAssignment, true, 2},
	{"Attend orientation session", onboarding.TaskTypeOrientationSession, true, 7},
	{"Complete security training", onboarding.TaskTypeTrainingModule, true, 14},
	{"Background verification", onboarding.TaskTypeComplianceCheck, true, 14},
	{"Office tour", onboarding.TaskTypeOfficeTour, false, 7},
	{"Meet the team", onboarding.TaskTypeTeamIntroduction, false, 7},
	{"Set 30-60-90 day goals with manager", onboarding.TaskTypeGoalSetting, false, 30},
}

// OnboardingService manages new-hire onboarding checklists
type OnboardingService struct {
	checklistRepo  onboarding.ChecklistRepository
	employeeRepo   workforce.EmployeeRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(
	checklistRepo onboarding.ChecklistRepository,
	employeeRepo workforce.EmployeeRepository,
	logger *zap.Logger,
) *OnboardingService {
	return &OnboardingService{
		checklistRepo: checklistRepo,
		employeeRepo:  employeeRepo,
		logger:        logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *OnboardingService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateChecklistInput contains input for creating an onboarding checklist
type CreateChecklistInput struct {
	CompanyID    uuid.UUID
	EmployeeID   uuid.UUID
	Name         string
	StartDate    time.Time
	DurationDays int

	HRContactID *uuid.UUID
	ManagerID   *uuid.UUID
	BuddyID     *uuid.UUID

	Tasks []TaskInput // Empty means the default template
}

// TaskInput contains input for one checklist task
type TaskInput struct {
	Name          string
	Type          string
	SequenceOrder int
	Mandatory     bool
	DueDate       *time.Time
	AssignedTo    *uuid.UUID
}

// TaskDTO represents an onboarding task
type TaskDTO struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	SequenceOrder   int        `json:"sequence_order"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	IsMandatory     bool       `json:"is_mandatory"`
	AssignedTo      *uuid.UUID `json:"assigned_to,omitempty"`
	Status          string     `json:"status"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CompletedBy     *uuid.UUID `json:"completed_by,omitempty"`
	CompletionNotes string     `json:"completion_notes,omitempty"`
	Overdue         bool       `json:"overdue"`
}

// ChecklistDTO represents an onboarding checklist
type ChecklistDTO struct {
	ID                     uuid.UUID  `json:"id"`
	EmployeeID             uuid.UUID  `json:"employee_id"`
	Name                   string     `json:"name"`
	StartDate              string     `json:"start_date"`
	ExpectedCompletionDate string     `json:"expected_completion_date"`
	ActualCompletionDate   *time.Time `json:"actual_completion_date,omitempty"`
	Status                 string     `json:"status"`
	HRContactID            *uuid.UUID `json:"hr_contact_id,omitempty"`
	ManagerID              *uuid.UUID `json:"manager_id,omitempty"`
	BuddyID                *uuid.UUID `json:"buddy_id,omitempty"`
	ProgressPercent        int        `json:"progress_percent"`
	OpenTasks              int        `json:"open_tasks"`
	Tasks                  []TaskDTO  `json:"tasks,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}

// ChecklistListResult represents a paginated checklist list
type ChecklistListResult struct {
	Checklists []ChecklistDTO `json:"checklists"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// CreateChecklist creates an onboarding checklist for an employee. When no
// tasks are given the default template is applied.
func (s *OnboardingService) CreateChecklist(ctx context.Context, input CreateChecklistInput) (*ChecklistDTO, error) {
	employee, err := s.employeeRepo.FindByID(ctx, input.CompanyID, input.EmployeeID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find employee")
	}

	existing, err := s.checklistRepo.FindByEmployee(ctx, input.CompanyID, input.EmployeeID)
	if err != nil && err != shared.ErrNotFound {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check existing checklist")
	}
	if existing != nil && !existing.Status.IsTerminal() {
		return nil, shared.NewDomainError("CHECKLIST_EXISTS", "Employee already has an open onboarding checklist")
	}

	name := input.Name
	if name == "" {
		name = "Onboarding - " + employee.Personal.FullName()
	}
	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = employee.HireDate
	}
	durationDays := input.DurationDays
	if durationDays <= 0 {
		durationDays = 30
	}

	checklist, err := onboarding.NewChecklist(input.CompanyID, input.EmployeeID, name, startDate, durationDays)
	if err != nil {
		return nil, err
	}
	checklist.SetContacts(input.HRContactID, input.ManagerID, input.BuddyID)

	if len(input.Tasks) > 0 {
		for _, t := range input.Tasks {
			if _, err := checklist.AddTask(t.Name, onboarding.TaskType(t.Type), t.SequenceOrder, t.Mandatory, t.DueDate, t.AssignedTo); err != nil {
				return nil, err
			}
		}
	} else {
		for i, tpl := range defaultTaskTemplates {
			due := startDate.AddDate(0, 0, tpl.DueInDays)
			if _, err := checklist.AddTask(tpl.Name, tpl.Type, i+1, tpl.Mandatory, &due, nil); err != nil {
				return nil, err
			}
		}
	}

	if err := s.checklistRepo.Save(ctx, checklist); err != nil {
		s.logger.Error("Failed to save checklist", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save checklist")
	}

	s.logger.Info("Onboarding checklist created",
		zap.String("employee_id", input.EmployeeID.String()),
		zap.Int("tasks", len(checklist.Tasks)))

	return toChecklistDTO(checklist, true), nil
}

// AddTask adds a task to an open checklist
func (s *OnboardingService) AddTask(ctx context.Context, companyID, checklistID uuid.UUID, input TaskInput) (*ChecklistDTO, error) {
	checklist, err := s.findChecklist(ctx, companyID, checklistID)
	if err != nil {
		return nil, err
	}
	if _, err := checklist.AddTask(input.Name, onboarding.TaskType(input.Type), input.SequenceOrder, input.Mandatory, input.DueDate, input.AssignedTo); err != nil {
		return nil, err
	}
	if err := s.checklistRepo.Save(ctx, checklist); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save checklist")
	}
	return toChecklistDTO(checklist, true), nil
}

// StartTask moves a task into progress
func (s *OnboardingService) StartTask(ctx context.Context, companyID, checklistID, taskID uuid.UUID) (*ChecklistDTO, error) {
	checklist, err := s.findChecklist(ctx, companyID, checklistID)
	if err != nil {
		return nil, err
	}
	if err := checklist.StartTask(taskID); err != nil {
		return nil, err
	}
	if err := s.checklistRepo.Save(ctx, checklist); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save checklist")
	}
	return toChecklistDTO(checklist, true), nil
}

// CompleteTask finishes a task, completing the checklist when it was the last
func (s *OnboardingService) CompleteTask(ctx context.Context, companyID, checklistID, taskID, completedBy uuid.UUID, notes string) (*ChecklistDTO, error) {
	checklist, err := s.findChecklist(ctx, companyID, checklistID)
	if err != nil {
		return nil, err
	}
	if err := checklist.CompleteTask(taskID, completedBy, notes); err != nil {
		return nil, err
	}
	if err := s.checklistRepo.Save(ctx, checklist); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save checklist")
	}

	if checklist.Status == onboarding.ChecklistStatusCompleted {
		s.logger.Info("Onboarding completed",
			zap.String("employee_id", checklist.EmployeeID.String()),
			zap.String("checklist_id", checklist.ID.String()))
	}
	s.publishDomainEvents(ctx, checklist)

	return toChecklistDTO(checklist, true), nil
}

// SkipTask skips an optional task
func (s *OnboardingService) SkipTask(ctx context.Context, companyID, checklistID, taskID uuid.UUID) (*ChecklistDTO, error) {
	checklist, err := s.findChecklist(ctx, companyID, checklistID)
	if err != nil {
		return nil, err
	}
	if err := checklist.SkipTask(taskID); err != nil {
		return nil, err
	}
	if err := s.checklistRepo.Save(ctx, checklist); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save checklist")
	}
	s.publishDomainEvents(ctx, checklist)
	return toChecklistDTO(checklist, true), nil
}

// CancelChecklist abandons a checklist
func (s *OnboardingService) CancelChecklist(ctx context.Context, companyID, checklistID uuid.UUID) error {
	checklist, err := s.findChecklist(ctx, companyID, checklistID)
	if err != nil {
		return err
	}
	if err := checklist.Cancel(); err != nil {
		return err
	}
	if err := s.checklistRepo.Save(ctx, checklist); err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to save checklist")
	}
	return nil
}

// GetChecklist retrieves a checklist with its tasks
func (s *OnboardingService) GetChecklist(ctx context.Context, companyID, checklistID uuid.UUID) (*ChecklistDTO, error) {
	checklist, err := s.findChecklist(ctx, companyID, checklistID)
	if err != nil {
		return nil, err
	}
	return toChecklistDTO(checklist, true), nil
}

// GetByEmployee retrieves the checklist for an employee
func (s *OnboardingService) GetByEmployee(ctx context.Context, companyID, employeeID uuid.UUID) (*ChecklistDTO, error) {
	checklist, err := s.checklistRepo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("CHECKLIST_NOT_FOUND", "No onboarding checklist for this employee")
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find checklist")
	}
	return toChecklistDTO(checklist, true), nil
}

// ListChecklists retrieves checklists, optionally by status
func (s *OnboardingService) ListChecklists(ctx context.Context, companyID uuid.UUID, status string, filter shared.Filter) (*ChecklistListResult, error) {
	var page *shared.Paginated[*onboarding.Checklist]
	var err error
	if status != "" {
		st := onboarding.ChecklistStatus(status)
		if !st.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid checklist status")
		}
		page, err = s.checklistRepo.FindByStatus(ctx, companyID, st, filter)
	} else {
		page, err = s.checklistRepo.FindAll(ctx, companyID, filter)
	}
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list checklists")
	}

	dtos := make([]ChecklistDTO, len(page.Items))
	for i, c := range page.Items {
		dtos[i] = *toChecklistDTO(c, false)
	}
	return &ChecklistListResult{
		Checklists: dtos,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// MarkOverdueChecklists flags open checklists past their expected completion
// date. Returns the number flagged. Run daily by the scheduler.
func (s *OnboardingService) MarkOverdueChecklists(ctx context.Context, companyID uuid.UUID, asOf time.Time) (int, error) {
	candidates, err := s.checklistRepo.FindOverdueCandidates(ctx, companyID, asOf)
	if err != nil {
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to find overdue checklists")
	}

	flagged := 0
	for _, checklist := range candidates {
		if err := checklist.MarkOverdue(asOf); err != nil {
			continue
		}
		if err := s.checklistRepo.Save(ctx, checklist); err != nil {
			s.logger.Error("Failed to save overdue checklist",
				zap.String("checklist_id", checklist.ID.String()),
				zap.Error(err))
			continue
		}
		flagged++
	}
	return flagged, nil
}

func (s *OnboardingService) findChecklist(ctx context.Context, companyID, id uuid.UUID) (*onboarding.Checklist, error) {
	checklist, err := s.checklistRepo.FindByID(ctx, companyID, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("CHECKLIST_NOT_FOUND", "Checklist not found")
		}
		s.logger.Error("Failed to find checklist", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find checklist")
	}
	return checklist, nil
}

// publishDomainEvents publishes pending domain events from the checklist aggregate
func (s *OnboardingService) publishDomainEvents(ctx context.Context, checklist *onboarding.Checklist) {
	if s.eventPublisher == nil {
		return
	}
	events := checklist.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	checklist.ClearDomainEvents()
}

// toChecklistDTO converts a domain Checklist to its DTO
func toChecklistDTO(c *onboarding.Checklist, includeTasks bool) *ChecklistDTO {
	dto := &ChecklistDTO{
		ID:                     c.ID,
		EmployeeID:             c.EmployeeID,
		Name:                   c.Name,
		StartDate:              c.StartDate.Format("2006-01-02"),
		ExpectedCompletionDate: c.ExpectedCompletionDate.Format("2006-01-02"),
		ActualCompletionDate:   c.ActualCompletionDate,
		Status:                 string(c.Status),
		HRContactID:            c.HRContactID,
		ManagerID:              c.ManagerID,
		BuddyID:                c.BuddyID,
		ProgressPercent:        c.ProgressPercent(),
		OpenTasks:              c.OpenTaskCount(),
		CreatedAt:              c.CreatedAt,
	}
	if includeTasks {
		now := time.Now()
		dto.Tasks = make([]TaskDTO, len(c.Tasks))
		for i := range c.Tasks {
			t := &c.Tasks[i]
			dto.Tasks[i] = TaskDTO{
				ID:              t.ID,
				Name:            t.Name,
				Type:            string(t.Type),
				SequenceOrder:   t.SequenceOrder,
				DueDate:         t.DueDate,
				IsMandatory:     t.IsMandatory,
				AssignedTo:      t.AssignedTo,
				Status:          string(t.Status),
				StartedAt:       t.StartedAt,
				CompletedAt:     t.CompletedAt,
				CompletedBy:     t.CompletedBy,
				CompletionNotes: t.CompletionNotes,
				Overdue:         t.IsOverdue(now),
			}
		}
	}
	return dto
}
