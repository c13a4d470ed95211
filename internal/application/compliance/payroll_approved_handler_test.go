package compliance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hrms/backend/internal/domain/compliance"
	"github.com/hrms/backend/internal/domain/payroll"
	"github.com/hrms/backend/internal/domain/shared"
)

// MockRequirementRepository is a mock implementation of compliance.RequirementRepository
type MockRequirementRepository struct {
	mock.Mock
}

func (m *MockRequirementRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*compliance.Requirement, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compliance.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*compliance.Requirement, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compliance.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*compliance.Requirement], error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*compliance.Requirement]), args.Error(1)
}

func (m *MockRequirementRepository) FindActive(ctx context.Context, companyID uuid.UUID) ([]*compliance.Requirement, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]*compliance.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) FindReviewDue(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*compliance.Requirement, error) {
	args := m.Called(ctx, companyID, asOf)
	return args.Get(0).([]*compliance.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) Save(ctx context.Context, requirement *compliance.Requirement) error {
	args := m.Called(ctx, requirement)
	return args.Error(0)
}

func (m *MockRequirementRepository) ExistsByCode(ctx context.Context, companyID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, companyID, code)
	return args.Bool(0), args.Error(1)
}

// MockAssessmentRepository is a mock implementation of compliance.AssessmentRepository
type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*compliance.Assessment, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compliance.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) FindByRequirement(ctx context.Context, companyID, requirementID uuid.UUID, filter shared.Filter) (*shared.Paginated[*compliance.Assessment], error) {
	args := m.Called(ctx, companyID, requirementID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*compliance.Assessment]), args.Error(1)
}

func (m *MockAssessmentRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*compliance.Assessment], error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*compliance.Assessment]), args.Error(1)
}

func (m *MockAssessmentRepository) FindLatestByRequirement(ctx context.Context, companyID uuid.UUID) (map[uuid.UUID]*compliance.Assessment, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(map[uuid.UUID]*compliance.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) FindOverdueActions(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]*compliance.Assessment, error) {
	args := m.Called(ctx, companyID, asOf)
	return args.Get(0).([]*compliance.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) Save(ctx context.Context, assessment *compliance.Assessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) CountByStatus(ctx context.Context, companyID uuid.UUID) (map[compliance.AssessmentStatus]int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(map[compliance.AssessmentStatus]int64), args.Error(1)
}

func newComplianceService() (*ComplianceService, *MockRequirementRepository, *MockAssessmentRepository) {
	requirementRepo := new(MockRequirementRepository)
	assessmentRepo := new(MockAssessmentRepository)
	svc := NewComplianceService(requirementRepo, assessmentRepo, zap.NewNop())
	return svc, requirementRepo, assessmentRepo
}

func newApprovedEvent(companyID, approvedBy uuid.UUID, number string) *payroll.PayrollApprovedEvent {
	return &payroll.PayrollApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(payroll.EventTypePayrollApproved,
			payroll.AggregateTypePayrollRun, uuid.New(), companyID),
		Number:      number,
		PeriodStart: "2024-06-01",
		PeriodEnd:   "2024-06-30",
		ApprovedBy:  approvedBy,
	}
}

func TestPayrollApprovedHandler_RecordsFiling(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	approvedBy := uuid.New()
	svc, requirementRepo, assessmentRepo := newComplianceService()
	handler := NewPayrollApprovedHandler(svc, zap.NewNop())

	assert.Equal(t, []string{payroll.EventTypePayrollApproved}, handler.EventTypes())

	requirement, err := compliance.NewRequirement(companyID,
		"Payroll Statutory Remittance", StatutoryFilingCode, compliance.TypeTaxCompliance,
		"Remittance of provident fund, insurance and income tax withheld from payroll",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	requirementRepo.On("FindByCode", ctx, companyID, StatutoryFilingCode).Return(requirement, nil)

	var saved *compliance.Assessment
	assessmentRepo.On("Save", ctx, mock.AnythingOfType("*compliance.Assessment")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*compliance.Assessment)
		}).Return(nil)

	err = handler.Handle(ctx, newApprovedEvent(companyID, approvedBy, "PAY-202406-0001"))

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, requirement.ID, saved.RequirementID)
	assert.Equal(t, approvedBy, saved.ConductedBy)
	assert.Equal(t, "Payroll filing PAY-202406-0001", saved.Name)
	assert.Equal(t, compliance.AssessmentUnderReview, saved.OverallStatus)
	assert.Equal(t, "2024-06-01", saved.PeriodStart.Format("2006-01-02"))
	assert.Equal(t, "2024-06-30", saved.PeriodEnd.Format("2006-01-02"))
	requirementRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPayrollApprovedHandler_RegistersRequirementOnFirstFiling(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	approvedBy := uuid.New()
	svc, requirementRepo, assessmentRepo := newComplianceService()
	handler := NewPayrollApprovedHandler(svc, zap.NewNop())

	requirementRepo.On("FindByCode", ctx, companyID, StatutoryFilingCode).
		Return(nil, shared.ErrNotFound)

	var createdRequirement *compliance.Requirement
	requirementRepo.On("Save", ctx, mock.AnythingOfType("*compliance.Requirement")).
		Run(func(args mock.Arguments) {
			createdRequirement = args.Get(1).(*compliance.Requirement)
		}).Return(nil)
	assessmentRepo.On("Save", ctx, mock.AnythingOfType("*compliance.Assessment")).Return(nil)

	err := handler.Handle(ctx, newApprovedEvent(companyID, approvedBy, "PAY-202406-0001"))

	require.NoError(t, err)
	require.NotNil(t, createdRequirement)
	assert.Equal(t, StatutoryFilingCode, createdRequirement.Code)
	assert.Equal(t, compliance.TypeTaxCompliance, createdRequirement.Type)
	assessmentRepo.AssertExpectations(t)
}
