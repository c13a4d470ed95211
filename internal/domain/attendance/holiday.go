package attendance

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hrms/backend/internal/domain/shared"
)

// Holiday is a company-observed non-working day
type Holiday struct {
	shared.TenantAggregateRoot
	Name        string
	Date        time.Time // Date only, midnight in company timezone
	IsRecurring bool      // Recurs every year on the same month/day
	IsOptional  bool      // Optional/floating holiday
	Description string
}

// TableName returns the table name for GORM
func (Holiday) TableName() string {
	return "holidays"
}

// NewHoliday creates a new holiday entry
func NewHoliday(companyID uuid.UUID, name string, date time.Time) (*Holiday, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_HOLIDAY_NAME", "Holiday name cannot be empty")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_HOLIDAY_DATE", "Holiday date is required")
	}

	return &Holiday{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Name:                strings.TrimSpace(name),
		Date:                truncateToDate(date),
	}, nil
}

// Update updates the holiday entry
func (h *Holiday) Update(name string, date time.Time, recurring, optional bool, description string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_HOLIDAY_NAME", "Holiday name cannot be empty")
	}
	if date.IsZero() {
		return shared.NewDomainError("INVALID_HOLIDAY_DATE", "Holiday date is required")
	}

	h.Name = strings.TrimSpace(name)
	h.Date = truncateToDate(date)
	h.IsRecurring = recurring
	h.IsOptional = optional
	h.Description = description
	h.UpdatedAt = time.Now()
	h.IncrementVersion()

	return nil
}

// Matches reports whether the holiday falls on the given date,
// accounting for yearly recurrence
func (h *Holiday) Matches(date time.Time) bool {
	if h.IsRecurring {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}
	d := truncateToDate(date)
	return h.Date.Equal(d)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// HolidayRepository defines the interface for holiday persistence
type HolidayRepository interface {
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Holiday, error)
	FindByYear(ctx context.Context, companyID uuid.UUID, year int) ([]Holiday, error)
	FindByDate(ctx context.Context, companyID uuid.UUID, date time.Time) ([]Holiday, error)
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Holiday, error)
	Save(ctx context.Context, holiday *Holiday) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}
