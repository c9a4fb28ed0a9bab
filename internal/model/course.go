package model

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CourseStore defines persistence operations for the courses reference table.
type CourseStore interface {
	Create(ctx context.Context, course Course) (Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (Course, error)
	ListEnabled(ctx context.Context) ([]Course, error)
	Update(ctx context.Context, id uuid.UUID, update CourseUpdate) (Course, error)
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (Course, error)
}

// Course is a degree course offered by the institution. Period is the number
// of academic periods; zero means not structured in periods.
type Course struct {
	ID          uuid.UUID
	Name        string
	Description string
	Period      int
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CourseUpdate carries partial updates; nil fields are left untouched.
type CourseUpdate struct {
	Name        *string
	Description *string
	Period      *int
}

// PeriodLabels returns the human-readable period list derived from Period.
func (c Course) PeriodLabels() []string {
	if c.Period <= 0 {
		return []string{}
	}
	labels := make([]string, 0, c.Period)
	for i := 1; i <= c.Period; i++ {
		labels = append(labels, fmt.Sprintf("%dº Período", i))
	}
	return labels
}
