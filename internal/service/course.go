package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
)

type Course struct {
	courseStore model.CourseStore
	logger      *logger.Logger
}

func NewCourse(courseStore model.CourseStore, logger *logger.Logger) *Course {
	return &Course{courseStore: courseStore, logger: logger}
}

func (s *Course) Create(ctx context.Context, course model.Course) (model.Course, error) {
	created, err := s.courseStore.Create(ctx, course)
	if err != nil {
		return model.Course{}, fmt.Errorf("failed to create course: %w", err)
	}

	s.logger.Info("course created", "course_id", created.ID, "name", created.Name)

	return created, nil
}

func (s *Course) Get(ctx context.Context, id uuid.UUID) (model.Course, error) {
	course, err := s.courseStore.GetByID(ctx, id)
	if err != nil {
		return model.Course{}, fmt.Errorf("failed to get course by id: %w", err)
	}
	return course, nil
}

func (s *Course) ListEnabled(ctx context.Context) ([]model.Course, error) {
	courses, err := s.courseStore.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (s *Course) Update(ctx context.Context, id uuid.UUID, update model.CourseUpdate) (model.Course, error) {
	course, err := s.courseStore.Update(ctx, id, update)
	if err != nil {
		return model.Course{}, fmt.Errorf("failed to update course: %w", err)
	}
	return course, nil
}

func (s *Course) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (model.Course, error) {
	course, err := s.courseStore.SetEnabled(ctx, id, enabled)
	if err != nil {
		return model.Course{}, fmt.Errorf("failed to set course enabled: %w", err)
	}

	s.logger.Info("course enabled flag changed", "course_id", id, "enabled", enabled)

	return course, nil
}
