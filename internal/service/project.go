package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
)

// Project handles portfolio projects. Mutations are owner-checked: a project
// can only be changed or removed by the user it belongs to.
type Project struct {
	projectStore model.ProjectStore
	logger       *logger.Logger
}

func NewProject(projectStore model.ProjectStore, logger *logger.Logger) *Project {
	return &Project{projectStore: projectStore, logger: logger}
}

// NormalizeTags flattens tag input: elements may be plain tags or comma
// separated lists, optionally prefixed with '#'. Empty results are dropped
// and duplicates keep their first position.
func NormalizeTags(values []string) []string {
	tags := []string{}
	seen := map[string]bool{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			tag := strings.TrimPrefix(strings.TrimSpace(part), "#")
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

func (s *Project) Create(ctx context.Context, project model.Project) (model.Project, error) {
	project.Tags = NormalizeTags(project.Tags)

	created, err := s.projectStore.Create(ctx, project)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("project created", "project_id", created.ID, "user_id", created.UserID)

	return created, nil
}

func (s *Project) Get(ctx context.Context, id uuid.UUID) (model.Project, error) {
	project, err := s.projectStore.GetByID(ctx, id)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to get project by id: %w", err)
	}
	return project, nil
}

func (s *Project) List(ctx context.Context, filter model.ProjectFilter) ([]model.Project, error) {
	projects, err := s.projectStore.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *Project) Update(ctx context.Context, userID, id uuid.UUID, update model.ProjectUpdate) (model.Project, error) {
	project, err := s.projectStore.GetByID(ctx, id)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to get project by id: %w", err)
	}
	if project.UserID != userID {
		return model.Project{}, model.ErrNotOwner
	}

	if update.Tags != nil {
		update.Tags = NormalizeTags(update.Tags)
	}

	updated, err := s.projectStore.Update(ctx, id, update)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	return updated, nil
}

func (s *Project) Disable(ctx context.Context, userID, id uuid.UUID) error {
	project, err := s.projectStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get project by id: %w", err)
	}
	if project.UserID != userID {
		return model.ErrNotOwner
	}

	if err := s.projectStore.Disable(ctx, id); err != nil {
		return fmt.Errorf("failed to disable project: %w", err)
	}

	s.logger.Info("project disabled", "project_id", id, "user_id", userID)

	return nil
}
