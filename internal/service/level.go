package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/univc/portfolio-server/internal/logger"
	"github.com/univc/portfolio-server/internal/model"
)

type Level struct {
	levelStore model.LevelStore
	logger     *logger.Logger
}

func NewLevel(levelStore model.LevelStore, logger *logger.Logger) *Level {
	return &Level{levelStore: levelStore, logger: logger}
}

func (s *Level) Create(ctx context.Context, level model.Level) (model.Level, error) {
	created, err := s.levelStore.Create(ctx, level)
	if err != nil {
		return model.Level{}, fmt.Errorf("failed to create level: %w", err)
	}

	s.logger.Info("level created", "level_id", created.ID, "title", created.Title)

	return created, nil
}

func (s *Level) Get(ctx context.Context, id uuid.UUID) (model.Level, error) {
	level, err := s.levelStore.GetByID(ctx, id)
	if err != nil {
		return model.Level{}, fmt.Errorf("failed to get level by id: %w", err)
	}
	return level, nil
}

func (s *Level) List(ctx context.Context, tag string) ([]model.Level, error) {
	levels, err := s.levelStore.List(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	return levels, nil
}

func (s *Level) Update(ctx context.Context, id uuid.UUID, update model.LevelUpdate) (model.Level, error) {
	level, err := s.levelStore.Update(ctx, id, update)
	if err != nil {
		return model.Level{}, fmt.Errorf("failed to update level: %w", err)
	}
	return level, nil
}

func (s *Level) Disable(ctx context.Context, id uuid.UUID) error {
	if err := s.levelStore.Disable(ctx, id); err != nil {
		return fmt.Errorf("failed to disable level: %w", err)
	}

	s.logger.Info("level disabled", "level_id", id)

	return nil
}
