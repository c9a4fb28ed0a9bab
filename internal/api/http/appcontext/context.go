package appcontext

import (
	"context"

	"github.com/google/uuid"

	"github.com/univc/portfolio-server/internal/model"
)

type ctxKey int

const userIDKey ctxKey = iota

var _ model.ContextManager = (*Manager)(nil)

// Manager stores the authenticated user id under an unexported key, so only
// this package can write it.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
