package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/valueobject"
)

// PlannerStateStore is a key-value store holding one planner snapshot per user.
type PlannerStateStore interface {
	// Save writes the document, replacing any previous snapshot.
	Save(ctx context.Context, userID uuid.UUID, doc valueobject.PlannerDocument) error

	// Load returns the stored document. found is false when no snapshot exists.
	Load(ctx context.Context, userID uuid.UUID) (doc valueobject.PlannerDocument, found bool, err error)
}
