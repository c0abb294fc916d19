package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

const snapshotKeyPrefix = "planner:snapshot:"

// plannerStateStore implements adapter.PlannerStateStore on top of redis.
type plannerStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPlannerStateStore creates a redis backed snapshot store. A zero ttl keeps
// snapshots forever.
func NewPlannerStateStore(client *redis.Client, ttl time.Duration) adapter.PlannerStateStore {
	return &plannerStateStore{
		client: client,
		ttl:    ttl,
	}
}

func snapshotKey(userID uuid.UUID) string {
	return snapshotKeyPrefix + userID.String()
}

// Save writes the document as JSON under the user's key.
func (s *plannerStateStore) Save(ctx context.Context, userID uuid.UUID, doc valueobject.PlannerDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := s.client.Set(ctx, snapshotKey(userID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads the user's snapshot. A payload that is not a valid document is
// treated as missing.
func (s *plannerStateStore) Load(ctx context.Context, userID uuid.UUID) (valueobject.PlannerDocument, bool, error) {
	var doc valueobject.PlannerDocument

	payload, err := s.client.Get(ctx, snapshotKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return doc, false, nil
		}
		return doc, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := json.Unmarshal(payload, &doc); err != nil {
		slog.Warn("Discarding malformed planner snapshot", "user_id", userID, "error", err)
		return valueobject.PlannerDocument{}, false, nil
	}
	return doc, true, nil
}
