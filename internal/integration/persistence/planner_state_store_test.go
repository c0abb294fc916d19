package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/goal-planner/backend/internal/domain/valueobject"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestPlannerStateStore_SaveAndLoad(t *testing.T) {
	server, client := newTestRedis(t)
	store := NewPlannerStateStore(client, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	doc := valueobject.PlannerDocument{
		FinancialGoals: []valueobject.GoalDocument{
			{ID: uuid.NewString(), Name: "House", Kind: "ONE_TIME", StartDate: "2025-01-01", TargetDate: "2035-01-01", TargetAmount: 5000000},
		},
		InvestmentAllocations: map[string][]valueobject.InvestmentChoiceDocument{
			"LONG": {{Name: "Index fund", AllocationPercentage: 100, ExpectedAnnualReturnPercentage: 12}},
		},
	}

	if err := store.Save(ctx, userID, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ttl := server.TTL(snapshotKey(userID)); ttl != time.Hour {
		t.Errorf("expected ttl of 1h, got %s", ttl)
	}

	got, found, err := store.Load(ctx, userID)
	if err != nil || !found {
		t.Fatalf("expected the snapshot to be found, got found=%v err=%v", found, err)
	}
	if len(got.FinancialGoals) != 1 || got.FinancialGoals[0] != doc.FinancialGoals[0] {
		t.Errorf("expected %+v, got %+v", doc.FinancialGoals, got.FinancialGoals)
	}
	if got.InvestmentAllocations["LONG"][0] != doc.InvestmentAllocations["LONG"][0] {
		t.Errorf("expected LONG allocations to survive, got %+v", got.InvestmentAllocations)
	}

	server.FastForward(2 * time.Hour)
	if _, found, _ := store.Load(ctx, userID); found {
		t.Error("expected the snapshot to expire")
	}
}

func TestPlannerStateStore_MissingAndMalformed(t *testing.T) {
	server, client := newTestRedis(t)
	store := NewPlannerStateStore(client, 0)
	ctx := context.Background()
	userID := uuid.New()

	if _, found, err := store.Load(ctx, userID); err != nil || found {
		t.Errorf("expected a missing snapshot, got found=%v err=%v", found, err)
	}

	if err := server.Set(snapshotKey(userID), "{not json"); err != nil {
		t.Fatalf("failed to seed redis: %v", err)
	}

	doc, found, err := store.Load(ctx, userID)
	if err != nil || found {
		t.Errorf("expected a malformed snapshot to be treated as missing, got found=%v err=%v", found, err)
	}
	if len(doc.FinancialGoals) != 0 {
		t.Errorf("expected an empty document, got %+v", doc)
	}
}

func TestPlannerStateStore_Unavailable(t *testing.T) {
	server, client := newTestRedis(t)
	store := NewPlannerStateStore(client, 0)
	server.Close()

	if _, _, err := store.Load(context.Background(), uuid.New()); err == nil {
		t.Error("expected an error when redis is down")
	}
}
