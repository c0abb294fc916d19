package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/domain/planning"
	"github.com/goal-planner/backend/internal/domain/valueobject"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type memoryGoals struct {
	goals []*entity.Goal
}

func (r *memoryGoals) Create(_ context.Context, g *entity.Goal) error {
	r.goals = append(r.goals, g)
	return nil
}

func (r *memoryGoals) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

func (r *memoryGoals) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memoryGoals) Update(context.Context, *entity.Goal) error { return nil }

func (r *memoryGoals) Delete(context.Context, uuid.UUID) error { return nil }

func (r *memoryGoals) replaceForUser(userID uuid.UUID, goals []*entity.Goal) {
	kept := make([]*entity.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		if g.UserID != userID {
			kept = append(kept, g)
		}
	}
	r.goals = append(kept, goals...)
}

type memoryAllocations struct {
	byUser map[uuid.UUID]entity.AllocationsByHorizon
}

func (r *memoryAllocations) FindByUserID(_ context.Context, userID uuid.UUID) (entity.AllocationsByHorizon, error) {
	return r.byUser[userID].Clone(), nil
}

func (r *memoryAllocations) ReplaceHorizon(_ context.Context, userID uuid.UUID, h entity.Horizon, choices []entity.InvestmentChoice) error {
	r.byUser[userID][h] = choices
	return nil
}

func (r *memoryAllocations) ReplaceAll(_ context.Context, userID uuid.UUID, a entity.AllocationsByHorizon) error {
	r.byUser[userID] = a.Clone()
	return nil
}

type memoryState struct {
	goals       *memoryGoals
	allocations *memoryAllocations
	err         error
}

func (s *memoryState) ReplaceState(_ context.Context, userID uuid.UUID, state *entity.PlannerState) error {
	if s.err != nil {
		return s.err
	}
	s.goals.replaceForUser(userID, state.Goals)
	s.allocations.byUser[userID] = state.Allocations.Clone()
	return nil
}

type memoryStore struct {
	docs map[uuid.UUID]valueobject.PlannerDocument
	err  error
}

func (s *memoryStore) Save(_ context.Context, userID uuid.UUID, doc valueobject.PlannerDocument) error {
	if s.err != nil {
		return s.err
	}
	s.docs[userID] = doc
	return nil
}

func (s *memoryStore) Load(_ context.Context, userID uuid.UUID) (valueobject.PlannerDocument, bool, error) {
	if s.err != nil {
		return valueobject.PlannerDocument{}, false, s.err
	}
	doc, ok := s.docs[userID]
	return doc, ok, nil
}

type fixture struct {
	userID      uuid.UUID
	goals       *memoryGoals
	allocations *memoryAllocations
	state       *memoryState
	store       *memoryStore
	planner     *planning.Planner
	clock       fixedClock
}

func newFixture() *fixture {
	userID := uuid.New()
	f := &fixture{
		userID:      userID,
		goals:       &memoryGoals{},
		allocations: &memoryAllocations{byUser: map[uuid.UUID]entity.AllocationsByHorizon{}},
		store:       &memoryStore{docs: map[uuid.UUID]valueobject.PlannerDocument{}},
		planner:     planning.NewPlanner(0.05),
		clock:       fixedClock{now: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)},
	}
	f.state = &memoryState{goals: f.goals, allocations: f.allocations}

	f.goals.goals = []*entity.Goal{
		entity.NewGoal(userID, "Retirement", 1000000, entity.OneTimeSchedule{
			StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			TargetDate: time.Date(2035, 1, 1, 0, 0, 0, 0, time.UTC),
		}),
		entity.NewGoal(userID, "Insurance", 24000, entity.RecurringSchedule{}),
	}
	f.allocations.byUser[userID] = entity.AllocationsByHorizon{
		entity.HorizonShort: {{Name: "Liquid fund", AllocationPercentage: 100, ExpectedAnnualReturnPercentage: 6}},
		entity.HorizonLong: {
			{Name: "Index fund", AllocationPercentage: 70, ExpectedAnnualReturnPercentage: 12},
			{Name: "Gilt fund", AllocationPercentage: 30, ExpectedAnnualReturnPercentage: 7},
		},
	}
	return f
}

func TestGetSuggestionsUseCase(t *testing.T) {
	f := newFixture()
	uc := NewGetSuggestionsUseCase(f.goals, f.allocations, f.planner, f.clock)

	t.Run("defaults the reference date to today", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetSuggestionsInput{UserID: f.userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.ReferenceDate.Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected reference date 2026-10-18, got %s", output.ReferenceDate)
		}
		if len(output.Results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(output.Results))
		}
		if !output.Results[0].Active || len(output.Results[0].Suggestions) != 2 {
			t.Errorf("expected the retirement goal to be active with 2 suggestions, got %+v", output.Results[0])
		}
		if output.Results[1].Horizon != entity.HorizonShort || output.Results[1].InflationAdjustedTarget != 24000 {
			t.Errorf("expected an uninflated SHORT recurring goal, got %+v", output.Results[1])
		}
	})

	t.Run("reference date before the start deactivates the goal", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetSuggestionsInput{UserID: f.userID, ReferenceDate: "2024-12-31"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Results[0].Active || len(output.Results[0].Suggestions) != 0 {
			t.Errorf("expected no suggestions, got %+v", output.Results[0].Suggestions)
		}
	})

	t.Run("malformed reference date", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetSuggestionsInput{UserID: f.userID, ReferenceDate: "18/10/2026"})
		var plannerErr *domainerror.PlannerError
		if !errors.As(err, &plannerErr) || plannerErr.Code != domainerror.ErrCodeInvalidReferenceDate {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeInvalidReferenceDate, err)
		}
	})
}

func TestGetYearlyReturnsUseCase(t *testing.T) {
	f := newFixture()
	uc := NewGetYearlyReturnsUseCase(f.goals, f.allocations, f.planner, f.clock)

	output, err := uc.Execute(context.Background(), GetYearlyReturnsInput{UserID: f.userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.YearlyReturns) != 2 {
		t.Fatalf("expected 2 projections, got %d", len(output.YearlyReturns))
	}

	retirement := output.YearlyReturns[0]
	if len(retirement.PerInstrument) != 2 || len(retirement.PerInstrument[0].ReturnsByYear) != 10 {
		t.Fatalf("expected 2 instruments over 10 years, got %+v", retirement.PerInstrument)
	}
	final := retirement.PerInstrument[0].ReturnsByYear[9].CumulativeValue + retirement.PerInstrument[1].ReturnsByYear[9].CumulativeValue
	if final < 1628894.62 || final > 1628894.64 {
		t.Errorf("expected the final year to reach 1628894.63, got %v", final)
	}
}

func TestImportStateUseCase(t *testing.T) {
	f := newFixture()
	uc := NewImportStateUseCase(f.state)

	output, err := uc.Execute(context.Background(), ImportStateInput{
		UserID: f.userID,
		Document: valueobject.PlannerDocument{
			FinancialGoals: []valueobject.GoalDocument{
				{Name: "Wedding", Kind: "ONE_TIME", StartDate: "2026-01-01", TargetDate: "2028-01-01", TargetAmount: 1500000},
				{Name: "Broken", Kind: "ONE_TIME", TargetAmount: 1},
			},
			InvestmentAllocations: map[string][]valueobject.InvestmentChoiceDocument{
				"SHORT": {{Name: "Arbitrage fund", AllocationPercentage: 100, ExpectedAnnualReturnPercentage: 7}},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Document.FinancialGoals) != 1 || output.Document.FinancialGoals[0].Name != "Wedding" {
		t.Errorf("expected only the valid goal to be imported, got %+v", output.Document.FinancialGoals)
	}
	stored, _ := f.goals.FindByUserID(context.Background(), f.userID)
	if len(stored) != 1 {
		t.Errorf("expected previous goals to be replaced, got %d goals", len(stored))
	}
	if _, ok := f.allocations.byUser[f.userID][entity.HorizonLong]; ok {
		t.Error("expected LONG allocations to be replaced")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	f := newFixture()
	save := NewSaveSnapshotUseCase(f.goals, f.allocations, f.store, f.clock)
	restore := NewRestoreSnapshotUseCase(f.state, f.store)

	saved, err := save.Execute(context.Background(), SaveSnapshotInput{UserID: f.userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.GoalCount != 2 {
		t.Errorf("expected 2 goals in the snapshot, got %d", saved.GoalCount)
	}

	originalIDs := []uuid.UUID{f.goals.goals[0].ID, f.goals.goals[1].ID}
	f.goals.replaceForUser(f.userID, nil)

	restored, err := restore.Execute(context.Background(), RestoreSnapshotInput{UserID: f.userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !restored.Found {
		t.Error("expected the snapshot to be found")
	}

	goals, _ := f.goals.FindByUserID(context.Background(), f.userID)
	if len(goals) != 2 {
		t.Fatalf("expected 2 restored goals, got %d", len(goals))
	}
	for i, g := range goals {
		if g.ID != originalIDs[i] {
			t.Errorf("expected goal %d to keep id %s, got %s", i, originalIDs[i], g.ID)
		}
	}
	if len(f.allocations.byUser[f.userID][entity.HorizonLong]) != 2 {
		t.Error("expected LONG allocations to be restored")
	}
}

func TestRestoreSnapshotUseCase_MissingSnapshotResetsPlanner(t *testing.T) {
	f := newFixture()
	restore := NewRestoreSnapshotUseCase(f.state, f.store)

	output, err := restore.Execute(context.Background(), RestoreSnapshotInput{UserID: f.userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Found {
		t.Error("expected no snapshot to be found")
	}

	goals, _ := f.goals.FindByUserID(context.Background(), f.userID)
	if len(goals) != 0 || len(f.allocations.byUser[f.userID]) != 0 {
		t.Error("expected an empty planner")
	}
}

func TestSnapshot_StoreFailure(t *testing.T) {
	f := newFixture()
	f.store.err = errors.New("connection refused")

	_, err := NewSaveSnapshotUseCase(f.goals, f.allocations, f.store, f.clock).Execute(context.Background(), SaveSnapshotInput{UserID: f.userID})
	if !errors.Is(err, domainerror.ErrSnapshotUnavailable) {
		t.Errorf("expected ErrSnapshotUnavailable on save, got %v", err)
	}

	_, err = NewRestoreSnapshotUseCase(f.state, f.store).Execute(context.Background(), RestoreSnapshotInput{UserID: f.userID})
	if !errors.Is(err, domainerror.ErrSnapshotUnavailable) {
		t.Errorf("expected ErrSnapshotUnavailable on restore, got %v", err)
	}

	goals, _ := f.goals.FindByUserID(context.Background(), f.userID)
	if len(goals) != 2 {
		t.Error("expected a failed restore to leave the planner untouched")
	}
}

func TestImportStateUseCase_WriteFailureKeepsPlanner(t *testing.T) {
	f := newFixture()
	f.state.err = errors.New("database is locked")

	_, err := NewImportStateUseCase(f.state).Execute(context.Background(), ImportStateInput{
		UserID: f.userID,
		Document: valueobject.PlannerDocument{
			FinancialGoals: []valueobject.GoalDocument{{Name: "Wedding", Kind: "RECURRING", TargetAmount: 1500000}},
		},
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	goals, _ := f.goals.FindByUserID(context.Background(), f.userID)
	if len(goals) != 2 {
		t.Errorf("expected the original 2 goals, got %d", len(goals))
	}
	if len(f.allocations.byUser[f.userID][entity.HorizonLong]) != 2 {
		t.Error("expected the original allocations to be kept")
	}
}
