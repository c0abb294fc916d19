package adapters

import (
	"testing"

	"github.com/goal-planner/backend/internal/domain/entity"
)

func TestNewPresetCatalog_BuiltIn(t *testing.T) {
	catalog, err := NewPresetCatalog("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	presets := catalog.List()
	if len(presets) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(presets))
	}
	if presets[0].Name != "conservative" || presets[2].Name != "aggressive" {
		t.Errorf("expected catalog order to be kept, got %s..%s", presets[0].Name, presets[2].Name)
	}

	for _, p := range presets {
		for _, h := range entity.Horizons {
			sum := 0.0
			for _, c := range p.Allocations[h] {
				sum += c.AllocationPercentage
			}
			if sum != 100 {
				t.Errorf("preset %s horizon %s: expected weights to sum to 100, got %v", p.Name, h, sum)
			}
		}
	}

	balanced, ok := catalog.Find("Balanced")
	if !ok {
		t.Fatal("expected case-insensitive lookup to find the balanced preset")
	}
	balanced.Allocations[entity.HorizonLong][0].Name = "changed"
	again, _ := catalog.Find("balanced")
	if again.Allocations[entity.HorizonLong][0].Name != "Index fund" {
		t.Error("expected catalog entries to be returned as copies")
	}
}

func TestParsePresetCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "presets: [\n"},
		{"unknown horizon", "presets:\n  - name: x\n    allocations:\n      WEEKLY:\n        - {name: a, allocation_percentage: 10}\n"},
		{"out of range", "presets:\n  - name: x\n    allocations:\n      LONG:\n        - {name: a, allocation_percentage: 120}\n"},
		{"duplicate", "presets:\n  - name: x\n  - name: x\n"},
		{"unnamed", "presets:\n  - description: nameless\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePresetCatalog([]byte(tt.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
