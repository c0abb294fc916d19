package adapters

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
)

//go:embed presets.yaml
var defaultPresets []byte

type presetFile struct {
	Presets []presetEntry `yaml:"presets"`
}

type presetEntry struct {
	Name        string                    `yaml:"name"`
	Description string                    `yaml:"description"`
	Allocations map[string][]presetChoice `yaml:"allocations"`
}

type presetChoice struct {
	Name                           string  `yaml:"name"`
	AllocationPercentage           float64 `yaml:"allocation_percentage"`
	ExpectedAnnualReturnPercentage float64 `yaml:"expected_annual_return_percentage"`
}

// presetCatalog implements adapter.AllocationPresetCatalog.
type presetCatalog struct {
	presets []entity.AllocationPreset
}

// NewPresetCatalog loads presets from path, or the built-in catalog when path is empty.
func NewPresetCatalog(path string) (adapter.AllocationPresetCatalog, error) {
	data := defaultPresets
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read presets file: %w", err)
		}
		data = raw
	}
	return ParsePresetCatalog(data)
}

// ParsePresetCatalog builds a catalog from YAML.
func ParsePresetCatalog(data []byte) (adapter.AllocationPresetCatalog, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	catalog := &presetCatalog{presets: make([]entity.AllocationPreset, 0, len(file.Presets))}
	seen := map[string]bool{}

	for _, p := range file.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset without a name")
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = true

		allocations := entity.AllocationsByHorizon{}
		for key, choices := range p.Allocations {
			horizon := entity.Horizon(strings.ToUpper(key))
			if !horizon.IsValid() {
				return nil, fmt.Errorf("preset %q: unknown horizon %q", p.Name, key)
			}
			for _, c := range choices {
				if c.AllocationPercentage < 0 || c.AllocationPercentage > 100 {
					return nil, fmt.Errorf("preset %q: allocation percentage of %q out of range", p.Name, c.Name)
				}
				allocations[horizon] = append(allocations[horizon], entity.InvestmentChoice{
					Name:                           c.Name,
					AllocationPercentage:           c.AllocationPercentage,
					ExpectedAnnualReturnPercentage: c.ExpectedAnnualReturnPercentage,
				})
			}
		}

		catalog.presets = append(catalog.presets, entity.AllocationPreset{
			Name:        p.Name,
			Description: p.Description,
			Allocations: allocations,
		})
	}

	return catalog, nil
}

func (c *presetCatalog) List() []entity.AllocationPreset {
	out := make([]entity.AllocationPreset, 0, len(c.presets))
	for _, p := range c.presets {
		p.Allocations = p.Allocations.Clone()
		out = append(out, p)
	}
	return out
}

func (c *presetCatalog) Find(name string) (entity.AllocationPreset, bool) {
	for _, p := range c.presets {
		if strings.EqualFold(p.Name, name) {
			p.Allocations = p.Allocations.Clone()
			return p, true
		}
	}
	return entity.AllocationPreset{}, false
}
