package defs

import (
	"strings"

	"github.com/MikeSquared-Agency/Quartermaster/internal/dimension"
)

// StatDef is the static metadata for one host stat.
type StatDef struct {
	Name     string   `yaml:"name"`
	Label    string   `yaml:"label,omitempty"`
	Category string   `yaml:"category"`
	Min      float64  `yaml:"min"`
	Max      float64  `yaml:"max"`
	Baseline float64  `yaml:"baseline"`
	Skills   []string `yaml:"skills,omitempty"`
}

// TraitDef names a pawn trait.
type TraitDef struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label,omitempty"`
}

// RoleDef describes a work role: the skills it exercises and the stats that
// matter when ranking gear for it.
type RoleDef struct {
	Name          string   `yaml:"name"`
	Label         string   `yaml:"label,omitempty"`
	Skills        []string `yaml:"skills,omitempty"`
	RelevantStats []string `yaml:"relevant_stats,omitempty"`
}

// RecipeDef is an item-creation recipe gated by a role, carrying the stats
// that govern its yield and speed.
type RecipeDef struct {
	Name           string `yaml:"name"`
	Role           string `yaml:"role"`
	EfficiencyStat string `yaml:"efficiency_stat,omitempty"`
	SpeedStat      string `yaml:"speed_stat,omitempty"`
}

// WorkCapacityDef names a togglable work capacity.
type WorkCapacityDef struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label,omitempty"`
}

// Bundle is one definition document. Bundles merge; later entries win on
// name collision.
type Bundle struct {
	Stats          []StatDef         `yaml:"stats,omitempty"`
	Traits         []TraitDef        `yaml:"traits,omitempty"`
	Roles          []RoleDef         `yaml:"roles,omitempty"`
	Recipes        []RecipeDef       `yaml:"recipes,omitempty"`
	WorkCapacities []WorkCapacityDef `yaml:"work_capacities,omitempty"`
}

// Provider is the read-only definition lookup the engine is built from.
// Lookups are case-insensitive; "not found" is a normal answer, never an
// error.
type Provider interface {
	Stat(name string) (StatDef, bool)
	Stats() []StatDef
	Trait(name string) (TraitDef, bool)
	Role(name string) (RoleDef, bool)
	Roles() []RoleDef
	RecipesForRole(role string) []RecipeDef
	WorkCapacities() []WorkCapacityDef
}

// StaticProvider serves merged definition bundles from memory.
type StaticProvider struct {
	stats   map[string]StatDef
	statIDs []string
	traits  map[string]TraitDef
	roles   map[string]RoleDef
	roleIDs []string
	recipes map[string][]RecipeDef
	work    []WorkCapacityDef
}

// NewStaticProvider merges bundles into a provider, first bundle first.
func NewStaticProvider(bundles ...Bundle) *StaticProvider {
	p := &StaticProvider{
		stats:   make(map[string]StatDef),
		traits:  make(map[string]TraitDef),
		roles:   make(map[string]RoleDef),
		recipes: make(map[string][]RecipeDef),
	}
	for _, b := range bundles {
		p.merge(b)
	}
	return p
}

func (p *StaticProvider) merge(b Bundle) {
	for _, s := range b.Stats {
		key := strings.ToLower(s.Name)
		if _, seen := p.stats[key]; !seen {
			p.statIDs = append(p.statIDs, key)
		}
		p.stats[key] = s
	}
	for _, t := range b.Traits {
		p.traits[strings.ToLower(t.Name)] = t
	}
	for _, r := range b.Roles {
		key := strings.ToLower(r.Name)
		if _, seen := p.roles[key]; !seen {
			p.roleIDs = append(p.roleIDs, key)
		}
		p.roles[key] = r
	}
	for _, rc := range b.Recipes {
		key := strings.ToLower(rc.Role)
		p.recipes[key] = append(p.recipes[key], rc)
	}
	p.work = append(p.work, b.WorkCapacities...)
}

func (p *StaticProvider) Stat(name string) (StatDef, bool) {
	s, ok := p.stats[strings.ToLower(name)]
	return s, ok
}

func (p *StaticProvider) Stats() []StatDef {
	out := make([]StatDef, 0, len(p.statIDs))
	for _, id := range p.statIDs {
		out = append(out, p.stats[id])
	}
	return out
}

func (p *StaticProvider) Trait(name string) (TraitDef, bool) {
	t, ok := p.traits[strings.ToLower(name)]
	return t, ok
}

func (p *StaticProvider) Role(name string) (RoleDef, bool) {
	r, ok := p.roles[strings.ToLower(name)]
	return r, ok
}

func (p *StaticProvider) Roles() []RoleDef {
	out := make([]RoleDef, 0, len(p.roleIDs))
	for _, id := range p.roleIDs {
		out = append(out, p.roles[id])
	}
	return out
}

func (p *StaticProvider) RecipesForRole(role string) []RecipeDef {
	return p.recipes[strings.ToLower(role)]
}

func (p *StaticProvider) WorkCapacities() []WorkCapacityDef {
	return p.work
}

// Dimensions converts every stat def plus the synthesized derived metrics
// into the catalog's dimension set.
func Dimensions(p Provider) []dimension.Dimension {
	stats := p.Stats()
	dims := make([]dimension.Dimension, 0, len(stats))
	for _, s := range stats {
		dims = append(dims, dimension.Dimension{
			ID:       s.Name,
			Label:    s.Label,
			MinCap:   s.Min,
			MaxCap:   s.Max,
			Baseline: s.Baseline,
			Category: dimension.Category(s.Category),
			Skills:   s.Skills,
		})
	}
	return append(dims, dimension.SynthDimensions()...)
}
