package scoring

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/MikeSquared-Agency/Quartermaster/internal/defs"
	"github.com/MikeSquared-Agency/Quartermaster/internal/dimension"
)

// Default weights for recipe-derived dimensions.
const (
	recipeEfficiencyWeight = 0.8
	recipeSpeedWeight      = 0.5
)

// staticSeeds is the hardcoded per-role weight table for roles whose gear
// preferences go beyond skill affinity. Applied before pruning.
var staticSeeds = map[string][]ScoreWeight{
	"doctor": {
		{Stat: "MedicalTendQuality", Weight: 1.5},
		{Stat: "MedicalSurgerySuccessChance", Weight: 1.2},
	},
	"hunter": {
		{Stat: "qm_weapon-ranged_accuracy_dps_medium", Weight: 1.5},
		{Stat: "qm_weapon-ranged_accuracy_dps_long", Weight: 1.0},
		{Stat: "qm_weapon-ranged_dps", Weight: 0.8},
	},
	"fighter": {
		{Stat: "qm_weapon-melee_dps", Weight: 1.2},
		{Stat: "qm_weapon-melee_armor_penetration", Weight: 0.8},
		{Stat: "qm_weapon-ranged_accuracy_dps_short", Weight: 1.0},
	},
	"miner": {
		{Stat: "MiningYield", Weight: 0.8},
	},
	"cook": {
		{Stat: "FoodPoisonChance", Weight: -2.0},
	},
}

// RuleBook lazily builds and memoizes the scoring rule per role. It owns
// the default-weight construction: static seeds, skill→dimension affinity,
// recipe-derived dimensions, then pruning to the role-relevant set.
type RuleBook struct {
	mu      sync.Mutex
	catalog *dimension.Catalog
	defs    defs.Provider
	ranges  *StatRanges
	logger  *slog.Logger
	rules   map[string]*Rule
}

func NewRuleBook(catalog *dimension.Catalog, provider defs.Provider, ranges *StatRanges, logger *slog.Logger) *RuleBook {
	return &RuleBook{
		catalog: catalog,
		defs:    provider,
		ranges:  ranges,
		logger:  logger,
		rules:   make(map[string]*Rule),
	}
}

// RuleFor returns the memoized rule for a role, building defaults on first
// request. Unknown roles get an empty rule rather than an error.
func (b *RuleBook) RuleFor(roleID string) *Rule {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := strings.ToLower(roleID)
	if r, ok := b.rules[key]; ok {
		return r
	}
	r := b.build(key)
	b.rules[key] = r
	return r
}

// Restore replaces a role's rule with a persisted document, bypassing
// default construction.
func (b *RuleBook) Restore(doc RuleDocument) *Rule {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := strings.ToLower(doc.RoleID)
	r := newRule(key, b.catalog, b.ranges, b.logger)
	for _, w := range doc.Weights {
		r.SetWeight(w.Stat, w.Weight, w.Protected)
	}
	b.rules[key] = r
	return r
}

// Discard drops a role's memoized rule so the next request rebuilds
// defaults.
func (b *RuleBook) Discard(roleID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.rules, strings.ToLower(roleID))
}

// Roles returns every role the definition provider knows, sorted.
func (b *RuleBook) Roles() []string {
	roles := b.defs.Roles()
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, strings.ToLower(r.Name))
	}
	sort.Strings(out)
	return out
}

func (b *RuleBook) build(roleID string) *Rule {
	r := newRule(roleID, b.catalog, b.ranges, b.logger)

	role, known := b.defs.Role(roleID)
	if !known {
		b.logger.Warn("building rule for unknown role", "role", roleID)
	}

	// 1. static per-role seed table
	for _, seed := range staticSeeds[roleID] {
		r.SetWeight(seed.Stat, seed.Weight, seed.Protected)
	}

	// 2. skill affinity: every dimension influenced by a role skill,
	// protected so a UI treats them as defaults
	for _, skill := range role.Skills {
		for _, dim := range b.catalog.InfluencedBySkill(skill) {
			if _, exists := r.Weight(dim.ID); !exists {
				r.SetWeight(dim.ID, 1.0, true)
			}
		}
	}

	// 3. recipe-derived dimensions
	for _, recipe := range b.defs.RecipesForRole(roleID) {
		if recipe.EfficiencyStat != "" {
			if _, exists := r.Weight(recipe.EfficiencyStat); !exists {
				r.SetWeight(recipe.EfficiencyStat, recipeEfficiencyWeight, true)
			}
		}
		if recipe.SpeedStat != "" {
			if _, exists := r.Weight(recipe.SpeedStat); !exists {
				r.SetWeight(recipe.SpeedStat, recipeSpeedWeight, true)
			}
		}
	}

	// 4. prune anything outside the role-relevant dimension set
	relevant := b.relevantSet(role)
	for _, w := range r.Weights() {
		if !relevant[strings.ToLower(w.Stat)] {
			r.DeleteWeight(w.Stat)
		}
	}

	return r
}

// relevantSet is the lower-cased ID set a role's rule may reference: the
// dimensions its skills influence, its declared relevant stats, and its
// recipes' stats.
func (b *RuleBook) relevantSet(role defs.RoleDef) map[string]bool {
	set := make(map[string]bool)
	for _, skill := range role.Skills {
		for _, dim := range b.catalog.InfluencedBySkill(skill) {
			set[strings.ToLower(dim.ID)] = true
		}
	}
	for _, stat := range role.RelevantStats {
		set[strings.ToLower(stat)] = true
	}
	for _, recipe := range b.defs.RecipesForRole(role.Name) {
		if recipe.EfficiencyStat != "" {
			set[strings.ToLower(recipe.EfficiencyStat)] = true
		}
		if recipe.SpeedStat != "" {
			set[strings.ToLower(recipe.SpeedStat)] = true
		}
	}
	return set
}
