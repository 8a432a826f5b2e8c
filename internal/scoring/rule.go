package scoring

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/MikeSquared-Agency/Quartermaster/internal/dimension"
)

// Candidate is anything rankable: an equipment item, a tool, or a pawn.
type Candidate interface {
	Ident() string
	StatValue(name string) (float64, bool)
}

// Rule is the weighted-dimension scoring rule for one work role. Weights
// are keyed by lower-cased dimension ID. A Rule does not enforce deletion
// policy for protected weights; callers own that. The weights map is
// guarded by mu: the scanner scores rules on its own goroutine while the
// API mutates them.
type Rule struct {
	RoleID string

	mu      sync.RWMutex
	weights map[string]ScoreWeight
	catalog *dimension.Catalog
	ranges  *StatRanges
	logger  *slog.Logger
}

func newRule(roleID string, catalog *dimension.Catalog, ranges *StatRanges, logger *slog.Logger) *Rule {
	return &Rule{
		RoleID:  roleID,
		weights: make(map[string]ScoreWeight),
		catalog: catalog,
		ranges:  ranges,
		logger:  logger,
	}
}

// Score sums normalized-deviation × weight over the rule's dimensions.
// Unresolvable dimensions and missing candidate values contribute zero, so
// a partially-invalid configuration degrades instead of failing.
func (r *Rule) Score(c Candidate) float64 {
	var total float64
	for _, w := range r.sorted() {
		dim := r.catalog.ByName(w.Stat)
		if dim == nil {
			r.logger.Warn("unknown dimension in rule, contributing zero",
				"role", r.RoleID, "stat", w.Stat)
			continue
		}
		raw, ok := dim.Value(c)
		if !ok {
			continue
		}
		deviation := raw - dim.Baseline
		total += r.ranges.Normalize(dim.ID, deviation) * w.Weight
	}
	return total
}

// SetWeight upserts a weight, clamping it into [-WeightCap, WeightCap].
func (r *Rule) SetWeight(stat string, weight float64, protected bool) {
	key := strings.ToLower(stat)
	r.mu.Lock()
	r.weights[key] = NewScoreWeight(stat, weight, protected)
	r.mu.Unlock()
}

// DeleteWeight removes a weight unconditionally, protected or not.
func (r *Rule) DeleteWeight(stat string) {
	r.mu.Lock()
	delete(r.weights, strings.ToLower(stat))
	r.mu.Unlock()
}

// Weight returns the weight for a dimension, false when absent.
func (r *Rule) Weight(stat string) (ScoreWeight, bool) {
	r.mu.RLock()
	w, ok := r.weights[strings.ToLower(stat)]
	r.mu.RUnlock()
	return w, ok
}

// Weights returns all weights sorted by stat for deterministic output.
func (r *Rule) Weights() []ScoreWeight { return r.sorted() }

func (r *Rule) sorted() []ScoreWeight {
	r.mu.RLock()
	out := make([]ScoreWeight, 0, len(r.weights))
	for _, w := range r.weights {
		out = append(out, w)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Stat) < strings.ToLower(out[j].Stat)
	})
	return out
}

// Export captures the rule as a persistable document.
func (r *Rule) Export() RuleDocument {
	return RuleDocument{RoleID: r.RoleID, Weights: r.sorted()}
}

// RuleDocument is the serialized form of a Rule.
type RuleDocument struct {
	RoleID  string        `json:"role_id"`
	Weights []ScoreWeight `json:"weights"`
}
