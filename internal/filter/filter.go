package filter

import (
	"log/slog"

	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
	"github.com/MikeSquared-Agency/Quartermaster/internal/dimension"
	"github.com/MikeSquared-Agency/Quartermaster/internal/passion"
)

// RangeLimit constrains one numeric attribute to [Min, Max].
type RangeLimit struct {
	Stat string  `json:"stat"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Contains reports whether v falls inside the limit.
func (l RangeLimit) Contains(v float64) bool { return v >= l.Min && v <= l.Max }

// TraitRequirement is one entry of the trait criterion. Required entries
// combine as any-of; non-required entries are forbidden and combine as
// all-absent.
type TraitRequirement struct {
	Trait    string `json:"trait"`
	Required bool   `json:"required"`
}

// Context carries the collaborators a match run needs: the dimension
// catalog for stat limits and the passion provider plus role skills for the
// passion criterion.
type Context struct {
	Catalog    *dimension.Catalog
	Passions   passion.Provider
	RoleSkills []string
	Logger     *slog.Logger
}

// Filter is the multi-criterion pawn predicate. Each of the nine criterion
// groups sits behind its own tri-state toggle; a group in Disabled or
// Inherit state is skipped during matching.
type Filter struct {
	Inheriting bool `json:"inheriting,omitempty"`

	KindsState TriState      `json:"kinds_state"`
	Kinds      []colony.Kind `json:"kinds,omitempty"`

	HealthState TriState          `json:"health_state"`
	HealthAllow colony.HealthFlag `json:"health_allow"`

	WeaponsState TriState            `json:"weapons_state"`
	Weapons      []colony.WeaponKind `json:"weapons,omitempty"`

	PassionsState TriState         `json:"passions_state"`
	Passions      []colony.Passion `json:"passions,omitempty"`

	TraitsState TriState           `json:"traits_state"`
	Traits      []TraitRequirement `json:"traits,omitempty"`

	SkillsState TriState     `json:"skills_state"`
	SkillLimits []RangeLimit `json:"skill_limits,omitempty"`

	CapacitiesState TriState     `json:"capacities_state"`
	CapacityLimits  []RangeLimit `json:"capacity_limits,omitempty"`

	StatsState TriState     `json:"stats_state"`
	StatLimits []RangeLimit `json:"stat_limits,omitempty"`

	WorkState    TriState        `json:"work_state"`
	WorkDisabled map[string]bool `json:"work_disabled,omitempty"`
}

// New returns an empty non-inheriting filter: every group Disabled, so it
// matches every pawn.
func New() *Filter {
	return &Filter{
		KindsState:      Disabled,
		HealthState:     Disabled,
		WeaponsState:    Disabled,
		PassionsState:   Disabled,
		TraitsState:     Disabled,
		SkillsState:     Disabled,
		CapacitiesState: Disabled,
		StatsState:      Disabled,
		WorkState:       Disabled,
	}
}

// NewInheriting returns a filter whose every group defers to a fallback.
func NewInheriting() *Filter {
	return &Filter{Inheriting: true}
}

// Matches evaluates the pawn against every Enabled criterion group,
// cheapest first, short-circuiting on the first failure. Disabled and
// Inherit groups are vacuously true.
func (f *Filter) Matches(p *colony.Pawn, ctx *Context) bool {
	if f.KindsState == Enabled && !f.matchKind(p) {
		return false
	}
	if f.HealthState == Enabled && !f.matchHealth(p) {
		return false
	}
	if f.WeaponsState == Enabled && !f.matchWeapon(p) {
		return false
	}
	if f.WorkState == Enabled && !f.matchWork(p) {
		return false
	}
	if f.PassionsState == Enabled && !f.matchPassion(p, ctx) {
		return false
	}
	if f.TraitsState == Enabled && !f.matchTraits(p) {
		return false
	}
	if f.SkillsState == Enabled && !f.matchSkills(p) {
		return false
	}
	if f.CapacitiesState == Enabled && !f.matchCapacities(p) {
		return false
	}
	if f.StatsState == Enabled && !f.matchStats(p, ctx) {
		return false
	}
	return true
}

func (f *Filter) matchKind(p *colony.Pawn) bool {
	for _, k := range f.Kinds {
		if k == p.Kind {
			return true
		}
	}
	return false
}

// matchHealth disqualifies a pawn carrying any flag absent from the
// allow-set.
func (f *Filter) matchHealth(p *colony.Pawn) bool {
	return p.Health&^f.HealthAllow == 0
}

func (f *Filter) matchWeapon(p *colony.Pawn) bool {
	weapon := p.Weapon
	if weapon == "" {
		weapon = colony.WeaponNone
	}
	for _, w := range f.Weapons {
		if w == weapon {
			return true
		}
	}
	return false
}

func (f *Filter) matchWork(p *colony.Pawn) bool {
	for work, wantDisabled := range f.WorkDisabled {
		if p.WorkDisabled(work) != wantDisabled {
			return false
		}
	}
	return true
}

// matchPassion checks the pawn's strongest passion across the context's
// role skills (all skills when none are given) against the allow-set.
func (f *Filter) matchPassion(p *colony.Pawn, ctx *Context) bool {
	if ctx == nil || ctx.Passions == nil {
		return false
	}
	best := bestPassion(p, ctx)
	for _, allowed := range f.Passions {
		if allowed == best {
			return true
		}
	}
	return false
}

func bestPassion(p *colony.Pawn, ctx *Context) colony.Passion {
	rank := make(map[colony.Passion]int)
	for i, level := range ctx.Passions.Levels() {
		rank[level] = i
	}

	best := colony.PassionNone
	consider := func(level colony.Passion) {
		if rank[level] > rank[best] {
			best = level
		}
	}
	if len(ctx.RoleSkills) > 0 {
		for _, skill := range ctx.RoleSkills {
			consider(p.PassionFor(skill))
		}
		return best
	}
	for _, level := range p.Passions {
		consider(level)
	}
	return best
}

// matchTraits applies the asymmetric trait rule: every non-required entry's
// trait must be absent, and when any required entries exist at least one of
// their traits must be present. This any-of-required shape is deliberate.
func (f *Filter) matchTraits(p *colony.Pawn) bool {
	anyRequired := false
	anyRequiredPresent := false
	for _, req := range f.Traits {
		present := p.HasTrait(req.Trait)
		if !req.Required {
			if present {
				return false
			}
			continue
		}
		anyRequired = true
		if present {
			anyRequiredPresent = true
		}
	}
	if anyRequired && !anyRequiredPresent {
		return false
	}
	return true
}

func (f *Filter) matchSkills(p *colony.Pawn) bool {
	for _, limit := range f.SkillLimits {
		v, ok := p.SkillValue(limit.Stat)
		if !ok || !limit.Contains(v) {
			return false
		}
	}
	return true
}

func (f *Filter) matchCapacities(p *colony.Pawn) bool {
	for _, limit := range f.CapacityLimits {
		v, ok := p.CapacityValue(limit.Stat)
		if !ok || !limit.Contains(v) {
			return false
		}
	}
	return true
}

// matchStats resolves each limit's dimension through the catalog. An
// unresolvable dimension fails that criterion rather than panicking.
func (f *Filter) matchStats(p *colony.Pawn, ctx *Context) bool {
	for _, limit := range f.StatLimits {
		if ctx == nil || ctx.Catalog == nil {
			return false
		}
		dim := ctx.Catalog.ByName(limit.Stat)
		if dim == nil {
			if ctx.Logger != nil {
				ctx.Logger.Warn("unknown dimension in stat limit", "stat", limit.Stat)
			}
			return false
		}
		v, ok := dim.Value(p)
		if !ok || !limit.Contains(v) {
			return false
		}
	}
	return true
}

// Validate collapses any Inherit state to Disabled when the filter is not
// in inheriting mode. Called before persisting.
func (f *Filter) Validate() {
	if f.Inheriting {
		return
	}
	for _, s := range f.states() {
		if *s == Inherit {
			*s = Disabled
		}
	}
}

// ClampLimits pins every range limit into its dimension's valid caps.
// Unknown dimensions pass through untouched; Matches handles them.
func (f *Filter) ClampLimits(catalog *dimension.Catalog) {
	if catalog == nil {
		return
	}
	for _, limits := range [][]RangeLimit{f.SkillLimits, f.CapacityLimits, f.StatLimits} {
		for i := range limits {
			dim := catalog.ByName(limits[i].Stat)
			if dim == nil {
				continue
			}
			limits[i].Min = dim.ClampToCaps(limits[i].Min)
			limits[i].Max = dim.ClampToCaps(limits[i].Max)
		}
	}
}

// Copy returns a deep copy.
func (f *Filter) Copy() *Filter {
	cp := *f
	cp.Kinds = append([]colony.Kind(nil), f.Kinds...)
	cp.Weapons = append([]colony.WeaponKind(nil), f.Weapons...)
	cp.Passions = append([]colony.Passion(nil), f.Passions...)
	cp.Traits = append([]TraitRequirement(nil), f.Traits...)
	cp.SkillLimits = append([]RangeLimit(nil), f.SkillLimits...)
	cp.CapacityLimits = append([]RangeLimit(nil), f.CapacityLimits...)
	cp.StatLimits = append([]RangeLimit(nil), f.StatLimits...)
	if f.WorkDisabled != nil {
		cp.WorkDisabled = make(map[string]bool, len(f.WorkDisabled))
		for k, v := range f.WorkDisabled {
			cp.WorkDisabled[k] = v
		}
	}
	return &cp
}

func (f *Filter) states() []*TriState {
	return []*TriState{
		&f.KindsState, &f.HealthState, &f.WeaponsState, &f.PassionsState,
		&f.TraitsState, &f.SkillsState, &f.CapacitiesState, &f.StatsState,
		&f.WorkState,
	}
}

// Combine resolves an inheriting filter against a fallback: for each of the
// nine criterion groups, primary wins when its toggle is set, otherwise the
// fallback's entire group is taken. The result is always non-inheriting.
func Combine(primary, fallback *Filter) *Filter {
	out := New()

	if primary.KindsState.Set() {
		out.KindsState, out.Kinds = primary.KindsState, append([]colony.Kind(nil), primary.Kinds...)
	} else {
		out.KindsState, out.Kinds = fallback.KindsState, append([]colony.Kind(nil), fallback.Kinds...)
	}
	if primary.HealthState.Set() {
		out.HealthState, out.HealthAllow = primary.HealthState, primary.HealthAllow
	} else {
		out.HealthState, out.HealthAllow = fallback.HealthState, fallback.HealthAllow
	}
	if primary.WeaponsState.Set() {
		out.WeaponsState, out.Weapons = primary.WeaponsState, append([]colony.WeaponKind(nil), primary.Weapons...)
	} else {
		out.WeaponsState, out.Weapons = fallback.WeaponsState, append([]colony.WeaponKind(nil), fallback.Weapons...)
	}
	if primary.PassionsState.Set() {
		out.PassionsState, out.Passions = primary.PassionsState, append([]colony.Passion(nil), primary.Passions...)
	} else {
		out.PassionsState, out.Passions = fallback.PassionsState, append([]colony.Passion(nil), fallback.Passions...)
	}
	if primary.TraitsState.Set() {
		out.TraitsState, out.Traits = primary.TraitsState, append([]TraitRequirement(nil), primary.Traits...)
	} else {
		out.TraitsState, out.Traits = fallback.TraitsState, append([]TraitRequirement(nil), fallback.Traits...)
	}
	if primary.SkillsState.Set() {
		out.SkillsState, out.SkillLimits = primary.SkillsState, append([]RangeLimit(nil), primary.SkillLimits...)
	} else {
		out.SkillsState, out.SkillLimits = fallback.SkillsState, append([]RangeLimit(nil), fallback.SkillLimits...)
	}
	if primary.CapacitiesState.Set() {
		out.CapacitiesState, out.CapacityLimits = primary.CapacitiesState, append([]RangeLimit(nil), primary.CapacityLimits...)
	} else {
		out.CapacitiesState, out.CapacityLimits = fallback.CapacitiesState, append([]RangeLimit(nil), fallback.CapacityLimits...)
	}
	if primary.StatsState.Set() {
		out.StatsState, out.StatLimits = primary.StatsState, append([]RangeLimit(nil), primary.StatLimits...)
	} else {
		out.StatsState, out.StatLimits = fallback.StatsState, append([]RangeLimit(nil), fallback.StatLimits...)
	}
	if primary.WorkState.Set() {
		out.WorkState, out.WorkDisabled = primary.WorkState, copyBoolMap(primary.WorkDisabled)
	} else {
		out.WorkState, out.WorkDisabled = fallback.WorkState, copyBoolMap(fallback.WorkDisabled)
	}

	out.Validate()
	return out
}

func copyBoolMap(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
