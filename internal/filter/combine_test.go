package filter

import (
	"testing"

	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
)

func TestCombinePrimaryWinsWhenSet(t *testing.T) {
	primary := NewInheriting()
	primary.KindsState = Enabled
	primary.Kinds = []colony.Kind{colony.KindColonist}
	primary.TraitsState = Disabled

	fallback := New()
	fallback.KindsState = Enabled
	fallback.Kinds = []colony.Kind{colony.KindPrisoner}
	fallback.TraitsState = Enabled
	fallback.Traits = []TraitRequirement{{Trait: "tough", Required: true}}

	out := Combine(primary, fallback)

	if out.KindsState != Enabled || len(out.Kinds) != 1 || out.Kinds[0] != colony.KindColonist {
		t.Errorf("kinds group should come from primary, got %v %v", out.KindsState, out.Kinds)
	}
	// primary explicitly disabled traits, so the fallback's trait group
	// must not leak through
	if out.TraitsState != Disabled || len(out.Traits) != 0 {
		t.Errorf("traits group should be primary's Disabled, got %v %v", out.TraitsState, out.Traits)
	}
}

func TestCombineFallsBackWhenInheriting(t *testing.T) {
	primary := NewInheriting()

	fallback := New()
	fallback.HealthState = Enabled
	fallback.HealthAllow = colony.HealthInjured
	fallback.SkillsState = Enabled
	fallback.SkillLimits = []RangeLimit{{Stat: "mining", Min: 4, Max: 20}}
	fallback.WorkState = Enabled
	fallback.WorkDisabled = map[string]bool{"violent": true}

	out := Combine(primary, fallback)

	if out.HealthState != Enabled || out.HealthAllow != colony.HealthInjured {
		t.Error("health group should come from fallback")
	}
	if out.SkillsState != Enabled || len(out.SkillLimits) != 1 {
		t.Error("skill group should come from fallback")
	}
	if out.WorkState != Enabled || !out.WorkDisabled["violent"] {
		t.Error("work group should come from fallback")
	}
	// untouched groups resolve to Disabled, never Inherit
	if out.KindsState != Disabled || out.WeaponsState != Disabled {
		t.Error("groups unset on both sides must resolve to Disabled")
	}
	if out.Inheriting {
		t.Error("combined filter must be non-inheriting")
	}
}

func TestCombineCoversEveryGroup(t *testing.T) {
	primary := NewInheriting()
	primary.WeaponsState = Enabled
	primary.Weapons = []colony.WeaponKind{colony.WeaponMelee}
	primary.PassionsState = Enabled
	primary.Passions = []colony.Passion{colony.PassionMajor}
	primary.CapacitiesState = Enabled
	primary.CapacityLimits = []RangeLimit{{Stat: "sight", Min: 0.8, Max: 2}}

	fallback := New()
	fallback.StatsState = Enabled
	fallback.StatLimits = []RangeLimit{{Stat: "MoveSpeed", Min: 4, Max: 10}}

	out := Combine(primary, fallback)

	if len(out.Weapons) != 1 || out.Weapons[0] != colony.WeaponMelee {
		t.Error("weapons from primary")
	}
	if len(out.Passions) != 1 || out.Passions[0] != colony.PassionMajor {
		t.Error("passions from primary")
	}
	if len(out.CapacityLimits) != 1 || out.CapacityLimits[0].Stat != "sight" {
		t.Error("capacities from primary")
	}
	if out.StatsState != Enabled || len(out.StatLimits) != 1 {
		t.Error("stats from fallback")
	}
}

func TestCombineEachGroupFromEitherSide(t *testing.T) {
	groups := []struct {
		name string
		set  func(*Filter)
		got  func(*Filter) (TriState, bool)
	}{
		{
			"kinds",
			func(f *Filter) { f.KindsState, f.Kinds = Enabled, []colony.Kind{colony.KindColonist} },
			func(f *Filter) (TriState, bool) { return f.KindsState, len(f.Kinds) == 1 },
		},
		{
			"health",
			func(f *Filter) { f.HealthState, f.HealthAllow = Enabled, colony.HealthInjured },
			func(f *Filter) (TriState, bool) { return f.HealthState, f.HealthAllow == colony.HealthInjured },
		},
		{
			"weapons",
			func(f *Filter) { f.WeaponsState, f.Weapons = Enabled, []colony.WeaponKind{colony.WeaponMelee} },
			func(f *Filter) (TriState, bool) { return f.WeaponsState, len(f.Weapons) == 1 },
		},
		{
			"passions",
			func(f *Filter) { f.PassionsState, f.Passions = Enabled, []colony.Passion{colony.PassionMajor} },
			func(f *Filter) (TriState, bool) { return f.PassionsState, len(f.Passions) == 1 },
		},
		{
			"traits",
			func(f *Filter) {
				f.TraitsState, f.Traits = Enabled, []TraitRequirement{{Trait: "tough", Required: true}}
			},
			func(f *Filter) (TriState, bool) { return f.TraitsState, len(f.Traits) == 1 },
		},
		{
			"skills",
			func(f *Filter) {
				f.SkillsState, f.SkillLimits = Enabled, []RangeLimit{{Stat: "mining", Min: 4, Max: 20}}
			},
			func(f *Filter) (TriState, bool) { return f.SkillsState, len(f.SkillLimits) == 1 },
		},
		{
			"capacities",
			func(f *Filter) {
				f.CapacitiesState, f.CapacityLimits = Enabled, []RangeLimit{{Stat: "sight", Min: 0.8, Max: 2}}
			},
			func(f *Filter) (TriState, bool) { return f.CapacitiesState, len(f.CapacityLimits) == 1 },
		},
		{
			"stats",
			func(f *Filter) {
				f.StatsState, f.StatLimits = Enabled, []RangeLimit{{Stat: "MoveSpeed", Min: 4, Max: 10}}
			},
			func(f *Filter) (TriState, bool) { return f.StatsState, len(f.StatLimits) == 1 },
		},
		{
			"work",
			func(f *Filter) { f.WorkState, f.WorkDisabled = Enabled, map[string]bool{"violent": true} },
			func(f *Filter) (TriState, bool) { return f.WorkState, f.WorkDisabled["violent"] },
		},
	}

	for _, g := range groups {
		t.Run(g.name+"/primary", func(t *testing.T) {
			primary := NewInheriting()
			g.set(primary)
			out := Combine(primary, New())
			if state, ok := g.got(out); state != Enabled || !ok {
				t.Errorf("%s group should come from primary, got state %v", g.name, state)
			}
		})
		t.Run(g.name+"/fallback", func(t *testing.T) {
			fallback := New()
			g.set(fallback)
			out := Combine(NewInheriting(), fallback)
			if state, ok := g.got(out); state != Enabled || !ok {
				t.Errorf("%s group should come from fallback, got state %v", g.name, state)
			}
		})
	}
}

func TestCombineCopiesGroupData(t *testing.T) {
	primary := NewInheriting()
	fallback := New()
	fallback.KindsState = Enabled
	fallback.Kinds = []colony.Kind{colony.KindColonist}

	out := Combine(primary, fallback)
	out.Kinds[0] = colony.KindMech
	if fallback.Kinds[0] != colony.KindColonist {
		t.Error("combine must copy group slices, not alias them")
	}
}
