package filter

import (
	"fmt"
	"sort"
	"strings"
)

// Summary renders a human-readable report of the criteria that are set,
// indented by indent levels. Explicitly disabled groups show an "ignore"
// marker; a filter with nothing set at all reports "undefined".
func (f *Filter) Summary(indent int) string {
	pad := strings.Repeat("  ", indent)
	var lines []string

	add := func(state TriState, label, value string) {
		switch state {
		case Enabled:
			lines = append(lines, fmt.Sprintf("%s%s: %s", pad, label, value))
		case Disabled:
			lines = append(lines, fmt.Sprintf("%s%s: ignore", pad, label))
		}
	}

	add(f.KindsState, "kinds", joinAny(f.Kinds))
	add(f.HealthState, "health", f.HealthAllow.String())
	add(f.WeaponsState, "weapons", joinAny(f.Weapons))
	add(f.PassionsState, "passions", joinAny(f.Passions))
	add(f.TraitsState, "traits", summarizeTraits(f.Traits))
	add(f.SkillsState, "skills", summarizeLimits(f.SkillLimits))
	add(f.CapacitiesState, "capacities", summarizeLimits(f.CapacityLimits))
	add(f.StatsState, "stats", summarizeLimits(f.StatLimits))
	add(f.WorkState, "work", summarizeWork(f.WorkDisabled))

	if len(lines) == 0 {
		return pad + "undefined"
	}
	return strings.Join(lines, "\n")
}

func joinAny[T ~string](values []T) string {
	if len(values) == 0 {
		return "none"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func summarizeTraits(reqs []TraitRequirement) string {
	if len(reqs) == 0 {
		return "none"
	}
	parts := make([]string, len(reqs))
	for i, r := range reqs {
		if r.Required {
			parts[i] = "+" + r.Trait
		} else {
			parts[i] = "-" + r.Trait
		}
	}
	return strings.Join(parts, ", ")
}

func summarizeLimits(limits []RangeLimit) string {
	if len(limits) == 0 {
		return "none"
	}
	parts := make([]string, len(limits))
	for i, l := range limits {
		parts[i] = fmt.Sprintf("%s [%g..%g]", l.Stat, l.Min, l.Max)
	}
	return strings.Join(parts, ", ")
}

func summarizeWork(disabled map[string]bool) string {
	if len(disabled) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(disabled))
	for k := range disabled {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		if disabled[k] {
			parts[i] = k + "=disabled"
		} else {
			parts[i] = k + "=enabled"
		}
	}
	return strings.Join(parts, ", ")
}
