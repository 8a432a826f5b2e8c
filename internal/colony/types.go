package colony

import (
	"encoding/json"
	"strings"
)

// Kind classifies a live pawn.
type Kind string

const (
	KindColonist Kind = "colonist"
	KindPrisoner Kind = "prisoner"
	KindSlave    Kind = "slave"
	KindGuest    Kind = "guest"
	KindAnimal   Kind = "animal"
	KindMech     Kind = "mech"
)

// WeaponKind classifies a pawn's equipped weapon.
type WeaponKind string

const (
	WeaponNone   WeaponKind = "none"
	WeaponMelee  WeaponKind = "melee"
	WeaponRanged WeaponKind = "ranged"
)

// Passion is a named skill-passion level. The native ladder is
// none/minor/major; an external passion provider may extend it.
type Passion string

const (
	PassionNone  Passion = "none"
	PassionMinor Passion = "minor"
	PassionMajor Passion = "major"
)

// HealthFlag is a bitmask of health conditions currently affecting a pawn.
// Zero means fit for duty.
type HealthFlag uint32

const (
	HealthDowned HealthFlag = 1 << iota
	HealthInjured
	HealthSick
	HealthBleeding
	HealthMentalBreak
	HealthResting
)

var healthFlagNames = map[HealthFlag]string{
	HealthDowned:      "downed",
	HealthInjured:     "injured",
	HealthSick:        "sick",
	HealthBleeding:    "bleeding",
	HealthMentalBreak: "mental_break",
	HealthResting:     "resting",
}

// AllHealthFlags lists every defined flag in declaration order.
func AllHealthFlags() []HealthFlag {
	return []HealthFlag{
		HealthDowned, HealthInjured, HealthSick,
		HealthBleeding, HealthMentalBreak, HealthResting,
	}
}

func (f HealthFlag) String() string {
	if f == 0 {
		return "none"
	}
	if name, ok := healthFlagNames[f]; ok {
		return name
	}
	var parts []string
	for _, flag := range AllHealthFlags() {
		if f&flag != 0 {
			parts = append(parts, healthFlagNames[flag])
		}
	}
	return strings.Join(parts, "|")
}

// ParseHealthFlag resolves a single flag name, case-insensitively.
func ParseHealthFlag(name string) (HealthFlag, bool) {
	for flag, n := range healthFlagNames {
		if strings.EqualFold(n, name) {
			return flag, true
		}
	}
	return 0, false
}

// Has reports whether every bit of flag is set.
func (f HealthFlag) Has(flag HealthFlag) bool { return f&flag == flag }

// Split returns the individual flags set in f, in declaration order.
func (f HealthFlag) Split() []HealthFlag {
	var out []HealthFlag
	for _, flag := range AllHealthFlags() {
		if f&flag != 0 {
			out = append(out, flag)
		}
	}
	return out
}

// MarshalJSON encodes the mask as a list of flag names.
func (f HealthFlag) MarshalJSON() ([]byte, error) {
	names := []string{}
	for _, flag := range f.Split() {
		names = append(names, healthFlagNames[flag])
	}
	return json.Marshal(names)
}

// UnmarshalJSON decodes a list of flag names, skipping unknown ones.
func (f *HealthFlag) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var mask HealthFlag
	for _, name := range names {
		if flag, ok := ParseHealthFlag(name); ok {
			mask |= flag
		}
	}
	*f = mask
	return nil
}

// Pawn is a live entity snapshot as published by the host simulation.
// Attribute maps are keyed by lower-cased definition names.
type Pawn struct {
	ID           string             `json:"id"`
	Name         string             `json:"name,omitempty"`
	Kind         Kind               `json:"kind"`
	Health       HealthFlag         `json:"health"`
	Traits       []string           `json:"traits,omitempty"`
	Skills       map[string]float64 `json:"skills,omitempty"`
	Passions     map[string]Passion `json:"passions,omitempty"`
	Capacities   map[string]float64 `json:"capacities,omitempty"`
	Stats        map[string]float64 `json:"stats,omitempty"`
	Weapon       WeaponKind         `json:"weapon,omitempty"`
	DisabledWork map[string]bool    `json:"disabled_work,omitempty"`
}

// Ident returns the stable identifier used in logs and rank results.
func (p *Pawn) Ident() string { return p.ID }

// SkillValue looks up a skill level by name, case-insensitively.
func (p *Pawn) SkillValue(name string) (float64, bool) {
	return lookup(p.Skills, name)
}

// CapacityValue looks up a body capacity by name, case-insensitively.
func (p *Pawn) CapacityValue(name string) (float64, bool) {
	return lookup(p.Capacities, name)
}

// StatValue looks up a raw stat by name, falling back to skills and
// capacities so a single namespace covers all numeric attributes.
func (p *Pawn) StatValue(name string) (float64, bool) {
	if v, ok := lookup(p.Stats, name); ok {
		return v, true
	}
	if v, ok := lookup(p.Skills, name); ok {
		return v, true
	}
	return lookup(p.Capacities, name)
}

// PassionFor returns the pawn's passion for a skill, defaulting to none.
func (p *Pawn) PassionFor(skill string) Passion {
	for k, v := range p.Passions {
		if strings.EqualFold(k, skill) {
			return v
		}
	}
	return PassionNone
}

// HasTrait reports whether the pawn carries the named trait.
func (p *Pawn) HasTrait(trait string) bool {
	for _, t := range p.Traits {
		if strings.EqualFold(t, trait) {
			return true
		}
	}
	return false
}

// WorkDisabled reports whether the named work capacity is disabled.
func (p *Pawn) WorkDisabled(work string) bool {
	for k, v := range p.DisabledWork {
		if strings.EqualFold(k, work) {
			return v
		}
	}
	return false
}

// Item is a candidate equipment/tool snapshot.
type Item struct {
	ID       string             `json:"id"`
	DefName  string             `json:"def_name"`
	Category string             `json:"category,omitempty"`
	Quality  string             `json:"quality,omitempty"`
	Stats    map[string]float64 `json:"stats,omitempty"`
}

// Ident returns the stable identifier used in rank results.
func (i *Item) Ident() string { return i.ID }

// StatValue looks up a raw stat by name, case-insensitively.
func (i *Item) StatValue(name string) (float64, bool) {
	return lookup(i.Stats, name)
}

func lookup(m map[string]float64, name string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	if v, ok := m[name]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return 0, false
}
