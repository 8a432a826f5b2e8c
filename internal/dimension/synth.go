package dimension

// SynthPrefix marks programmatically synthesized dimensions. Combined with
// the category tag it guarantees IDs never collide with host-native stats.
const SynthPrefix = "qm_"

func synthID(cat Category, name string) string {
	return SynthPrefix + string(cat) + "_" + name
}

// SynthDimensions returns the derived weapon and tool metrics that the host
// definition tables do not carry natively: per-second damage, accuracy
// weighted damage at the four range bands, armor penetration, and tech
// level. All derive from raw item stats present in snapshots.
func SynthDimensions() []Dimension {
	dims := []Dimension{
		{
			ID:       synthID(CategoryWeaponMelee, "dps"),
			Label:    "Melee DPS",
			MinCap:   0,
			MaxCap:   50,
			Baseline: 0,
			Category: CategoryWeaponMelee,
			Derive:   meleeDPS,
		},
		{
			ID:       synthID(CategoryWeaponMelee, "armor_penetration"),
			Label:    "Melee armor penetration",
			MinCap:   0,
			MaxCap:   2,
			Baseline: 0,
			Category: CategoryWeaponMelee,
			Derive:   statPassthrough("MeleeArmorPenetration"),
		},
		{
			ID:       synthID(CategoryWeaponRanged, "dps"),
			Label:    "Ranged DPS",
			MinCap:   0,
			MaxCap:   50,
			Baseline: 0,
			Category: CategoryWeaponRanged,
			Derive:   rangedDPS,
		},
		{
			ID:       synthID(CategoryWeaponRanged, "armor_penetration"),
			Label:    "Ranged armor penetration",
			MinCap:   0,
			MaxCap:   2,
			Baseline: 0,
			Category: CategoryWeaponRanged,
			Derive:   statPassthrough("RangedArmorPenetration"),
		},
		{
			ID:       synthID(CategoryWeaponRanged, "tech_level"),
			Label:    "Weapon tech level",
			MinCap:   0,
			MaxCap:   6,
			Baseline: 2,
			Category: CategoryWeaponRanged,
			Derive:   statPassthrough("TechLevel"),
		},
		{
			ID:       synthID(CategoryTool, "work_speed"),
			Label:    "Tool work speed",
			MinCap:   0,
			MaxCap:   4,
			Baseline: 1,
			Category: CategoryTool,
			Derive:   statPassthrough("WorkSpeedFactor"),
		},
	}

	bands := []struct {
		name string
		stat string
	}{
		{"accuracy_dps_touch", "AccuracyTouch"},
		{"accuracy_dps_short", "AccuracyShort"},
		{"accuracy_dps_medium", "AccuracyMedium"},
		{"accuracy_dps_long", "AccuracyLong"},
	}
	for _, band := range bands {
		stat := band.stat
		dims = append(dims, Dimension{
			ID:       synthID(CategoryWeaponRanged, band.name),
			Label:    "Ranged DPS at " + stat,
			MinCap:   0,
			MaxCap:   50,
			Baseline: 0,
			Category: CategoryWeaponRanged,
			Derive: func(src StatSource) (float64, bool) {
				dps, ok := rangedDPS(src)
				if !ok {
					return 0, false
				}
				acc, ok := src.StatValue(stat)
				if !ok {
					return 0, false
				}
				return dps * acc, true
			},
		})
	}
	return dims
}

func statPassthrough(stat string) func(StatSource) (float64, bool) {
	return func(src StatSource) (float64, bool) {
		return src.StatValue(stat)
	}
}

func meleeDPS(src StatSource) (float64, bool) {
	dmg, ok := src.StatValue("MeleeDamage")
	if !ok {
		return 0, false
	}
	cooldown, ok := src.StatValue("MeleeCooldown")
	if !ok || cooldown <= 0 {
		return 0, false
	}
	return dmg / cooldown, true
}

func rangedDPS(src StatSource) (float64, bool) {
	dmg, ok := src.StatValue("RangedDamage")
	if !ok {
		return 0, false
	}
	cooldown, _ := src.StatValue("RangedCooldown")
	warmup, _ := src.StatValue("WarmupTime")
	cycle := cooldown + warmup
	if cycle <= 0 {
		return 0, false
	}
	burst, ok := src.StatValue("BurstCount")
	if !ok || burst < 1 {
		burst = 1
	}
	return dmg * burst / cycle, true
}
