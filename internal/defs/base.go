package defs

// Base returns the builtin definition bundle. A defs directory can overlay
// or extend it with additional YAML bundles.
func Base() Bundle {
	return Bundle{
		Stats: []StatDef{
			// work-tagged stats
			{Name: "WorkSpeedGlobal", Label: "Global work speed", Category: "work", Min: 0, Max: 5, Baseline: 1},
			{Name: "GeneralLaborSpeed", Label: "General labor speed", Category: "work", Min: 0, Max: 5, Baseline: 1},
			{Name: "MedicalTendSpeed", Label: "Medical tend speed", Category: "work", Min: 0, Max: 2, Baseline: 1, Skills: []string{"medicine"}},
			{Name: "MedicalTendQuality", Label: "Medical tend quality", Category: "work", Min: 0, Max: 2, Baseline: 1, Skills: []string{"medicine"}},
			{Name: "MedicalSurgerySuccessChance", Label: "Surgery success chance", Category: "work", Min: 0, Max: 2, Baseline: 1, Skills: []string{"medicine"}},
			{Name: "ConstructionSpeed", Label: "Construction speed", Category: "work", Min: 0, Max: 5, Baseline: 1, Skills: []string{"construction"}},
			{Name: "ConstructSuccessChance", Label: "Construct success chance", Category: "work", Min: 0, Max: 2, Baseline: 1, Skills: []string{"construction"}},
			{Name: "SmoothingSpeed", Label: "Smoothing speed", Category: "work", Min: 0, Max: 5, Baseline: 1, Skills: []string{"construction"}},
			{Name: "MiningSpeed", Label: "Mining speed", Category: "work", Min: 0, Max: 5, Baseline: 1, Skills: []string{"mining"}},
			{Name: "MiningYield", Label: "Mining yield", Category: "work", Min: 0, Max: 1.5, Baseline: 1, Skills: []string{"mining"}},
			{Name: "PlantWorkSpeed", Label: "Plant work speed", Category: "work", Min: 0, Max: 5, Baseline: 1, Skills: []string{"plants"}},
			{Name: "PlantHarvestYield", Label: "Plant harvest yield", Category: "work", Min: 0, Max: 1.5, Baseline: 1, Skills: []string{"plants"}},
			{Name: "CookSpeed", Label: "Cooking speed", Category: "work", Min: 0, Max: 5, Baseline: 1, Skills: []string{"cooking"}},
			{Name: "FoodPoisonChance", Label: "Food poison chance", Category: "work", Min: 0, Max: 1, Baseline: 0.02, Skills: []string{"cooking"}},
			{Name: "ButcheryEfficiency", Label: "Butchery efficiency", Category: "work", Min: 0, Max: 2, Baseline: 1, Skills: []string{"cooking"}},
			{Name: "ButcherySpeed", Label: "Butchery speed", Category: "work", Min: 0, Max: 5, Baseline: 1, Skills: []string{"cooking"}},
			{Name: "SmeltingEfficiency", Label: "Smelting efficiency", Category: "work", Min: 0, Max: 2, Baseline: 1},
			{Name: "SmeltingSpeed", Label: "Smelting speed", Category: "work", Min: 0, Max: 5, Baseline: 1},
			{Name: "GeneralLaborSpeed", Label: "General labor speed", Category: "work", Min: 0, Max: 5, Baseline: 1, Skills: []string{"crafting"}},
			{Name: "ResearchSpeed", Label: "Research speed", Category: "work", Min: 0, Max: 5, Baseline: 1, Skills: []string{"intellectual"}},
			{Name: "TrainAnimalChance", Label: "Train animal chance", Category: "work", Min: 0, Max: 2, Baseline: 1, Skills: []string{"animals"}},
			{Name: "TameAnimalChance", Label: "Tame animal chance", Category: "work", Min: 0, Max: 2, Baseline: 1, Skills: []string{"animals"}},
			{Name: "HuntingStealth", Label: "Hunting stealth", Category: "work", Min: 0, Max: 1, Baseline: 0.5, Skills: []string{"shooting"}},
			{Name: "ShootingAccuracyPawn", Label: "Shooting accuracy", Category: "work", Min: 0, Max: 1, Baseline: 0.89, Skills: []string{"shooting"}},
			{Name: "AimingDelayFactor", Label: "Aiming delay factor", Category: "work", Min: 0, Max: 2, Baseline: 1, Skills: []string{"shooting"}},
			{Name: "MeleeHitChance", Label: "Melee hit chance", Category: "work", Min: 0, Max: 1, Baseline: 0.62, Skills: []string{"melee"}},
			{Name: "MeleeDodgeChance", Label: "Melee dodge chance", Category: "work", Min: 0, Max: 1, Baseline: 0.08, Skills: []string{"melee"}},
			{Name: "TradePriceImprovement", Label: "Trade price improvement", Category: "work", Min: 0, Max: 0.5, Baseline: 0, Skills: []string{"social"}},
			{Name: "SocialImpact", Label: "Social impact", Category: "work", Min: 0, Max: 2, Baseline: 1, Skills: []string{"social"}},
			{Name: "NegotiationAbility", Label: "Negotiation ability", Category: "work", Min: 0, Max: 2, Baseline: 1, Skills: []string{"social"}},
			{Name: "ArtisticSpeed", Label: "Artistic speed", Category: "work", Min: 0, Max: 5, Baseline: 1, Skills: []string{"artistic"}},

			// pawn-tagged stats
			{Name: "MoveSpeed", Label: "Move speed", Category: "pawn", Min: 0, Max: 10, Baseline: 4.6},
			{Name: "CarryingCapacity", Label: "Carrying capacity", Category: "pawn", Min: 0, Max: 150, Baseline: 75},
			{Name: "PainShockThreshold", Label: "Pain shock threshold", Category: "pawn", Min: 0, Max: 1, Baseline: 0.8},
			{Name: "PsychicSensitivity", Label: "Psychic sensitivity", Category: "pawn", Min: 0, Max: 3, Baseline: 1},

			// apparel-tagged stats
			{Name: "ArmorRatingSharp", Label: "Armor - sharp", Category: "apparel", Min: 0, Max: 2, Baseline: 0},
			{Name: "ArmorRatingBlunt", Label: "Armor - blunt", Category: "apparel", Min: 0, Max: 2, Baseline: 0},
			{Name: "ArmorRatingHeat", Label: "Armor - heat", Category: "apparel", Min: 0, Max: 2, Baseline: 0},
			{Name: "InsulationCold", Label: "Insulation - cold", Category: "apparel", Min: 0, Max: 100, Baseline: 0},
			{Name: "InsulationHeat", Label: "Insulation - heat", Category: "apparel", Min: 0, Max: 100, Baseline: 0},

			// all-tagged stats
			{Name: "MarketValue", Label: "Market value", Category: "all", Min: 0, Max: 10000, Baseline: 0},
			{Name: "Mass", Label: "Mass", Category: "all", Min: 0, Max: 100, Baseline: 1},
			{Name: "MaxHitPoints", Label: "Max hit points", Category: "all", Min: 1, Max: 1000, Baseline: 100},
			{Name: "Flammability", Label: "Flammability", Category: "all", Min: 0, Max: 2, Baseline: 1},
		},
		Traits: []TraitDef{
			{Name: "brawler", Label: "Brawler"},
			{Name: "trigger_happy", Label: "Trigger-happy"},
			{Name: "careful_shooter", Label: "Careful shooter"},
			{Name: "bloodlust", Label: "Bloodlust"},
			{Name: "kind", Label: "Kind"},
			{Name: "abrasive", Label: "Abrasive"},
			{Name: "psychopath", Label: "Psychopath"},
			{Name: "night_owl", Label: "Night owl"},
			{Name: "iron_willed", Label: "Iron-willed"},
			{Name: "nervous", Label: "Nervous"},
			{Name: "tough", Label: "Tough"},
			{Name: "wimp", Label: "Wimp"},
			{Name: "fast_learner", Label: "Fast learner"},
			{Name: "slowpoke", Label: "Slowpoke"},
			{Name: "jogger", Label: "Jogger"},
			{Name: "nimble", Label: "Nimble"},
			{Name: "green_thumb", Label: "Green thumb"},
		},
		Roles: []RoleDef{
			{Name: "doctor", Label: "Doctor", Skills: []string{"medicine"}, RelevantStats: []string{"MoveSpeed"}},
			{Name: "builder", Label: "Builder", Skills: []string{"construction"}, RelevantStats: []string{"MoveSpeed", "CarryingCapacity"}},
			{Name: "miner", Label: "Miner", Skills: []string{"mining"}, RelevantStats: []string{"MoveSpeed", "CarryingCapacity"}},
			{Name: "cook", Label: "Cook", Skills: []string{"cooking"}, RelevantStats: []string{"MoveSpeed"}},
			{Name: "grower", Label: "Grower", Skills: []string{"plants"}, RelevantStats: []string{"MoveSpeed"}},
			{Name: "crafter", Label: "Crafter", Skills: []string{"crafting"}},
			{Name: "hunter", Label: "Hunter", Skills: []string{"shooting"}, RelevantStats: []string{"MoveSpeed", "qm_weapon-ranged_dps", "qm_weapon-ranged_accuracy_dps_medium", "qm_weapon-ranged_accuracy_dps_long"}},
			{Name: "fighter", Label: "Fighter", Skills: []string{"melee", "shooting"}, RelevantStats: []string{"MoveSpeed", "qm_weapon-melee_dps", "qm_weapon-melee_armor_penetration", "qm_weapon-ranged_dps", "qm_weapon-ranged_accuracy_dps_short"}},
			{Name: "researcher", Label: "Researcher", Skills: []string{"intellectual"}},
			{Name: "handler", Label: "Animal handler", Skills: []string{"animals"}, RelevantStats: []string{"MoveSpeed"}},
			{Name: "warden", Label: "Warden", Skills: []string{"social"}},
			{Name: "artist", Label: "Artist", Skills: []string{"artistic"}},
		},
		Recipes: []RecipeDef{
			{Name: "butcher_corpse", Role: "cook", EfficiencyStat: "ButcheryEfficiency", SpeedStat: "ButcherySpeed"},
			{Name: "smelt_slag", Role: "crafter", EfficiencyStat: "SmeltingEfficiency", SpeedStat: "SmeltingSpeed"},
		},
		WorkCapacities: []WorkCapacityDef{
			{Name: "violent", Label: "Violent"},
			{Name: "caring", Label: "Caring"},
			{Name: "social", Label: "Social"},
			{Name: "intellectual", Label: "Intellectual"},
			{Name: "manual_dumb", Label: "Dumb labor"},
			{Name: "manual_skilled", Label: "Skilled labor"},
			{Name: "hauling", Label: "Hauling"},
			{Name: "cleaning", Label: "Cleaning"},
			{Name: "firefighting", Label: "Firefighting"},
			{Name: "animals", Label: "Animals"},
			{Name: "plant_work", Label: "Plant work"},
			{Name: "mining", Label: "Mining"},
			{Name: "cooking", Label: "Cooking"},
			{Name: "crafting", Label: "Crafting"},
			{Name: "art", Label: "Art"},
		},
	}
}
