// Seeds a local colony bus with sample pawn and item snapshots so the
// service has something to match and rank during development.
//
// Usage: go run scripts/seed_colony.go [-url nats://localhost:4222]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
)

func main() {
	url := flag.String("url", "nats://localhost:4222", "colony bus URL")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	client, err := colony.NewNATSClient(context.Background(), *url, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	pawns := []colony.Pawn{
		{
			ID:     "pawn-ada",
			Name:   "Ada",
			Kind:   colony.KindColonist,
			Traits: []string{"careful_shooter", "iron_willed"},
			Skills: map[string]float64{"shooting": 11, "medicine": 4},
			Passions: map[string]colony.Passion{
				"shooting": colony.PassionMajor,
			},
			Capacities: map[string]float64{"moving": 1.0, "manipulation": 1.0, "sight": 1.1},
			Stats:      map[string]float64{"MoveSpeed": 4.6, "ShootingAccuracyPawn": 0.96},
			Weapon:     colony.WeaponRanged,
		},
		{
			ID:     "pawn-bors",
			Name:   "Bors",
			Kind:   colony.KindColonist,
			Health: colony.HealthInjured,
			Traits: []string{"brawler", "tough"},
			Skills: map[string]float64{"melee": 13, "mining": 8},
			Passions: map[string]colony.Passion{
				"melee": colony.PassionMinor,
			},
			Capacities:   map[string]float64{"moving": 0.9, "manipulation": 1.0},
			Stats:        map[string]float64{"MoveSpeed": 4.2, "MeleeHitChance": 0.9},
			Weapon:       colony.WeaponMelee,
			DisabledWork: map[string]bool{"intellectual": true},
		},
		{
			ID:         "pawn-cato",
			Name:       "Cato",
			Kind:       colony.KindPrisoner,
			Skills:     map[string]float64{"plants": 9, "cooking": 6},
			Capacities: map[string]float64{"moving": 1.0, "manipulation": 0.8},
			Stats:      map[string]float64{"MoveSpeed": 4.6},
			Weapon:     colony.WeaponNone,
		},
	}

	items := []colony.Item{
		{
			ID:       "item-rifle",
			DefName:  "BoltActionRifle",
			Category: "weapon-ranged",
			Quality:  "good",
			Stats: map[string]float64{
				"RangedDamage": 18, "RangedCooldown": 1.5, "WarmupTime": 1.7,
				"BurstCount": 1, "AccuracyShort": 0.85, "AccuracyMedium": 0.9,
				"AccuracyLong": 0.88, "AccuracyTouch": 0.65, "TechLevel": 3,
				"MarketValue": 360, "Mass": 3.5,
			},
		},
		{
			ID:       "item-smg",
			DefName:  "MachinePistol",
			Category: "weapon-ranged",
			Quality:  "normal",
			Stats: map[string]float64{
				"RangedDamage": 8, "RangedCooldown": 1.2, "WarmupTime": 0.9,
				"BurstCount": 3, "AccuracyShort": 0.8, "AccuracyMedium": 0.6,
				"AccuracyLong": 0.4, "AccuracyTouch": 0.9, "TechLevel": 4,
				"MarketValue": 240, "Mass": 2.0,
			},
		},
		{
			ID:       "item-gladius",
			DefName:  "Gladius",
			Category: "weapon-melee",
			Quality:  "excellent",
			Stats: map[string]float64{
				"MeleeDamage": 14, "MeleeCooldown": 1.4,
				"MeleeArmorPenetration": 0.21, "MarketValue": 190, "Mass": 0.85,
			},
		},
	}

	for i := range pawns {
		if err := client.Publish(colony.SubjectPawnSnapshot(pawns[i].ID), &pawns[i]); err != nil {
			fmt.Fprintf(os.Stderr, "publish pawn: %v\n", err)
			os.Exit(1)
		}
	}
	for i := range items {
		if err := client.Publish(colony.SubjectItemSnapshot(items[i].ID), &items[i]); err != nil {
			fmt.Fprintf(os.Stderr, "publish item: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("seeded %d pawns and %d items\n", len(pawns), len(items))
}
