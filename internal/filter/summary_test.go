package filter

import (
	"strings"
	"testing"

	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
)

func TestSummaryUndefined(t *testing.T) {
	if got := NewInheriting().Summary(0); got != "undefined" {
		t.Errorf("Summary = %q, want undefined", got)
	}
	if got := NewInheriting().Summary(2); got != "    undefined" {
		t.Errorf("indented Summary = %q", got)
	}
}

func TestSummaryRendersSetGroups(t *testing.T) {
	f := NewInheriting()
	f.KindsState = Enabled
	f.Kinds = []colony.Kind{colony.KindColonist, colony.KindSlave}
	f.TraitsState = Enabled
	f.Traits = []TraitRequirement{
		{Trait: "tough", Required: true},
		{Trait: "pyromaniac", Required: false},
	}
	f.SkillsState = Enabled
	f.SkillLimits = []RangeLimit{{Stat: "mining", Min: 5, Max: 20}}
	f.WeaponsState = Disabled

	got := f.Summary(0)
	for _, want := range []string{
		"kinds: colonist, slave",
		"traits: +tough, -pyromaniac",
		"skills: mining [5..20]",
		"weapons: ignore",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary missing %q:\n%s", want, got)
		}
	}
	// inherit-state groups stay silent
	if strings.Contains(got, "health") {
		t.Errorf("Summary should not mention inherited groups:\n%s", got)
	}
}

func TestSummaryEmptyHealthMask(t *testing.T) {
	f := NewInheriting()
	f.HealthState = Enabled

	got := f.Summary(0)
	if got != "health: none" {
		t.Errorf("Summary = %q, want %q", got, "health: none")
	}
}

func TestSummaryWorkSorted(t *testing.T) {
	f := NewInheriting()
	f.WorkState = Enabled
	f.WorkDisabled = map[string]bool{"violent": true, "caring": false}

	got := f.Summary(1)
	want := "  work: caring=enabled, violent=disabled"
	if got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}
