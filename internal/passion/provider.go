// Package passion abstracts the skill-passion ladder. The native provider
// carries the host's builtin three levels; the external provider pulls an
// extended ladder from a companion service. Exactly one is selected at
// startup.
package passion

import (
	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
)

type Provider interface {
	// Levels returns the full passion ladder, weakest first.
	Levels() []colony.Passion
	// Known reports whether the level exists in this provider's ladder.
	Known(p colony.Passion) bool
	// LearnFactor returns the experience multiplier for a level, 1.0 for
	// unknown levels.
	LearnFactor(p colony.Passion) float64
}

// NativeProvider serves the builtin none/minor/major ladder.
type NativeProvider struct{}

func NewNativeProvider() *NativeProvider { return &NativeProvider{} }

func (*NativeProvider) Levels() []colony.Passion {
	return []colony.Passion{colony.PassionNone, colony.PassionMinor, colony.PassionMajor}
}

func (p *NativeProvider) Known(level colony.Passion) bool {
	for _, l := range p.Levels() {
		if l == level {
			return true
		}
	}
	return false
}

func (*NativeProvider) LearnFactor(level colony.Passion) float64 {
	switch level {
	case colony.PassionMinor:
		return 1.0
	case colony.PassionMajor:
		return 1.5
	default:
		return 0.35
	}
}
