package scoring

import (
	"strings"
	"sync"
)

// degenerateEpsilon is the observed-range width below which a dimension is
// considered constant and normalizes to zero.
const degenerateEpsilon = 1e-3

type observedRange struct {
	min float64
	max float64
}

// StatRanges tracks the observed [min,max] interval per dimension and maps
// raw values onto a signed normalized scale. Bounds only ever widen; there
// is deliberately no reset — the scale adapts over the process lifetime.
type StatRanges struct {
	mu     sync.Mutex
	ranges map[string]*observedRange
}

func NewStatRanges() *StatRanges {
	return &StatRanges{ranges: make(map[string]*observedRange)}
}

// Normalize records raw as an observation for the dimension and returns its
// position on the normalized scale:
//
//	both bounds negative  -> [-1, 0]
//	bounds straddle zero  -> [-1, 1]
//	otherwise             -> [0, 1]
//
// A degenerate range returns exactly 0. Every call mutates shared state, so
// the method is safe for concurrent use.
func (r *StatRanges) Normalize(dimensionID string, raw float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(dimensionID)
	obs, ok := r.ranges[key]
	if !ok {
		obs = &observedRange{min: raw, max: raw}
		r.ranges[key] = obs
	}
	if raw < obs.min {
		obs.min = raw
	}
	if raw > obs.max {
		obs.max = raw
	}

	if raw < obs.min {
		raw = obs.min
	}
	if raw > obs.max {
		raw = obs.max
	}

	width := obs.max - obs.min
	if width < degenerateEpsilon {
		return 0
	}

	t := (raw - obs.min) / width
	switch {
	case obs.min < 0 && obs.max < 0:
		return t - 1
	case obs.min < 0 && obs.max > 0:
		return 2*t - 1
	default:
		return t
	}
}

// Observed returns the current bounds for a dimension, false if it has
// never been observed.
func (r *StatRanges) Observed(dimensionID string) (min, max float64, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	obs, found := r.ranges[strings.ToLower(dimensionID)]
	if !found {
		return 0, 0, false
	}
	return obs.min, obs.max, true
}
