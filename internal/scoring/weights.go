package scoring

// WeightCap bounds every scoring weight to [-WeightCap, WeightCap].
// Out-of-range values are clamped, never rejected.
const WeightCap = 2.0

// ScoreWeight associates a dimension with a signed weight. Protected marks
// weights seeded by builtin rules (skill affinity, recipes) so a UI can
// treat them as defaults rather than user edits; it does not affect the
// scoring math.
type ScoreWeight struct {
	Stat      string  `json:"stat"`
	Weight    float64 `json:"weight"`
	Protected bool    `json:"protected,omitempty"`
}

// NewScoreWeight builds a weight with the value clamped into range.
func NewScoreWeight(stat string, weight float64, protected bool) ScoreWeight {
	return ScoreWeight{Stat: stat, Weight: clampWeight(weight), Protected: protected}
}

func clampWeight(v float64) float64 {
	if v < -WeightCap {
		return -WeightCap
	}
	if v > WeightCap {
		return WeightCap
	}
	return v
}
