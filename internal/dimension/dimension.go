package dimension

// Category tags a dimension with the candidate class it applies to.
type Category string

const (
	CategoryPawn         Category = "pawn"
	CategoryApparel      Category = "apparel"
	CategoryWeaponMelee  Category = "weapon-melee"
	CategoryWeaponRanged Category = "weapon-ranged"
	CategoryTool         Category = "tool"
	CategoryWork         Category = "work"
	CategoryAll          Category = "all"
)

// StatSource exposes raw named stats on a candidate. colony.Pawn and
// colony.Item both satisfy it.
type StatSource interface {
	StatValue(name string) (float64, bool)
}

// Dimension is one scorable/filterable numeric attribute. Identity is the
// case-insensitive ID; instances are immutable once the catalog is built.
// Derive, when set, computes a synthesized value from raw stats instead of
// reading the stat named by ID directly.
type Dimension struct {
	ID       string
	Label    string
	MinCap   float64
	MaxCap   float64
	Baseline float64
	Category Category
	Skills   []string
	Derive   func(StatSource) (float64, bool)
}

// Value reads the dimension's raw value from a candidate.
func (d *Dimension) Value(src StatSource) (float64, bool) {
	if d.Derive != nil {
		return d.Derive(src)
	}
	return src.StatValue(d.ID)
}

// ClampToCaps pins v into the dimension's valid numeric range.
func (d *Dimension) ClampToCaps(v float64) float64 {
	if v < d.MinCap {
		return d.MinCap
	}
	if v > d.MaxCap {
		return d.MaxCap
	}
	return v
}
