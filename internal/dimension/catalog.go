package dimension

import (
	"fmt"
	"strings"
)

// Catalog indexes the full dimension set by name, category, and influencing
// skill. It is built once at startup and read-only afterwards.
type Catalog struct {
	byName     map[string]*Dimension
	byCategory map[Category][]*Dimension
	bySkill    map[string][]*Dimension
	ordered    []*Dimension
}

// NewCatalog builds a catalog from host-native and synthesized dimensions.
// Duplicate IDs (case-insensitive) are an error: synthesized dimensions are
// required to carry a collision-proof prefix.
func NewCatalog(dims []Dimension) (*Catalog, error) {
	c := &Catalog{
		byName:     make(map[string]*Dimension, len(dims)),
		byCategory: make(map[Category][]*Dimension),
		bySkill:    make(map[string][]*Dimension),
	}
	for i := range dims {
		d := dims[i]
		if d.ID == "" {
			return nil, fmt.Errorf("dimension %d has empty id", i)
		}
		key := strings.ToLower(d.ID)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("duplicate dimension id %q", d.ID)
		}
		c.byName[key] = &d
		c.byCategory[d.Category] = append(c.byCategory[d.Category], &d)
		for _, skill := range d.Skills {
			sk := strings.ToLower(skill)
			c.bySkill[sk] = append(c.bySkill[sk], &d)
		}
		c.ordered = append(c.ordered, &d)
	}
	return c, nil
}

// ByName resolves a dimension case-insensitively, nil when unknown.
func (c *Catalog) ByName(id string) *Dimension {
	return c.byName[strings.ToLower(id)]
}

// ByCategory returns the dimensions tagged with cat, in catalog order.
func (c *Catalog) ByCategory(cat Category) []*Dimension {
	return c.byCategory[cat]
}

// InfluencedBySkill returns every dimension the named skill contributes to.
func (c *Catalog) InfluencedBySkill(skill string) []*Dimension {
	return c.bySkill[strings.ToLower(skill)]
}

// All returns every dimension, in catalog order.
func (c *Catalog) All() []*Dimension { return c.ordered }

// Size returns the number of dimensions in the catalog.
func (c *Catalog) Size() int { return len(c.ordered) }
