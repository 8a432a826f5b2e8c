package scoring

import (
	"fmt"
	"log/slog"

	"github.com/MikeSquared-Agency/Quartermaster/internal/defs"
	"github.com/MikeSquared-Agency/Quartermaster/internal/dimension"
)

// Engine owns the scoring state for one process: the immutable dimension
// catalog, the shared observed ranges, and the per-role rule cache. It
// replaces package-level globals so tests can run isolated engines in
// parallel.
type Engine struct {
	Catalog *dimension.Catalog
	Ranges  *StatRanges
	Rules   *RuleBook
}

// NewEngine builds the catalog from the definition provider and wires the
// rule book. Must complete before any Score or Rank call.
func NewEngine(provider defs.Provider, logger *slog.Logger) (*Engine, error) {
	if provider == nil {
		return nil, fmt.Errorf("nil definition provider")
	}
	if logger == nil {
		return nil, fmt.Errorf("nil logger")
	}

	catalog, err := dimension.NewCatalog(defs.Dimensions(provider))
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	ranges := NewStatRanges()
	return &Engine{
		Catalog: catalog,
		Ranges:  ranges,
		Rules:   NewRuleBook(catalog, provider, ranges, logger),
	}, nil
}
