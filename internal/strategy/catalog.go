package strategy

import (
	"fmt"

	"github.com/solaceapp/solace/internal/domain"
)

// Catalog holds the full set of coping strategies. It is immutable after
// construction and safe to share without locking; the matcher and selector
// receive an explicit *Catalog instead of reaching for a shared instance.
type Catalog struct {
	records []domain.Strategy
	byID    map[string]int
}

// NewCatalog builds a catalog from the given records, preserving their
// declaration order. Every record is validated and IDs must be unique.
func NewCatalog(records []domain.Strategy) (*Catalog, error) {
	byID := make(map[string]int, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid strategy record: %w", err)
		}
		if _, dup := byID[records[i].ID]; dup {
			return nil, fmt.Errorf("duplicate strategy ID %q", records[i].ID)
		}
		byID[records[i].ID] = i
	}
	return &Catalog{records: records, byID: byID}, nil
}

// NewSeededCatalog builds the catalog from the built-in seed data. The seed
// is part of the program, so a validation failure here is a programmer error
// and panics, like a malformed compiled-in regexp.
func NewSeededCatalog() *Catalog {
	c, err := NewCatalog(seedStrategies())
	if err != nil {
		panic(fmt.Sprintf("strategy: bad seed data: %v", err))
	}
	return c
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns every strategy in declaration order.
func (c *Catalog) All() []domain.Strategy {
	out := make([]domain.Strategy, len(c.records))
	copy(out, c.records)
	return out
}

// ByID looks up a single strategy. The second return reports whether the ID
// exists.
func (c *Catalog) ByID(id string) (domain.Strategy, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Strategy{}, false
	}
	return c.records[i], true
}

// ByCategory returns all strategies in the given category, in declaration
// order. An empty result is not an error.
func (c *Catalog) ByCategory(cat domain.StrategyCategory) []domain.Strategy {
	var out []domain.Strategy
	for _, s := range c.records {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}

// ByIntensity returns all strategies in the given intensity tier, in
// declaration order.
func (c *Catalog) ByIntensity(tier domain.StrategyIntensity) []domain.Strategy {
	var out []domain.Strategy
	for _, s := range c.records {
		if s.Intensity == tier {
			out = append(out, s)
		}
	}
	return out
}
