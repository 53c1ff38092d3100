package domain

import "fmt"

// Strategy is a single coping technique in the catalog. Records are immutable
// after the catalog is built; nothing in the application mutates them.
type Strategy struct {
	ID           string
	Title        string
	Description  string
	Category     StrategyCategory
	Intensity    StrategyIntensity
	TimeEstimate string
	Steps        []string
	Tips         []string
	MoodTargets  []string
}

// Validate checks the invariants every catalog record must satisfy:
// non-empty identity and title, a canonical category and intensity, and at
// least one step.
func (s *Strategy) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("strategy has no ID")
	}
	if s.Title == "" {
		return fmt.Errorf("strategy %s: title is required", s.ID)
	}
	if !ValidCategories[s.Category] {
		return fmt.Errorf("strategy %s: unknown category %q", s.ID, s.Category)
	}
	if !ValidIntensities[s.Intensity] {
		return fmt.Errorf("strategy %s: unknown intensity %q", s.ID, s.Intensity)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("strategy %s: at least one step is required", s.ID)
	}
	return nil
}
