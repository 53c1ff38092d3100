package domain

import (
	"fmt"
	"time"
)

// StrongReactionThreshold is the normalized intensity at or above which a
// reaction counts as strong: intensive-tier strategies become eligible and a
// saved check-in triggers a recommendation. 0.70 corresponds to 4 on a 1-5
// scale and 8 on a 1-10 scale.
const StrongReactionThreshold = 0.70

// MoodCheckin is a discrete mood report. Intensity is recorded on the 1-10
// scale the check-in UI uses; IntensityFraction converts to the normalized
// form the recommendation engine works with.
type MoodCheckin struct {
	ID        string
	Mood      string
	Intensity int
	Note      string
	Trigger   string
	CreatedAt time.Time
}

// Validate checks that the check-in names a mood and stays on the 1-10 scale.
func (c *MoodCheckin) Validate() error {
	if c.Mood == "" {
		return fmt.Errorf("check-in has no mood")
	}
	if c.Intensity < 1 || c.Intensity > 10 {
		return fmt.Errorf("intensity %d out of range 1-10", c.Intensity)
	}
	return nil
}

// IntensityFraction returns the recorded intensity as a 0-1 fraction.
func (c *MoodCheckin) IntensityFraction() float64 {
	return NormalizeIntensity(float64(c.Intensity), 10)
}

// IsStrongReaction reports whether the check-in is at or above the
// strong-reaction threshold.
func (c *MoodCheckin) IsStrongReaction() bool {
	return c.IntensityFraction() >= StrongReactionThreshold
}

// NormalizeIntensity maps a raw intensity on a 1-scale range onto 0-1, with
// 1 mapping to 0 and scale mapping to 1. Values outside the range are
// clamped; callers validate before storing.
func NormalizeIntensity(value, scale float64) float64 {
	if scale <= 1 {
		return 0
	}
	frac := (value - 1) / (scale - 1)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}
