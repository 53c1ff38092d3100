package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoodCheckin_Validate(t *testing.T) {
	tests := []struct {
		name    string
		checkin MoodCheckin
		wantErr bool
	}{
		{"valid", MoodCheckin{Mood: "anxious", Intensity: 5}, false},
		{"missing mood", MoodCheckin{Intensity: 5}, true},
		{"intensity too low", MoodCheckin{Mood: "sad", Intensity: 0}, true},
		{"intensity too high", MoodCheckin{Mood: "sad", Intensity: 11}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.checkin.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMoodCheckin_IsStrongReaction(t *testing.T) {
	// 8/10 normalizes to ~0.778, above the 0.70 threshold.
	strong := MoodCheckin{Mood: "anxious", Intensity: 8}
	assert.True(t, strong.IsStrongReaction())

	// 7/10 normalizes to ~0.667, just below.
	mild := MoodCheckin{Mood: "anxious", Intensity: 7}
	assert.False(t, mild.IsStrongReaction())

	low := MoodCheckin{Mood: "calm", Intensity: 2}
	assert.False(t, low.IsStrongReaction())
}

func TestNormalizeIntensity(t *testing.T) {
	assert.InDelta(t, 0.75, NormalizeIntensity(4, 5), 1e-9)
	assert.InDelta(t, 0.0, NormalizeIntensity(1, 10), 1e-9)
	assert.InDelta(t, 1.0, NormalizeIntensity(10, 10), 1e-9)

	// Out-of-range values clamp instead of escaping 0-1.
	assert.Equal(t, 0.0, NormalizeIntensity(-3, 10))
	assert.Equal(t, 1.0, NormalizeIntensity(42, 10))
	assert.Equal(t, 0.0, NormalizeIntensity(5, 1))
}
