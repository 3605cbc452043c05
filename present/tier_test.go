package present

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTier_Boundaries(t *testing.T) {
	tests := []struct {
		score   float64
		color   Color
		message string
	}{
		{100, ColorGreen, "Excellent work! Keep it up!"},
		{80, ColorGreen, "Excellent work! Keep it up!"},
		{79, ColorAmber, "Good effort, but room to improve."},
		{50, ColorAmber, "Good effort, but room to improve."},
		{49, ColorRed, "Let's focus on healthier choices."},
		{0, ColorRed, "Let's focus on healthier choices."},
	}

	for _, tt := range tests {
		tier := ScoreTier(tt.score)
		assert.Equal(t, tt.color, tier.Color, "score %v", tt.score)
		assert.Equal(t, tt.message, tier.Message, "score %v", tt.score)
	}
}

func TestRatingTier_Boundaries(t *testing.T) {
	tests := []struct {
		rating float64
		color  Color
		label  string
	}{
		{10, ColorGreen, "Excellent"},
		{8, ColorGreen, "Excellent"},
		{7, ColorAmber, "Moderate"},
		{4, ColorAmber, "Moderate"},
		{3, ColorRed, "Unhealthy"},
		{0, ColorRed, "Unhealthy"},
	}

	for _, tt := range tests {
		tier := RatingTier(tt.rating)
		assert.Equal(t, tt.color, tier.Color, "rating %v", tt.rating)
		assert.Equal(t, tt.label, tier.Message, "rating %v", tt.rating)
	}
}
