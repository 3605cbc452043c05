// Package analytics derives rendering geometry from weekly nutrition data.
// Every function is pure; nothing here performs I/O or holds state.
package analytics

import "github.com/nutritrack/cli/domain"

const (
	// CalorieCeiling marks a day as over-limit and floors the chart scale
	// so bars never look artificially tall on low-calorie weeks.
	CalorieCeiling = 2500

	// RingCircumference matches the stroke-dash basis of the rendered
	// score circle.
	RingCircumference = 440
)

// Bar is the derived geometry for a single day column.
type Bar struct {
	Day            string
	Calories       float64
	HeightFraction float64
	OverLimit      bool
}

// Ring is the derived geometry for the circular score indicator.
type Ring struct {
	Circumference float64
	DashOffset    float64
	Fraction      float64
}

// Scale returns the chart's calorie ceiling: at least CalorieCeiling, and
// never below the largest sample.
func Scale(samples []domain.DailySample) float64 {
	max := float64(CalorieCeiling)
	for _, s := range samples {
		if s.Calories > max {
			max = s.Calories
		}
	}
	return max
}

// BuildBars converts the week's samples into bar geometry, preserving input
// order. An empty input yields no bars; no division occurs.
func BuildBars(samples []domain.DailySample) []Bar {
	if len(samples) == 0 {
		return nil
	}
	scale := Scale(samples)
	bars := make([]Bar, 0, len(samples))
	for _, s := range samples {
		bars = append(bars, Bar{
			Day:            s.Day,
			Calories:       s.Calories,
			HeightFraction: s.Calories / scale,
			OverLimit:      s.Calories > CalorieCeiling,
		})
	}
	return bars
}

// ScoreRing maps an adherence score onto the circle's dash offset: 0 leaves
// the ring empty (offset equals the circumference), 100 fills it (offset 0).
// Out-of-range scores are clamped so the ring always renders in bounds.
func ScoreRing(score float64) Ring {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	fraction := score / 100
	return Ring{
		Circumference: RingCircumference,
		DashOffset:    RingCircumference - RingCircumference*fraction,
		Fraction:      fraction,
	}
}
