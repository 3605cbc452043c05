// Package present maps scores and ratings onto qualitative tiers and
// renders dashboard views as terminal output. Tier functions are pure and
// carry no state; renderers only write to the supplied io.Writer.
package present

// Color identifies the visual tier of a score, rating, or bar.
type Color string

const (
	ColorGreen Color = "green"
	ColorAmber Color = "amber"
	ColorRed   Color = "red"
)

// ansi returns the escape sequence that paints the color in a terminal.
func (c Color) ansi() string {
	switch c {
	case ColorGreen:
		return "\x1b[32m"
	case ColorAmber:
		return "\x1b[33m"
	case ColorRed:
		return "\x1b[31m"
	default:
		return ""
	}
}

const ansiReset = "\x1b[0m"

func paint(c Color, s string) string {
	return c.ansi() + s + ansiReset
}

// Tier is a qualitative bucket with its color and display text.
type Tier struct {
	Color   Color
	Message string
}

// ScoreTier buckets a weekly adherence score. 80 and 50 are exact cut
// points belonging to the higher tier.
func ScoreTier(score float64) Tier {
	switch {
	case score >= 80:
		return Tier{Color: ColorGreen, Message: "Excellent work! Keep it up!"}
	case score >= 50:
		return Tier{Color: ColorAmber, Message: "Good effort, but room to improve."}
	default:
		return Tier{Color: ColorRed, Message: "Let's focus on healthier choices."}
	}
}

// RatingTier buckets a 0-10 meal rating for history display.
func RatingTier(rating float64) Tier {
	switch {
	case rating >= 8:
		return Tier{Color: ColorGreen, Message: "Excellent"}
	case rating >= 4:
		return Tier{Color: ColorAmber, Message: "Moderate"}
	default:
		return Tier{Color: ColorRed, Message: "Unhealthy"}
	}
}
