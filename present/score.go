package present

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/nutritrack/cli/analytics"
)

const gaugeWidth = 22

// RenderScore writes the weekly adherence score as a proportional gauge
// with the tier message underneath.
func RenderScore(w io.Writer, score float64) {
	ring := analytics.ScoreRing(score)
	tier := ScoreTier(score)

	filled := int(math.Round(ring.Fraction * gaugeWidth))
	gauge := strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)

	fmt.Fprintln(w, "Weekly Health Score")
	fmt.Fprintf(w, "  %s %s\n", paint(tier.Color, gauge), fmt.Sprintf("%.0f%% Adherence", score))
	fmt.Fprintf(w, "  %s\n", tier.Message)
}
