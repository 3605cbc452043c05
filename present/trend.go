package present

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/nutritrack/cli/analytics"
	"github.com/nutritrack/cli/domain"
)

const trendRows = 8

// RenderTrend writes one column per daily sample, in input order, scaled
// against the week's calorie ceiling. Over-limit days render red, the rest
// green, and each day is annotated with its literal calorie count.
func RenderTrend(w io.Writer, samples []domain.DailySample) {
	fmt.Fprintln(w, "Weekly Calorie Trend")

	bars := analytics.BuildBars(samples)
	if len(bars) == 0 {
		fmt.Fprintln(w, "  No data for this week yet.")
		return
	}

	heights := make([]int, len(bars))
	for i, bar := range bars {
		heights[i] = int(math.Round(bar.HeightFraction * trendRows))
	}

	for row := trendRows; row >= 1; row-- {
		var line strings.Builder
		line.WriteString("  ")
		for i, bar := range bars {
			cell := "    "
			if heights[i] >= row {
				cell = paint(barColor(bar), "██") + "  "
			}
			line.WriteString(cell)
		}
		fmt.Fprintln(w, line.String())
	}

	var labels strings.Builder
	labels.WriteString("  ")
	for _, bar := range bars {
		labels.WriteString(fmt.Sprintf("%-4s", bar.Day))
	}
	fmt.Fprintln(w, labels.String())

	for _, bar := range bars {
		fmt.Fprintf(w, "  %-4s %s\n", bar.Day, paint(barColor(bar), fmt.Sprintf("%.0f kcal", bar.Calories)))
	}
}

func barColor(bar analytics.Bar) Color {
	if bar.OverLimit {
		return ColorRed
	}
	return ColorGreen
}
