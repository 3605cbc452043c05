package present

import (
	"fmt"
	"io"

	"github.com/nutritrack/cli/domain"
)

// RenderHistory writes the recent food log entries, most recent first as
// delivered by the backend.
func RenderHistory(w io.Writer, entries []domain.FoodLogEntry) {
	fmt.Fprintln(w, "Recent Food Logs")

	if len(entries) == 0 {
		fmt.Fprintln(w, "  No food logs yet. Start logging your meals!")
		return
	}

	for _, entry := range entries {
		tier := RatingTier(entry.Rating)
		badge := fmt.Sprintf("%.0f/10 - %s", entry.Rating, tier.Message)
		fmt.Fprintf(w, "  %s  %s\n", entry.CreatedAt.Format("2006-01-02"), paint(tier.Color, badge))
		fmt.Fprintf(w, "    %s\n", entry.MessageText)
		fmt.Fprintf(w, "    Calories %.0f kcal | Fat %.0fg | Protein %.0fg | Fiber %.0fg\n",
			entry.Calories, entry.Fat, entry.Protein, entry.Fiber)
		if entry.Note != "" {
			fmt.Fprintf(w, "    Note: %s\n", entry.Note)
		}
	}
}
