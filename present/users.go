package present

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nutritrack/cli/domain"
)

// RenderUsers writes the admin user table with the action each row's
// toggle commands would perform.
func RenderUsers(w io.Writer, rows []domain.UserProfile) {
	fmt.Fprintln(w, "User Management")

	if len(rows) == 0 {
		fmt.Fprintln(w, "  No users found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tEMAIL\tROLE\tSTATUS\tCREATED\tACTIONS")
	for _, row := range rows {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s / %s\n",
			row.ID,
			row.Name,
			row.Email,
			paint(roleColor(row.Role), string(row.Role)),
			paint(statusColor(row.Status), string(row.Status)),
			row.CreatedAt.Format("2006-01-02"),
			statusAction(row.Status),
			roleAction(row.Role),
		)
	}
	tw.Flush()
}

func roleColor(role domain.Role) Color {
	if role == domain.RoleAdmin {
		return ColorAmber
	}
	return ColorGreen
}

func statusColor(status domain.Status) Color {
	if status == domain.StatusActive {
		return ColorGreen
	}
	return ColorRed
}

func statusAction(status domain.Status) string {
	if status == domain.StatusActive {
		return "Deactivate"
	}
	return "Activate"
}

func roleAction(role domain.Role) string {
	if role == domain.RoleUser {
		return "Make Admin"
	}
	return "Remove Admin"
}
